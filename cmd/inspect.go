package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/ValentinKolb/respv/cmd/util"
	"github.com/ValentinKolb/respv/lib/value"
	"github.com/ValentinKolb/respv/lib/wire"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Decode a RESP3 stream and describe each value",
	Long: util.WrapString("Reads RESP3-encoded values from the given file (or stdin if no file " +
		"is given) and prints one line per top-level value with its kind, exact encoded " +
		"length and structural hash."),
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func runInspect(_ *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	fmt.Printf("%-4s %-16s %8s %10s  %s\n", "#", "KIND", "BYTES", "HASH", "VALUE")

	dec := wire.NewDecoder(data)
	for i := 0; dec.Remaining() > 0; i++ {
		v, err := dec.Decode()
		if err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
		fmt.Printf("%-4d %-16s %8d 0x%08x  %s\n",
			i, v.Kind(), value.EncodedLength(v), value.Hash(v), preview(v))
	}

	return nil
}

// previewLimit caps how many payload characters a preview line shows.
const previewLimit = 48

// preview renders a single-line, truncated summary of a value.
func preview(v value.Value) string {
	switch v.Kind() {
	case value.KindBlobString, value.KindSimpleString:
		return truncate(string(v.Bytes()))
	case value.KindSimpleError, value.KindBlobError:
		e := v.Err()
		return truncate(string(e.Code) + " " + string(e.Message))
	case value.KindNumber:
		return fmt.Sprintf("%d", v.Num())
	case value.KindNull:
		return "null"
	case value.KindBoolean:
		return fmt.Sprintf("%t", v.Bool())
	case value.KindVerbatimString:
		vb := v.Verbatim()
		return truncate(vb.Type.Tag() + ":" + string(vb.Value))
	case value.KindArray, value.KindSet:
		parts := make([]string, 0, len(v.Elems()))
		for _, elem := range v.Elems() {
			parts = append(parts, preview(elem))
		}
		return truncate("[" + strings.Join(parts, ", ") + "]")
	case value.KindMap:
		parts := make([]string, 0, v.Map().Len())
		v.Map().Range(func(k, val value.Value) bool {
			parts = append(parts, preview(k)+": "+preview(val))
			return true
		})
		return truncate("{" + strings.Join(parts, ", ") + "}")
	default:
		return "?"
	}
}

func truncate(s string) string {
	if len(s) <= previewLimit {
		return s
	}
	// Back up to a rune boundary so the cut never splits a multi-byte
	// UTF-8 sequence.
	cut := previewLimit - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
