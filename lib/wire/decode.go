package wire

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/ValentinKolb/respv/lib/value"
)

// --------------------------------------------------------------------------
// Errors
// --------------------------------------------------------------------------

// ErrUnsupportedType marks a RESP3 kind the value model does not represent
// (floats, big numbers, attributes, push frames, hello). The decoder fails
// fast on these instead of silently mis-framing the stream.
var ErrUnsupportedType = errors.New("unsupported RESP3 type")

// unsupportedPrefixes are documented RESP3 kinds outside the modeled set.
const unsupportedPrefixes = ",(|>"

// --------------------------------------------------------------------------
// Decoding
// --------------------------------------------------------------------------

// Unmarshal parses exactly one value from data, requiring the value to span
// the whole input. Decoded byte payloads are views into data; the result
// must not outlive the input buffer.
func Unmarshal(data []byte) (value.Value, error) {
	d := NewDecoder(data)
	v, err := d.Decode()
	if err != nil {
		return value.Value{}, err
	}
	if d.Remaining() != 0 {
		return value.Value{}, fmt.Errorf("wire: %d trailing bytes after value", d.Remaining())
	}
	return v, nil
}

// Decoder incrementally parses RESP3 values out of a byte slice. Each call
// to Decode consumes exactly one complete value. Decoded byte payloads
// borrow from the underlying slice.
type Decoder struct {
	data []byte
	pos  int
}

// NewDecoder creates a decoder over data. The decoder never copies data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Remaining returns the number of unconsumed bytes.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.pos
}

// Decode parses and returns the next value.
func (d *Decoder) Decode() (value.Value, error) {
	if d.pos >= len(d.data) {
		return value.Value{}, fmt.Errorf("wire: data too short for type prefix")
	}

	prefix := d.data[d.pos]
	d.pos++

	switch value.Kind(prefix) {
	case value.KindBlobString:
		b, err := d.readBlob()
		if err != nil {
			return value.Value{}, err
		}
		return value.BlobString(b), nil

	case value.KindSimpleString:
		line, err := d.readLine()
		if err != nil {
			return value.Value{}, err
		}
		return value.SimpleString(line), nil

	case value.KindSimpleError:
		line, err := d.readLine()
		if err != nil {
			return value.Value{}, err
		}
		code, message := splitError(line)
		return value.SimpleError(code, message), nil

	case value.KindNumber:
		n, err := d.readNumber()
		if err != nil {
			return value.Value{}, err
		}
		return value.Number(n), nil

	case value.KindNull:
		line, err := d.readLine()
		if err != nil {
			return value.Value{}, err
		}
		if len(line) != 0 {
			return value.Value{}, fmt.Errorf("wire: unexpected payload %q after null prefix", line)
		}
		return value.Null(), nil

	case value.KindBoolean:
		line, err := d.readLine()
		if err != nil {
			return value.Value{}, err
		}
		switch {
		case len(line) == 1 && line[0] == 't':
			return value.Boolean(true), nil
		case len(line) == 1 && line[0] == 'f':
			return value.Boolean(false), nil
		default:
			return value.Value{}, fmt.Errorf("wire: invalid boolean payload %q", line)
		}

	case value.KindBlobError:
		b, err := d.readBlob()
		if err != nil {
			return value.Value{}, err
		}
		code, message := splitError(b)
		return value.BlobError(code, message), nil

	case value.KindVerbatimString:
		b, err := d.readBlob()
		if err != nil {
			return value.Value{}, err
		}
		if len(b) < 4 || b[3] != ':' {
			return value.Value{}, fmt.Errorf("wire: verbatim payload missing format tag")
		}
		var typ value.VerbatimType
		switch string(b[:3]) {
		case "txt":
			typ = value.VerbatimText
		case "mkd":
			typ = value.VerbatimMarkdown
		default:
			return value.Value{}, fmt.Errorf("wire: unknown verbatim format %q", b[:3])
		}
		return value.VerbatimString(typ, b[4:]), nil

	case value.KindArray, value.KindSet:
		n, err := d.readCount()
		if err != nil {
			return value.Value{}, err
		}
		elems := make([]value.Value, n)
		for i := 0; i < n; i++ {
			if elems[i], err = d.Decode(); err != nil {
				return value.Value{}, err
			}
		}
		if value.Kind(prefix) == value.KindSet {
			return value.Set(elems...), nil
		}
		return value.Array(elems...), nil

	case value.KindMap:
		n, err := d.readCount()
		if err != nil {
			return value.Value{}, err
		}
		m := value.NewMap()
		for i := 0; i < n; i++ {
			k, err := d.Decode()
			if err != nil {
				return value.Value{}, err
			}
			val, err := d.Decode()
			if err != nil {
				return value.Value{}, err
			}
			m.Set(k, val)
		}
		return value.MapValue(m), nil

	default:
		if bytes.IndexByte([]byte(unsupportedPrefixes), prefix) >= 0 {
			return value.Value{}, fmt.Errorf("wire: prefix %q: %w", prefix, ErrUnsupportedType)
		}
		return value.Value{}, fmt.Errorf("wire: unknown type prefix 0x%02x", prefix)
	}
}

// --------------------------------------------------------------------------
// Internal Helpers
// --------------------------------------------------------------------------

// readLine consumes bytes up to and including the next CRLF and returns the
// bytes before it as a view into the input.
func (d *Decoder) readLine() ([]byte, error) {
	idx := bytes.Index(d.data[d.pos:], crlf)
	if idx < 0 {
		return nil, fmt.Errorf("wire: data too short for line terminator")
	}
	line := d.data[d.pos : d.pos+idx]
	d.pos += idx + len(crlf)
	return line, nil
}

// readNumber reads one signed decimal line.
func (d *Decoder) readNumber() (int64, error) {
	line, err := d.readLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(string(line), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("wire: invalid number %q", line)
	}
	return n, nil
}

// readCount reads one non-negative decimal line (element, pair or byte
// count). Every counted unit needs at least one input byte, so any count
// above the remaining input is malformed; rejecting it here keeps the
// arithmetic and allocations downstream within the input's bounds.
func (d *Decoder) readCount() (int, error) {
	n, err := d.readNumber()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("wire: negative count %d", n)
	}
	if n > int64(d.Remaining()) {
		return 0, fmt.Errorf("wire: declared count %d exceeds %d remaining bytes", n, d.Remaining())
	}
	return int(n), nil
}

// readBlob reads a length line followed by exactly that many payload bytes
// and the trailing CRLF.
func (d *Decoder) readBlob() ([]byte, error) {
	n, err := d.readCount()
	if err != nil {
		return nil, err
	}
	if d.pos+n+len(crlf) > len(d.data) {
		return nil, fmt.Errorf("wire: data too short for %d byte blob", n)
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	if !bytes.HasPrefix(d.data[d.pos:], crlf) {
		return nil, fmt.Errorf("wire: blob payload not terminated by CRLF")
	}
	d.pos += len(crlf)
	return b, nil
}

// splitError splits an error payload at the first space into code and
// message. A payload without a space is all code with an empty message.
func splitError(b []byte) (code, message []byte) {
	if idx := bytes.IndexByte(b, ' '); idx >= 0 {
		return b[:idx], b[idx+1:]
	}
	return b, nil
}
