package wire

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ValentinKolb/respv/lib/value"
)

// TestMarshalVectors checks exact wire bytes against the grammar.
func TestMarshalVectors(t *testing.T) {
	testCases := []struct {
		name string
		v    value.Value
		want string
	}{
		{"BlobString", value.BlobString([]byte("helloworld")), "$10\r\nhelloworld\r\n"},
		{"BlobString empty", value.BlobString(nil), "$0\r\n\r\n"},
		{"SimpleString", value.SimpleString([]byte("hello world")), "+hello world\r\n"},
		{"SimpleError", value.SimpleError([]byte("ERR"), []byte("oops")), "-ERR oops\r\n"},
		{"Number", value.Number(1234), ":1234\r\n"},
		{"Number negative", value.Number(-42), ":-42\r\n"},
		{"Null", value.Null(), "_\r\n"},
		{"Boolean true", value.Boolean(true), "#t\r\n"},
		{"Boolean false", value.Boolean(false), "#f\r\n"},
		{"BlobError", value.BlobError([]byte("SYNTAX"), []byte("invalid")), "!14\r\nSYNTAX invalid\r\n"},
		{"Verbatim txt", value.VerbatimString(value.VerbatimText, []byte("Some string")), "=15\r\ntxt:Some string\r\n"},
		{"Verbatim mkd", value.VerbatimString(value.VerbatimMarkdown, []byte("# hi")), "=8\r\nmkd:# hi\r\n"},
		{"Array", value.Array(value.Number(1), value.Number(2), value.Number(3)), "*3\r\n:1\r\n:2\r\n:3\r\n"},
		{"Array empty", value.Array(), "*0\r\n"},
		{"Set", value.Set(value.Number(1), value.Number(2)), "~2\r\n:1\r\n:2\r\n"},
		{"Nested", value.Array(value.Array(value.Null())), "*1\r\n*1\r\n_\r\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Marshal(tc.v)
			if err != nil {
				t.Fatalf("Marshal() failed: %v", err)
			}
			if !bytes.Equal(got, []byte(tc.want)) {
				t.Errorf("Marshal() = %q, want %q", got, tc.want)
			}
		})
	}
}

// TestMarshalLengthContract checks that every successful encoding is exactly
// value.EncodedLength bytes long.
func TestMarshalLengthContract(t *testing.T) {
	m := value.NewMap()
	m.Set(value.SimpleString([]byte("first")), value.Number(1))
	m.Set(value.SimpleString([]byte("second")), value.Number(2))

	corpus := []value.Value{
		value.BlobString([]byte("helloworld")),
		value.SimpleString([]byte("hello world")),
		value.SimpleError([]byte("ERR"), []byte("oops")),
		value.Number(1234),
		value.Number(-1234),
		value.Number(0),
		value.Null(),
		value.Boolean(true),
		value.BlobError(nil, nil),
		value.VerbatimString(value.VerbatimMarkdown, []byte("# heading")),
		value.Array(value.Number(1), value.Number(2), value.Number(3)),
		value.Set(),
		value.MapValue(m),
		value.Array(value.MapValue(m), value.Set(value.Null()), value.BlobString(nil)),
	}

	for _, v := range corpus {
		encoded, err := Marshal(v)
		if err != nil {
			t.Fatalf("Marshal(%s) failed: %v", v.Kind(), err)
		}
		if len(encoded) != value.EncodedLength(v) {
			t.Errorf("%s: encoded %d bytes, EncodedLength() = %d",
				v.Kind(), len(encoded), value.EncodedLength(v))
		}
	}
}

// TestMapWire checks map framing: the prefix counts pairs, and decoding the
// canonical form rebuilds an equal value.
func TestMapWire(t *testing.T) {
	wire := "%2\r\n+first\r\n:1\r\n+second\r\n:2\r\n"

	v, err := Unmarshal([]byte(wire))
	if err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if v.Kind() != value.KindMap {
		t.Fatalf("decoded kind %s, want map", v.Kind())
	}
	if v.Map().Len() != 2 {
		t.Fatalf("decoded %d pairs, want 2", v.Map().Len())
	}
	if got, ok := v.Map().Get(value.SimpleString([]byte("first"))); !ok || !value.Equal(got, value.Number(1)) {
		t.Error("pair first:1 not decoded")
	}
	if got, ok := v.Map().Get(value.SimpleString([]byte("second"))); !ok || !value.Equal(got, value.Number(2)) {
		t.Error("pair second:2 not decoded")
	}

	if got := value.EncodedLength(v); got != len(wire) {
		t.Errorf("EncodedLength() = %d, want %d", got, len(wire))
	}

	// Re-encoding keeps the length and the pair prefix
	encoded, err := Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if len(encoded) != len(wire) {
		t.Errorf("re-encoded %d bytes, want %d", len(encoded), len(wire))
	}
	if !bytes.HasPrefix(encoded, []byte("%2\r\n")) {
		t.Errorf("re-encoding lost the pair count prefix: %q", encoded)
	}
}

// TestRoundTrip checks Marshal/Unmarshal round trips through structural
// equality for every kind.
func TestRoundTrip(t *testing.T) {
	m := value.NewMap()
	m.Set(value.Array(value.Number(1)), value.Boolean(true))
	m.Set(value.BlobString([]byte("k")), value.Null())

	testCases := []struct {
		name string
		v    value.Value
	}{
		{"BlobString", value.BlobString([]byte("payload \r\n with frame bytes"))},
		{"SimpleString", value.SimpleString([]byte("OK"))},
		{"SimpleError", value.SimpleError([]byte("WRONGTYPE"), []byte("operation failed"))},
		{"SimpleError bare code", value.SimpleError([]byte("PING"), nil)},
		{"Number", value.Number(-9007199254740993)},
		{"Null", value.Null()},
		{"Boolean", value.Boolean(false)},
		{"BlobError", value.BlobError([]byte("ERR"), []byte("message with spaces"))},
		{"Verbatim", value.VerbatimString(value.VerbatimMarkdown, []byte("# title\nbody"))},
		{"Array nested", value.Array(value.Number(1), value.Array(value.Null()), value.Set())},
		{"Set", value.Set(value.BlobString([]byte("a")), value.BlobString([]byte("b")))},
		{"Map composite keys", value.MapValue(m)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := Marshal(tc.v)
			if err != nil {
				t.Fatalf("Marshal() failed: %v", err)
			}
			decoded, err := Unmarshal(encoded)
			if err != nil {
				t.Fatalf("Unmarshal() failed: %v", err)
			}
			if !value.Equal(tc.v, decoded) {
				t.Errorf("round trip lost structure:\noriginal: %+v\ndecoded:  %+v", tc.v, decoded)
			}
			if value.Hash(tc.v) != value.Hash(decoded) {
				t.Error("round trip changed the structural hash")
			}
		})
	}
}

// TestDecoderStream checks incremental decoding of several values over one
// buffer.
func TestDecoderStream(t *testing.T) {
	data := []byte(":1\r\n+two\r\n$5\r\nthree\r\n_\r\n")
	dec := NewDecoder(data)

	want := []value.Value{
		value.Number(1),
		value.SimpleString([]byte("two")),
		value.BlobString([]byte("three")),
		value.Null(),
	}

	for i, w := range want {
		v, err := dec.Decode()
		if err != nil {
			t.Fatalf("value %d: Decode() failed: %v", i, err)
		}
		if !value.Equal(v, w) {
			t.Errorf("value %d: got %s, want %s", i, v.Kind(), w.Kind())
		}
	}
	if dec.Remaining() != 0 {
		t.Errorf("%d bytes left after stream", dec.Remaining())
	}
}

// TestUnsupportedTypes checks fail-fast behavior for RESP3 kinds outside the
// model.
func TestUnsupportedTypes(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"Float", ",3.14\r\n"},
		{"BigNumber", "(3492890328409238509324850943850943825024385\r\n"},
		{"Attribute", "|1\r\n+key\r\n+val\r\n"},
		{"Push", ">2\r\n+pubsub\r\n+message\r\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tc.data))
			if !errors.Is(err, ErrUnsupportedType) {
				t.Errorf("expected ErrUnsupportedType, got %v", err)
			}
		})
	}
}

// TestInvalidData checks how the decoder handles corrupt input.
func TestInvalidData(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"Empty data", ""},
		{"Unknown prefix", "@foo\r\n"},
		{"Missing terminator", "+hello"},
		{"Blob shorter than length", "$10\r\nhi\r\n"},
		{"Blob length near int64 max", "$9223372036854775805\r\n"},
		{"Array count near int64 max", "*9223372036854775807\r\n"},
		{"Map count beyond input", "%1000000\r\n"},
		{"Blob missing CRLF", "$2\r\nhiXX"},
		{"Negative blob length", "$-1\r\n"},
		{"Invalid number", ":12a4\r\n"},
		{"Invalid boolean", "#x\r\n"},
		{"Null with payload", "_yes\r\n"},
		{"Verbatim without tag", "=2\r\nhi\r\n"},
		{"Array element missing", "*2\r\n:1\r\n"},
		{"Map value missing", "%1\r\n+key\r\n"},
		{"Trailing bytes", ":1\r\n:2\r\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Unmarshal([]byte(tc.data)); err == nil {
				t.Error("expected error but got none")
			}
		})
	}
}
