package value

// --------------------------------------------------------------------------
// Kind Definition
// --------------------------------------------------------------------------

// Kind identifies which payload a Value carries. The numeric value of each
// Kind is the one-byte prefix the RESP3 wire grammar uses for it, so a Kind
// can be written to the wire directly.
type Kind byte

const (
	KindBlobString     Kind = '$' // $<len>\r\n<bytes>\r\n
	KindSimpleString   Kind = '+' // +<bytes>\r\n
	KindSimpleError    Kind = '-' // -<code> <message>\r\n
	KindNumber         Kind = ':' // :<decimal>\r\n
	KindNull           Kind = '_' // _\r\n
	KindBoolean        Kind = '#' // #t\r\n or #f\r\n
	KindBlobError      Kind = '!' // !<len>\r\n<code> <message>\r\n
	KindVerbatimString Kind = '=' // =<len>\r\n<3-letter-type>:<bytes>\r\n
	KindArray          Kind = '*' // *<count>\r\n<element>...
	KindSet            Kind = '~' // ~<count>\r\n<element>...
	KindMap            Kind = '%' // %<pairCount>\r\n<key><value>...
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBlobString:
		return "blob-string"
	case KindSimpleString:
		return "simple-string"
	case KindSimpleError:
		return "simple-error"
	case KindNumber:
		return "number"
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindBlobError:
		return "blob-error"
	case KindVerbatimString:
		return "verbatim-string"
	case KindArray:
		return "array"
	case KindSet:
		return "set"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// --------------------------------------------------------------------------
// Auxiliary Structured Payloads
// --------------------------------------------------------------------------

// Error is the payload of the SimpleError and BlobError kinds. On the wire
// both fields are joined with a single space: "<code> <message>".
type Error struct {
	Code    []byte
	Message []byte
}

// VerbatimType selects the fixed 3-byte format tag of a verbatim string.
type VerbatimType uint8

const (
	VerbatimText     VerbatimType = iota // wire tag "txt"
	VerbatimMarkdown                     // wire tag "mkd"
)

// Tag returns the 3-byte wire tag for the verbatim type.
func (t VerbatimType) Tag() string {
	if t == VerbatimMarkdown {
		return "mkd"
	}
	return "txt"
}

// Verbatim is the payload of the VerbatimString kind. Its wire payload is
// "<tag>:<value>" inside a blob-string style frame.
type Verbatim struct {
	Type  VerbatimType
	Value []byte
}

// --------------------------------------------------------------------------
// Value Definition
// --------------------------------------------------------------------------

// Value is an immutable snapshot of a single RESP3 protocol value. It is a
// closed tagged union: the kind determines which payload field is set, and
// only the matching accessor returns meaningful data.
//
// Byte payloads are borrowed, never copied. A Value built over a caller's
// buffer must not outlive that buffer; none of EncodedLength, Equal or Hash
// copy or retain payload bytes.
type Value struct {
	kind Kind

	str   []byte // KindBlobString, KindSimpleString
	num   int64  // KindNumber
	flag  bool   // KindBoolean
	err   Error  // KindSimpleError, KindBlobError
	verb  Verbatim
	elems []Value // KindArray, KindSet
	pairs *Map    // KindMap
}

// --------------------------------------------------------------------------
// Constructors
// --------------------------------------------------------------------------

// BlobString returns a length-prefixed binary-safe string value.
func BlobString(b []byte) Value {
	return Value{kind: KindBlobString, str: b}
}

// SimpleString returns a line string value. The payload must not contain CR
// or LF; the model does not verify this.
func SimpleString(b []byte) Value {
	return Value{kind: KindSimpleString, str: b}
}

// SimpleError returns a line error value with the given code and message.
func SimpleError(code, message []byte) Value {
	return Value{kind: KindSimpleError, err: Error{Code: code, Message: message}}
}

// Number returns a signed 64-bit integer value.
func Number(n int64) Value {
	return Value{kind: KindNumber, num: n}
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Boolean returns a boolean value.
func Boolean(b bool) Value {
	return Value{kind: KindBoolean, flag: b}
}

// BlobError returns a length-prefixed binary-safe error value.
func BlobError(code, message []byte) Value {
	return Value{kind: KindBlobError, err: Error{Code: code, Message: message}}
}

// VerbatimString returns a verbatim string value with the given format type.
func VerbatimString(typ VerbatimType, b []byte) Value {
	return Value{kind: KindVerbatimString, verb: Verbatim{Type: typ, Value: b}}
}

// Array returns an ordered sequence value. The element slice is borrowed.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, elems: elems}
}

// Set returns a set value. The backing sequence keeps element order, so two
// sets with the same elements in different order are distinct values (see
// Equal).
func Set(elems ...Value) Value {
	return Value{kind: KindSet, elems: elems}
}

// MapValue wraps a Map container as a map value. The container is borrowed;
// the caller keeps ownership and must call Release on it when done.
func MapValue(m *Map) Value {
	return Value{kind: KindMap, pairs: m}
}

// --------------------------------------------------------------------------
// Accessors
// --------------------------------------------------------------------------

// Kind returns the variant tag of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Bytes returns the payload of a BlobString or SimpleString value.
func (v Value) Bytes() []byte {
	return v.str
}

// Num returns the payload of a Number value.
func (v Value) Num() int64 {
	return v.num
}

// Bool returns the payload of a Boolean value.
func (v Value) Bool() bool {
	return v.flag
}

// Err returns the payload of a SimpleError or BlobError value.
func (v Value) Err() Error {
	return v.err
}

// Verbatim returns the payload of a VerbatimString value.
func (v Value) Verbatim() Verbatim {
	return v.verb
}

// Elems returns the payload of an Array or Set value.
func (v Value) Elems() []Value {
	return v.elems
}

// Map returns the payload of a Map value.
func (v Value) Map() *Map {
	return v.pairs
}
