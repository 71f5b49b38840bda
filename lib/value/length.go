package value

// --------------------------------------------------------------------------
// Encoded Length Calculation
// --------------------------------------------------------------------------

// EncodedLength returns the exact number of bytes the value occupies in its
// RESP3 wire encoding. Callers use it to pre-size write buffers; wire.Marshal
// allocates exactly this many bytes.
//
// The function is a pure read-only traversal. It never fails for values built
// through this package's constructors, including zero-length payloads and
// empty composites.
func EncodedLength(v Value) int {
	switch v.kind {
	case KindBlobString:
		// $<len>\r\n<bytes>\r\n
		return 5 + digits(int64(len(v.str))) + len(v.str)
	case KindSimpleString:
		// +<bytes>\r\n
		return 3 + len(v.str)
	case KindSimpleError:
		// -<code> <message>\r\n
		return 4 + len(v.err.Code) + len(v.err.Message)
	case KindNumber:
		// :<decimal>\r\n
		return 3 + digits(v.num)
	case KindNull:
		// _\r\n
		return 3
	case KindBoolean:
		// #t\r\n or #f\r\n
		return 4
	case KindBlobError:
		// !<len>\r\n<code> <message>\r\n
		payload := len(v.err.Code) + 1 + len(v.err.Message)
		return 5 + digits(int64(payload)) + payload
	case KindVerbatimString:
		// =<len>\r\n<3-letter-type>:<bytes>\r\n
		payload := len(v.verb.Value) + 4
		return 5 + digits(int64(payload)) + payload
	case KindArray, KindSet:
		// *<count>\r\n<element>... resp. ~<count>\r\n<element>...
		total := 3 + digits(int64(len(v.elems)))
		for _, elem := range v.elems {
			total += EncodedLength(elem)
		}
		return total
	case KindMap:
		// %<pairCount>\r\n<key><value>...
		// The length prefix counts pairs, not entry fields.
		n := 0
		if v.pairs != nil {
			n = v.pairs.Len()
		}
		total := 3 + digits(int64(n))
		if v.pairs != nil {
			v.pairs.Range(func(k, val Value) bool {
				total += EncodedLength(k) + EncodedLength(val)
				return true
			})
		}
		return total
	default:
		return 0
	}
}

// digits returns the number of bytes needed to print n in base 10, including
// a leading '-' for negative input. digits(0) == 1. The count is computed by
// repeated division; no logarithm is involved, so zero and negative inputs
// are safe.
func digits(n int64) int {
	if n == 0 {
		return 1
	}
	count := 0
	if n < 0 {
		// Count the sign byte and flip via the negative domain so that
		// math.MinInt64 does not overflow.
		count++
		for n != 0 {
			n /= 10
			count++
		}
		return count
	}
	for n > 0 {
		n /= 10
		count++
	}
	return count
}
