package value

import "bytes"

// --------------------------------------------------------------------------
// Structural Equality
// --------------------------------------------------------------------------

// Equal reports whether two values are structurally equal.
//
// Values of different kinds are never equal; there is no cross-kind coercion
// (Number 0 and Boolean false are distinct). For matching kinds the payloads
// are compared recursively:
//
//   - string kinds compare bytes, errors compare code and message bytes,
//     verbatim strings compare format type and bytes
//   - Array and Set require equal length and pairwise-equal elements at
//     matching indices. Set equality is therefore order-sensitive: the kind
//     is backed by an ordered sequence, not a canonical sorted form.
//   - Map requires equal entry count, then every entry of a must be present
//     in b with an equal value. One direction suffices because both maps
//     keep keys unique under this same equality.
//
// Thread-safety: pure read-only traversal, safe for concurrent use on
// immutable values.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindBlobString, KindSimpleString:
		return bytes.Equal(a.str, b.str)
	case KindNumber:
		return a.num == b.num
	case KindNull:
		return true
	case KindBoolean:
		return a.flag == b.flag
	case KindSimpleError, KindBlobError:
		return bytes.Equal(a.err.Code, b.err.Code) &&
			bytes.Equal(a.err.Message, b.err.Message)
	case KindVerbatimString:
		return a.verb.Type == b.verb.Type &&
			bytes.Equal(a.verb.Value, b.verb.Value)
	case KindArray, KindSet:
		if len(a.elems) != len(b.elems) {
			return false
		}
		for i := range a.elems {
			if !Equal(a.elems[i], b.elems[i]) {
				return false
			}
		}
		return true
	case KindMap:
		an, bn := 0, 0
		if a.pairs != nil {
			an = a.pairs.Len()
		}
		if b.pairs != nil {
			bn = b.pairs.Len()
		}
		if an != bn {
			return false
		}
		if an == 0 {
			return true
		}
		equal := true
		a.pairs.Range(func(k, av Value) bool {
			bv, ok := b.pairs.Get(k)
			if !ok || !Equal(av, bv) {
				equal = false
				return false
			}
			return true
		})
		return equal
	default:
		return false
	}
}
