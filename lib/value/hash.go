package value

import "encoding/binary"

// --------------------------------------------------------------------------
// One-At-A-Time Hash Primitive
// --------------------------------------------------------------------------

// The primitive below is the classic Jenkins one-at-a-time hash: mix folds
// one input word into the accumulator, finalize improves avalanche before
// the result is used. It is deterministic, allocation-free and NOT
// cryptographically secure - do not use it where an adversary controls the
// input and collisions matter.

// mix folds one input word into the accumulator.
func mix(acc, in uint32) uint32 {
	acc += in
	acc += acc << 10
	acc ^= acc >> 6
	return acc
}

// finalize applies the avalanche step to a fully mixed accumulator.
func finalize(acc uint32) uint32 {
	acc += acc << 3
	acc ^= acc >> 11
	acc += acc << 15
	return acc
}

// hashBytes hashes a byte sequence. Two memory-equal sequences always hash
// equal.
func hashBytes(b []byte) uint32 {
	var acc uint32
	for _, c := range b {
		acc = mix(acc, uint32(c))
	}
	return finalize(acc)
}

// hashInt64 hashes the 8-byte little-endian representation of n.
func hashInt64(n int64) uint32 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(n))
	return hashBytes(b[:])
}

// --------------------------------------------------------------------------
// Structural Hash
// --------------------------------------------------------------------------

// Hash returns a 32-bit structural hash of the value, consistent with Equal:
// values that compare equal always hash equal.
//
// The result folds the variant tag with a per-kind payload hash. For Array
// and Set the payload hash folds the element hashes in element order, so it
// is order-sensitive exactly like Equal is for those kinds. For Map the
// per-pair hashes are combined with wrapping addition, so the hash does not
// depend on insertion order - matching Map equality, which is lookup-based.
//
// Thread-safety: pure read-only traversal, safe for concurrent use on
// immutable values.
func Hash(v Value) uint32 {
	result := mix(0, uint32(v.kind))

	var child uint32
	switch v.kind {
	case KindBlobString, KindSimpleString:
		child = hashBytes(v.str)
	case KindNumber:
		child = hashInt64(v.num)
	case KindNull:
		child = 0
	case KindBoolean:
		if v.flag {
			child = 1
		}
	case KindSimpleError, KindBlobError:
		child = finalize(mix(hashBytes(v.err.Code), hashBytes(v.err.Message)))
	case KindVerbatimString:
		child = finalize(mix(uint32(v.verb.Type), hashBytes(v.verb.Value)))
	case KindArray, KindSet:
		var sum uint32
		for _, elem := range v.elems {
			sum = mix(sum, Hash(elem))
		}
		child = finalize(sum)
	case KindMap:
		var sum uint32
		if v.pairs != nil {
			v.pairs.Range(func(k, val Value) bool {
				sum += finalize(mix(Hash(k), Hash(val)))
				return true
			})
		}
		child = finalize(sum)
	}

	return finalize(mix(result, child))
}
