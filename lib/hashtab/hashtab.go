// Package hashtab provides a generic hash table parameterized by explicit
// hash and equality functions over the key type.
//
// Go's built-in map requires comparable keys, which rules out recursive or
// slice-backed key types. This table instead takes the hash and equality
// relation as constructor arguments, so any key type with a consistent
// hash/equal pair can be stored - including deeply nested protocol values.
//
// Key properties:
//
// 1. Time Complexity:
//   - O(1) average for Set, Get, Delete and Has
//   - O(n) for Range and Clear
//
// 2. Semantics:
//   - Set on a key equal (per the supplied equality) to an existing key
//     overwrites the stored value and reports that a previous entry existed
//   - iteration order is the table's internal bucket order and is not
//     specified; callers must not rely on it
//
// 3. Concurrency Considerations:
//   - Note: this implementation is not thread-safe by default
//   - for concurrent use, external synchronization must be applied
package hashtab

// --------------------------------------------------------------------------
// Table Definition
// --------------------------------------------------------------------------

const (
	// initialBuckets is the bucket count of a fresh table. Must be a power
	// of two so that masking replaces modulo.
	initialBuckets = 8

	// maxLoadNum/maxLoadDen is the load factor threshold (3/4) above which
	// the bucket array doubles.
	maxLoadNum = 3
	maxLoadDen = 4
)

// entry is a single key-value pair plus the cached hash of its key. Caching
// the hash avoids recomputing it on every grow.
type entry[K, V any] struct {
	hash uint32
	key  K
	val  V
}

// Table is a bucketed hash table over keys of type K. The zero value is not
// usable; create instances with New.
type Table[K, V any] struct {
	hash    func(K) uint32
	equal   func(K, K) bool
	buckets [][]entry[K, V]
	size    int
}

// New creates an empty table using the given hash and equality functions.
// The two functions must be consistent: keys that compare equal must hash
// equal, or lookups will miss.
func New[K, V any](hash func(K) uint32, equal func(K, K) bool) *Table[K, V] {
	return &Table[K, V]{
		hash:    hash,
		equal:   equal,
		buckets: make([][]entry[K, V], initialBuckets),
	}
}

// --------------------------------------------------------------------------
// Core Operations
// --------------------------------------------------------------------------

// Set inserts or updates the value for key. If the table already holds a key
// equal to it, the stored value is overwritten and Set returns true.
func (t *Table[K, V]) Set(key K, val V) (replaced bool) {
	h := t.hash(key)
	idx := h & uint32(len(t.buckets)-1)

	bucket := t.buckets[idx]
	for i := range bucket {
		if bucket[i].hash == h && t.equal(bucket[i].key, key) {
			bucket[i].val = val
			return true
		}
	}

	t.buckets[idx] = append(bucket, entry[K, V]{hash: h, key: key, val: val})
	t.size++

	if t.size*maxLoadDen > len(t.buckets)*maxLoadNum {
		t.grow()
	}
	return false
}

// Get returns the value stored for key and whether the key was present.
func (t *Table[K, V]) Get(key K) (val V, ok bool) {
	h := t.hash(key)
	bucket := t.buckets[h&uint32(len(t.buckets)-1)]
	for i := range bucket {
		if bucket[i].hash == h && t.equal(bucket[i].key, key) {
			return bucket[i].val, true
		}
	}
	return val, false
}

// Has reports whether the table holds a key equal to the given one.
func (t *Table[K, V]) Has(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Delete removes the entry for key and reports whether one was present.
func (t *Table[K, V]) Delete(key K) bool {
	h := t.hash(key)
	idx := h & uint32(len(t.buckets)-1)
	bucket := t.buckets[idx]
	for i := range bucket {
		if bucket[i].hash == h && t.equal(bucket[i].key, key) {
			last := len(bucket) - 1
			bucket[i] = bucket[last]
			t.buckets[idx] = bucket[:last]
			t.size--
			return true
		}
	}
	return false
}

// Len returns the number of entries in the table.
func (t *Table[K, V]) Len() int {
	return t.size
}

// Range calls fn for every entry until fn returns false. The iteration order
// is unspecified. The table must not be mutated during iteration.
func (t *Table[K, V]) Range(fn func(key K, val V) bool) {
	for _, bucket := range t.buckets {
		for i := range bucket {
			if !fn(bucket[i].key, bucket[i].val) {
				return
			}
		}
	}
}

// Clear removes all entries and releases the bucket storage. The table
// remains usable afterwards.
func (t *Table[K, V]) Clear() {
	t.buckets = make([][]entry[K, V], initialBuckets)
	t.size = 0
}

// --------------------------------------------------------------------------
// Internal Helpers
// --------------------------------------------------------------------------

// grow doubles the bucket array and redistributes all entries using their
// cached hashes.
func (t *Table[K, V]) grow() {
	next := make([][]entry[K, V], len(t.buckets)*2)
	mask := uint32(len(next) - 1)
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			idx := e.hash & mask
			next[idx] = append(next[idx], e)
		}
	}
	t.buckets = next
}
