package value

import "github.com/ValentinKolb/respv/lib/hashtab"

// --------------------------------------------------------------------------
// Map Container
// --------------------------------------------------------------------------

// Map is the backing container of the Map kind: a mutable table from Value
// keys to Value payloads, using the package's structural Hash and Equal.
// Because keys are compared structurally, composite values (an Array, even
// another Map) are valid keys.
//
// The container belongs to whoever constructs it. Build it up, wrap it with
// MapValue, and call Release once the owning value is no longer in use. All
// Values derived from it treat it as an immutable snapshot; mutating a Map
// while EncodedLength, Equal or Hash traverse it is undefined.
//
// Thread-safety: single writer, no concurrent reader during writes. Callers
// needing concurrent mutation must synchronize externally.
type Map struct {
	tab *hashtab.Table[Value, Value]
}

// NewMap creates an empty map container.
func NewMap() *Map {
	return &Map{tab: hashtab.New[Value, Value](Hash, Equal)}
}

// Set inserts or updates the payload for key. Inserting a key structurally
// equal to an existing one overwrites the stored payload (last write wins);
// the return value reports whether a previous entry existed. This keeps the
// key-uniqueness invariant Equal and Hash rely on.
func (m *Map) Set(key, val Value) (replaced bool) {
	return m.tab.Set(key, val)
}

// Get returns the payload stored for a key structurally equal to key.
func (m *Map) Get(key Value) (Value, bool) {
	return m.tab.Get(key)
}

// Has reports whether the map holds a key structurally equal to key.
func (m *Map) Has(key Value) bool {
	return m.tab.Has(key)
}

// Delete removes the entry for key and reports whether one was present.
func (m *Map) Delete(key Value) bool {
	return m.tab.Delete(key)
}

// Len returns the number of key-value pairs.
func (m *Map) Len() int {
	return m.tab.Len()
}

// Range calls fn for every pair until fn returns false. Iteration order is
// unspecified; wire encoding and hashing must not depend on it beyond what
// Hash documents.
func (m *Map) Range(fn func(key, val Value) bool) {
	m.tab.Range(fn)
}

// Release drops the backing table. The owner calls this once the map value
// goes out of use; the Map itself remains reusable afterwards (empty).
func (m *Map) Release() {
	m.tab.Clear()
}
