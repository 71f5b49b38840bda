package hashtab

import (
	"strconv"
	"testing"
)

// newStringTable creates a table over plain strings for testing.
func newStringTable() *Table[string, int] {
	hash := func(s string) uint32 {
		var h uint32 = 5381
		for i := 0; i < len(s); i++ {
			h = h*33 + uint32(s[i])
		}
		return h
	}
	equal := func(a, b string) bool { return a == b }
	return New[string, int](hash, equal)
}

// TestNewTable tests the creation of a new table.
func TestNewTable(t *testing.T) {
	tab := newStringTable()

	if tab == nil {
		t.Fatal("New() returned nil")
	}
	if tab.Len() != 0 {
		t.Errorf("new table should be empty, but has length %d", tab.Len())
	}
}

// TestSetGet tests inserting and retrieving entries.
func TestSetGet(t *testing.T) {
	tab := newStringTable()

	if replaced := tab.Set("a", 1); replaced {
		t.Error("first Set reported a replaced entry")
	}
	tab.Set("b", 2)
	tab.Set("c", 3)

	if tab.Len() != 3 {
		t.Errorf("table should have 3 entries, but has %d", tab.Len())
	}

	for key, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		got, ok := tab.Get(key)
		if !ok {
			t.Errorf("key %q not found", key)
			continue
		}
		if got != want {
			t.Errorf("key %q: got %d, want %d", key, got, want)
		}
	}

	if _, ok := tab.Get("missing"); ok {
		t.Error("Get() found a missing key")
	}
}

// TestSetOverwrite tests the last-write-wins policy for equal keys.
func TestSetOverwrite(t *testing.T) {
	tab := newStringTable()

	tab.Set("key", 1)
	if replaced := tab.Set("key", 2); !replaced {
		t.Error("Set on an existing key did not report a replaced entry")
	}
	if tab.Len() != 1 {
		t.Errorf("overwrite changed entry count to %d", tab.Len())
	}
	if got, _ := tab.Get("key"); got != 2 {
		t.Errorf("overwrite kept the old value %d", got)
	}
}

// TestDelete tests entry removal.
func TestDelete(t *testing.T) {
	tab := newStringTable()
	tab.Set("a", 1)
	tab.Set("b", 2)

	if !tab.Delete("a") {
		t.Error("Delete() missed an existing key")
	}
	if tab.Delete("a") {
		t.Error("Delete() reported success for a removed key")
	}
	if tab.Len() != 1 {
		t.Errorf("table should have 1 entry after delete, has %d", tab.Len())
	}
	if _, ok := tab.Get("b"); !ok {
		t.Error("Delete() removed an unrelated key")
	}
}

// TestGrowth tests that the table survives growth and keeps all entries
// reachable.
func TestGrowth(t *testing.T) {
	tab := newStringTable()

	const n = 1000
	for i := 0; i < n; i++ {
		tab.Set("key-"+strconv.Itoa(i), i)
	}
	if tab.Len() != n {
		t.Fatalf("table should have %d entries, has %d", n, tab.Len())
	}
	for i := 0; i < n; i++ {
		got, ok := tab.Get("key-" + strconv.Itoa(i))
		if !ok {
			t.Fatalf("key %d lost after growth", i)
		}
		if got != i {
			t.Fatalf("key %d: got %d", i, got)
		}
	}
}

// TestCollidingHashes tests that the equality function, not the hash alone,
// decides identity: a constant hash function must still behave correctly.
func TestCollidingHashes(t *testing.T) {
	tab := New[string, int](
		func(string) uint32 { return 42 },
		func(a, b string) bool { return a == b },
	)

	tab.Set("a", 1)
	tab.Set("b", 2)
	tab.Set("c", 3)

	if tab.Len() != 3 {
		t.Fatalf("table should have 3 entries despite colliding hashes, has %d", tab.Len())
	}
	if got, _ := tab.Get("b"); got != 2 {
		t.Errorf("colliding-hash lookup returned %d, want 2", got)
	}
	if !tab.Delete("b") {
		t.Error("colliding-hash delete missed its key")
	}
	if _, ok := tab.Get("b"); ok {
		t.Error("deleted key still reachable")
	}
	if got, _ := tab.Get("c"); got != 3 {
		t.Error("delete disturbed a colliding sibling")
	}
}

// TestRange tests iteration and early stop.
func TestRange(t *testing.T) {
	tab := newStringTable()
	want := map[string]int{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		tab.Set(k, v)
	}

	seen := make(map[string]int)
	tab.Range(func(k string, v int) bool {
		seen[k] = v
		return true
	})
	if len(seen) != len(want) {
		t.Errorf("Range visited %d entries, want %d", len(seen), len(want))
	}
	for k, v := range want {
		if seen[k] != v {
			t.Errorf("Range saw %q=%d, want %d", k, seen[k], v)
		}
	}

	count := 0
	tab.Range(func(string, int) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("Range ignored the stop signal, visited %d entries", count)
	}
}

// TestClear tests that Clear empties the table but keeps it usable.
func TestClear(t *testing.T) {
	tab := newStringTable()
	tab.Set("a", 1)
	tab.Clear()

	if tab.Len() != 0 {
		t.Errorf("cleared table should be empty, has %d entries", tab.Len())
	}

	tab.Set("b", 2)
	if got, ok := tab.Get("b"); !ok || got != 2 {
		t.Error("table unusable after Clear")
	}
}
