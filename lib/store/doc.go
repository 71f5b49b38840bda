// Package store provides a concurrent in-memory table of named protocol
// values with snapshot persistence.
//
// The package focuses on:
//   - Lock-free concurrent access through xsync.MapOf
//   - Treating stored values as immutable snapshots (never copied, never
//     mutated by the store)
//   - Snapshot persistence built on the RESP3 wire codec, so saved files
//     are framed with the same grammar the rest of the system speaks
//   - Operation counters via VictoriaMetrics for monitoring
//
// Key Components:
//
//   - Store: the table itself, with Set/Get/Has/Delete/Len/Range plus
//     Save/Load snapshotting and an Info summary (entry count and total
//     encoded size).
//
// Snapshot Format:
//
//  1. Magic number "RESPVDB\x00" to identify the file format
//  2. Version number (currently 1)
//  3. Number of entries
//  4. For each entry: key length, key bytes, value length, value bytes in
//     RESP3 wire encoding
//
// Note: Save does not lock the store. It creates a fuzzy snapshot that does
// not represent a consistent cut under concurrent writes; callers needing
// consistency must quiesce writers first. The declared entry count is taken
// from the collected entries themselves, so a fuzzy snapshot is still
// well-framed and loadable.
package store
