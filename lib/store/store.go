package store

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/ValentinKolb/respv/lib/value"
	"github.com/ValentinKolb/respv/lib/wire"
)

// --------------------------------------------------------------------------
// Constants
// --------------------------------------------------------------------------

const (
	magicNum     = "RESPVDB\x00" // Snapshot file format identifier
	storeVersion = 1             // Snapshot format version
)

var (
	log = logger.GetLogger("store")

	setOps    = metrics.GetOrCreateCounter(`respv_store_ops_total{op="set"}`)
	getOps    = metrics.GetOrCreateCounter(`respv_store_ops_total{op="get"}`)
	deleteOps = metrics.GetOrCreateCounter(`respv_store_ops_total{op="delete"}`)
)

// --------------------------------------------------------------------------
// Store Definition
// --------------------------------------------------------------------------

// Store is a concurrent in-memory table of named protocol values, the shape
// a reply cache in front of a RESP server holds: string keys, value.Value
// payloads. Reads and writes on different keys run concurrently without
// external locking.
//
// Values handed to Set are treated as immutable snapshots; the store never
// mutates or copies them. Callers that built values over borrowed buffers
// must keep those buffers alive for as long as the store holds the value.
type Store struct {
	data *xsync.MapOf[string, value.Value]
}

// StoreInfo describes the current contents of a store.
type StoreInfo struct {
	Entries      int `json:"entries"`
	EncodedBytes int `json:"encoded_bytes"` // Total wire size of all values
}

// New creates an empty store.
func New() *Store {
	return &Store{data: xsync.NewMapOf[string, value.Value]()}
}

// --------------------------------------------------------------------------
// Core Operations
// --------------------------------------------------------------------------

// Set inserts or replaces the value stored under key.
func (s *Store) Set(key string, v value.Value) {
	setOps.Inc()
	s.data.Store(key, v)
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (value.Value, bool) {
	getOps.Inc()
	return s.data.Load(key)
}

// Has reports whether a value is stored under key.
func (s *Store) Has(key string) bool {
	_, ok := s.data.Load(key)
	return ok
}

// Delete removes the value stored under key and reports whether one existed.
func (s *Store) Delete(key string) bool {
	deleteOps.Inc()
	_, ok := s.data.LoadAndDelete(key)
	return ok
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return s.data.Size()
}

// Range calls fn for every entry until fn returns false.
func (s *Store) Range(fn func(key string, v value.Value) bool) {
	s.data.Range(fn)
}

// Info returns entry count and total encoded size of the store contents.
func (s *Store) Info() StoreInfo {
	info := StoreInfo{}
	s.data.Range(func(_ string, v value.Value) bool {
		info.Entries++
		info.EncodedBytes += value.EncodedLength(v)
		return true
	})
	return info
}

// --------------------------------------------------------------------------
// Persistence Operations
// --------------------------------------------------------------------------

// Save writes a snapshot of the store to w: a magic number and version
// header, the entry count, then each entry as length-prefixed key bytes
// followed by the length-prefixed RESP3 wire encoding of the value.
//
// The snapshot is fuzzy: entries written or deleted concurrently may or may
// not be included. Callers that need a consistent cut must quiesce writers.
// The entries are collected before the header is written, so the declared
// count always matches the body and a fuzzy snapshot stays loadable.
func (s *Store) Save(w io.Writer) (err error) {
	type snapshotEntry struct {
		key     string
		encoded []byte
	}

	// Collect first; the count written below must describe exactly the
	// entries that follow it, not the table size at some other moment.
	entries := make([]snapshotEntry, 0, s.data.Size())
	s.data.Range(func(key string, v value.Value) bool {
		var encoded []byte
		if encoded, err = wire.Marshal(v); err != nil {
			return false
		}
		entries = append(entries, snapshotEntry{key: key, encoded: encoded})
		return true
	})
	if err != nil {
		return fmt.Errorf("store: encode entry: %w", err)
	}

	bw := bufio.NewWriter(w)

	if _, err = bw.WriteString(magicNum); err != nil {
		return fmt.Errorf("store: write magic number: %w", err)
	}
	if err = binary.Write(bw, binary.BigEndian, uint32(storeVersion)); err != nil {
		return fmt.Errorf("store: write version: %w", err)
	}
	if err = binary.Write(bw, binary.BigEndian, uint64(len(entries))); err != nil {
		return fmt.Errorf("store: write entry count: %w", err)
	}

	for _, e := range entries {
		if err = binary.Write(bw, binary.BigEndian, uint32(len(e.key))); err != nil {
			return fmt.Errorf("store: write entry: %w", err)
		}
		if _, err = bw.WriteString(e.key); err != nil {
			return fmt.Errorf("store: write entry: %w", err)
		}
		if err = binary.Write(bw, binary.BigEndian, uint32(len(e.encoded))); err != nil {
			return fmt.Errorf("store: write entry: %w", err)
		}
		if _, err = bw.Write(e.encoded); err != nil {
			return fmt.Errorf("store: write entry: %w", err)
		}
	}

	if err = bw.Flush(); err != nil {
		return fmt.Errorf("store: flush snapshot: %w", err)
	}

	log.Infof("saved snapshot with %d entries", len(entries))
	return nil
}

// Load restores store contents from a snapshot produced by Save. Existing
// entries are kept; snapshot entries overwrite entries with the same key.
//
// Note: the declared entry count is trusted only as an upper bound check on
// the stream, every entry is still length-framed individually.
func (s *Store) Load(r io.Reader) error {
	br := bufio.NewReader(r)

	magic := make([]byte, len(magicNum))
	if _, err := io.ReadFull(br, magic); err != nil {
		return fmt.Errorf("store: read magic number: %w", err)
	}
	if string(magic) != magicNum {
		return fmt.Errorf("store: invalid magic number %q", magic)
	}

	var version uint32
	if err := binary.Read(br, binary.BigEndian, &version); err != nil {
		return fmt.Errorf("store: read version: %w", err)
	}
	if version != storeVersion {
		return fmt.Errorf("store: unsupported snapshot version %d", version)
	}

	var count uint64
	if err := binary.Read(br, binary.BigEndian, &count); err != nil {
		return fmt.Errorf("store: read entry count: %w", err)
	}

	for i := uint64(0); i < count; i++ {
		var keyLen uint32
		if err := binary.Read(br, binary.BigEndian, &keyLen); err != nil {
			return fmt.Errorf("store: read key length: %w", err)
		}
		key := make([]byte, keyLen)
		if _, err := io.ReadFull(br, key); err != nil {
			return fmt.Errorf("store: read key: %w", err)
		}

		var valLen uint32
		if err := binary.Read(br, binary.BigEndian, &valLen); err != nil {
			return fmt.Errorf("store: read value length: %w", err)
		}
		// The decoded value borrows from this buffer, which stays alive
		// exactly as long as the entry does.
		encoded := make([]byte, valLen)
		if _, err := io.ReadFull(br, encoded); err != nil {
			return fmt.Errorf("store: read value: %w", err)
		}

		v, err := wire.Unmarshal(encoded)
		if err != nil {
			return fmt.Errorf("store: decode value for key %q: %w", key, err)
		}
		s.data.Store(string(key), v)
	}

	log.Infof("loaded snapshot with %d entries", count)
	return nil
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.data.Clear()
}
