package vecstore

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/poiesic/lexindex/core"
)

// MetaTable maps stringified index positions to chunk records. The keys
// are strings because the artifact is JSON; the coercion from integer
// position to string key is isolated behind At so it never leaks into
// calling code.
type MetaTable struct {
	entries map[string]core.ChunkRecord
}

// NewMetaTable creates an empty metadata table.
func NewMetaTable() *MetaTable {
	return &MetaTable{entries: make(map[string]core.ChunkRecord)}
}

// Len returns the number of entries.
func (m *MetaTable) Len() int {
	return len(m.entries)
}

// Add stores a record under its stringified id.
func (m *MetaTable) Add(record core.ChunkRecord) {
	m.entries[strconv.Itoa(record.Id)] = record
}

// At returns the record for an index position, if present.
func (m *MetaTable) At(pos int) (core.ChunkRecord, bool) {
	record, ok := m.entries[strconv.Itoa(pos)]
	return record, ok
}

// Save writes the table as an indented JSON object keyed by stringified
// position. The artifact is human-readable and loaded whole into memory.
// Every record is validated before anything is written.
func (m *MetaTable) Save(path string) error {
	for key := range m.entries {
		record := m.entries[key]
		if err := core.ValidateChunkRecord(&record); err != nil {
			return fmt.Errorf("entry %s: %w", key, err)
		}
	}

	data, err := json.MarshalIndent(m.entries, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadMetaTable reads a table previously written by Save.
func LoadMetaTable(path string) (*MetaTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]core.ChunkRecord)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return &MetaTable{entries: entries}, nil
}

// CheckCorrespondence verifies the positional invariant between an index
// and its metadata table: equal sizes, and an entry present for every
// position. It does not prove the artifacts were written by the same run,
// only that they are mutually consistent.
func CheckCorrespondence(index *FlatIndex, meta *MetaTable) error {
	if index.Len() != meta.Len() {
		return fmt.Errorf("%w: index has %d vectors, metadata has %d entries",
			ErrSizeMismatch, index.Len(), meta.Len())
	}
	for pos := 0; pos < index.Len(); pos++ {
		if _, ok := meta.At(pos); !ok {
			return fmt.Errorf("%w: no metadata entry for position %d", ErrSizeMismatch, pos)
		}
	}
	return nil
}
