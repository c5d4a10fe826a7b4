package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"textcheck/internal/category"
)

// Snapshot schema version - increment when the payload format changes.
const snapshotSchemaVersion uint16 = 1

// SnapshotExample mirrors Example for serialization.
type SnapshotExample struct {
	Token       string
	Occurrences uint64
	Locations   []string
}

// SnapshotRecord mirrors Record for serialization. Categories are keyed
// by their stable names so snapshots survive registry reordering.
type SnapshotRecord struct {
	Tag          string
	Count        uint64
	Examples     []SnapshotExample
	ExamplesFull bool
}

// Snapshot is the on-disk form of a finished store plus run counters.
type Snapshot struct {
	Schema       uint16
	LangCode     string
	Lines        uint64
	Tokens       uint64
	Characters   uint64
	MaxExamples  int
	MaxLocations int
	Records      []SnapshotRecord
}

// TakeSnapshot captures the store and counters into a serializable value.
func TakeSnapshot(s *Store, langCode string, lines, tokens, characters uint64) *Snapshot {
	snap := &Snapshot{
		Schema:       snapshotSchemaVersion,
		LangCode:     langCode,
		Lines:        lines,
		Tokens:       tokens,
		Characters:   characters,
		MaxExamples:  s.MaxExamples,
		MaxLocations: s.MaxLocations,
	}
	for _, tag := range category.All() {
		rec := s.Record(tag)
		if rec == nil {
			continue
		}
		sr := SnapshotRecord{
			Tag:          tag.Name(),
			Count:        rec.Count,
			ExamplesFull: rec.ExamplesFull,
		}
		for _, token := range rec.Order {
			ex := rec.Examples[token]
			sr.Examples = append(sr.Examples, SnapshotExample{
				Token:       token,
				Occurrences: ex.Occurrences,
				Locations:   ex.Locations,
			})
		}
		snap.Records = append(snap.Records, sr)
	}
	return snap
}

// Restore rebuilds a store from a snapshot. Unknown tag names mean the
// snapshot was written by an incompatible build and are an error.
func (snap *Snapshot) Restore() (*Store, error) {
	byName := make(map[string]category.Tag, category.Count)
	for _, tag := range category.All() {
		byName[tag.Name()] = tag
	}
	s := New(snap.MaxExamples, snap.MaxLocations)
	for _, sr := range snap.Records {
		tag, ok := byName[sr.Tag]
		if !ok {
			return nil, fmt.Errorf("snapshot: unknown category %q", sr.Tag)
		}
		rec := &Record{
			Count:        sr.Count,
			Examples:     make(map[string]*Example, len(sr.Examples)),
			ExamplesFull: sr.ExamplesFull,
		}
		for _, se := range sr.Examples {
			rec.Examples[se.Token] = &Example{
				Occurrences: se.Occurrences,
				Locations:   append([]string(nil), se.Locations...),
			}
			rec.Order = append(rec.Order, se.Token)
		}
		s.recs[tag] = rec
	}
	return s, nil
}

// WriteFile serializes the snapshot with msgpack, writing to a temp
// file in the target directory and renaming for atomic replacement.
func (snap *Snapshot) WriteFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(snap); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// ReadSnapshotFile deserializes a snapshot written by WriteFile.
func ReadSnapshotFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var snap Snapshot
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("%s: failed to decode snapshot: %w", path, err)
	}
	if snap.Schema != snapshotSchemaVersion {
		return nil, fmt.Errorf("%s: snapshot schema %d, want %d", path, snap.Schema, snapshotSchemaVersion)
	}
	return &snap, nil
}
