// Package cache provides fixed-size probe/store tables keyed by the board's
// incremental hash channels: a clustered, depth-preferred table for
// full-position keys and a power-of-two table for the pawn/major/minor
// sub-channels. It holds storage only; replacement policy aside, it knows
// nothing about search.
package cache

import (
	"unsafe"

	"github.com/nocturn9x/hobbes-chess-engine/board"
)

// Bound classifies a stored score relative to the window it was searched in.
const (
	BoundUpper = iota
	BoundLower
	BoundExact
)

const clusterSize = 4

// Entry is one stored position record.
type Entry struct {
	Key   uint64
	Move  board.Move
	Score int16
	Depth int8
	Bound uint8
}

// Table is a fixed-size cache keyed by the full-position hash. Entries are
// grouped in clusters; within a cluster, replacement prefers keeping the
// deeper record.
type Table struct {
	entries      []Entry
	clusterCount uint64
}

// NewTable allocates a table of roughly sizeMB megabytes.
func NewTable(sizeMB int) *Table {
	entrySize := uint64(unsafe.Sizeof(Entry{}))
	clusterBytes := entrySize * clusterSize
	clusterCount := uint64(sizeMB) * 1024 * 1024 / clusterBytes
	if clusterCount == 0 {
		clusterCount = 1
	}
	return &Table{
		entries:      make([]Entry, clusterCount*clusterSize),
		clusterCount: clusterCount,
	}
}

func (t *Table) cluster(key uint64) []Entry {
	base := (key % t.clusterCount) * clusterSize
	return t.entries[base : base+clusterSize]
}

// Probe looks the key up and returns the stored entry if present.
func (t *Table) Probe(key uint64) (Entry, bool) {
	for _, e := range t.cluster(key) {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Store records an entry for the key, overwriting the shallowest record in
// the cluster unless the key is already present.
func (t *Table) Store(key uint64, mv board.Move, score int16, depth int8, bound uint8) {
	cl := t.cluster(key)
	victim := 0
	for i := range cl {
		if cl[i].Key == key {
			victim = i
			break
		}
		if cl[i].Depth < cl[victim].Depth {
			victim = i
		}
	}
	cl[victim] = Entry{Key: key, Move: mv, Score: score, Depth: depth, Bound: bound}
}

// Clear drops every stored entry.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

// PawnEntry caches a pair of evaluation terms for a pawn-structure key. The
// same shape serves the major- and minor-piece channels.
type PawnEntry struct {
	Key    uint64
	MG, EG int16
	Used   bool
}

// PawnTable is a direct-mapped, power-of-two table keyed by one of the
// placement sub-channels.
type PawnTable struct {
	entries []PawnEntry
	mask    uint64
}

// NewPawnTable allocates a table of roughly sizeMB megabytes, rounded down
// to a power-of-two entry count.
func NewPawnTable(sizeMB int) *PawnTable {
	entrySize := uint64(unsafe.Sizeof(PawnEntry{}))
	want := uint64(sizeMB) * 1024 * 1024 / entrySize
	count := uint64(1)
	for count*2 <= want {
		count *= 2
	}
	return &PawnTable{
		entries: make([]PawnEntry, count),
		mask:    count - 1,
	}
}

// Probe returns the cached terms for the key if present.
func (pt *PawnTable) Probe(key uint64) (mg, eg int16, ok bool) {
	e := &pt.entries[key&pt.mask]
	if !e.Used || e.Key != key {
		return 0, 0, false
	}
	return e.MG, e.EG, true
}

// Store records the terms for the key, replacing whatever the slot held.
func (pt *PawnTable) Store(key uint64, mg, eg int16) {
	pt.entries[key&pt.mask] = PawnEntry{Key: key, MG: mg, EG: eg, Used: true}
}

// Clear drops every stored entry.
func (pt *PawnTable) Clear() {
	for i := range pt.entries {
		pt.entries[i] = PawnEntry{}
	}
}
