package main

import "sync"

// TTEntry memoizes a solved subposition. Depth is the number of plies that
// remained below the position when the score was computed; the entry is
// reusable only for queries needing at most that much depth, which the caller
// checks against TotalCells - moves.
type TTEntry struct {
	Key   uint64
	Score int16
	Depth int8
	Valid bool
}

// TranspositionTable is a fixed-capacity, direct-mapped cache of solved
// positions. Slots are chosen by masking the key; on an index collision the
// newer entry overwrites the older one unconditionally. The search runs on a
// single goroutine, but the cache-inspection endpoints read concurrently, so
// access is guarded by one RWMutex.
type TranspositionTable struct {
	mu      sync.RWMutex
	mask    uint64
	entries []TTEntry
}

func NewTranspositionTable(size uint64) *TranspositionTable {
	if size < 1 {
		size = 1
	}
	if size&(size-1) != 0 {
		size = nextPowerOfTwo(size)
	}
	return &TranspositionTable{
		mask:    size - 1,
		entries: make([]TTEntry, size),
	}
}

func (tt *TranspositionTable) Probe(key uint64) (TTEntry, bool) {
	tt.mu.RLock()
	defer tt.mu.RUnlock()
	entry := tt.entries[key&tt.mask]
	if !entry.Valid || entry.Key != key {
		return TTEntry{}, false
	}
	return entry, true
}

func (tt *TranspositionTable) Store(key uint64, score int, depth int) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.entries[key&tt.mask] = TTEntry{
		Key:   key,
		Score: int16(score),
		Depth: int8(depth),
		Valid: true,
	}
}

func (tt *TranspositionTable) Clear() {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
}

func (tt *TranspositionTable) Count() int {
	tt.mu.RLock()
	defer tt.mu.RUnlock()
	count := 0
	for i := range tt.entries {
		if tt.entries[i].Valid {
			count++
		}
	}
	return count
}

func (tt *TranspositionTable) Capacity() int {
	if tt == nil {
		return 0
	}
	return len(tt.entries)
}

// TopEntries returns a page of valid entries in slot order, plus the total
// number of valid entries; used by the cache-inspection API.
func (tt *TranspositionTable) TopEntries(offset, limit int) ([]TTEntry, int) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	tt.mu.RLock()
	defer tt.mu.RUnlock()
	valid := make([]TTEntry, 0, limit)
	total := 0
	for i := range tt.entries {
		if !tt.entries[i].Valid {
			continue
		}
		if total >= offset && len(valid) < limit {
			valid = append(valid, tt.entries[i])
		}
		total++
	}
	return valid, total
}

func (tt *TranspositionTable) snapshotEntries() []TTEntry {
	tt.mu.RLock()
	defer tt.mu.RUnlock()
	entries := make([]TTEntry, len(tt.entries))
	copy(entries, tt.entries)
	return entries
}

func (tt *TranspositionTable) loadEntries(entries []TTEntry) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	if len(entries) > len(tt.entries) {
		entries = entries[:len(tt.entries)]
	}
	copy(tt.entries[:len(entries)], entries)
}

func nextPowerOfTwo(v uint64) uint64 {
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	v++
	return v
}
