package main

import (
	"sync"
	"testing"
)

func TestTTStoreProbeRoundTrip(t *testing.T) {
	tt := NewTranspositionTable(1 << 8)
	tt.Store(0xdeadbeef, -5, 12)
	entry, ok := tt.Probe(0xdeadbeef)
	if !ok {
		t.Fatalf("expected entry to be found")
	}
	if entry.Score != -5 || entry.Depth != 12 {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if _, ok := tt.Probe(0xdeadbee0); ok {
		t.Fatalf("unexpected hit for a different key")
	}
}

func TestTTCollisionOverwrites(t *testing.T) {
	tt := NewTranspositionTable(16)
	first := uint64(3)
	second := first + 16 // same slot under the mask
	tt.Store(first, 1, 4)
	tt.Store(second, 2, 8)
	if _, ok := tt.Probe(first); ok {
		t.Fatalf("expected first entry to be evicted")
	}
	entry, ok := tt.Probe(second)
	if !ok || entry.Score != 2 {
		t.Fatalf("expected second entry to survive, got %+v ok=%v", entry, ok)
	}
}

func TestTTClearAndCount(t *testing.T) {
	tt := NewTranspositionTable(64)
	for i := uint64(0); i < 10; i++ {
		tt.Store(i, int(i), 1)
	}
	if got := tt.Count(); got != 10 {
		t.Fatalf("expected 10 entries, got %d", got)
	}
	tt.Clear()
	if got := tt.Count(); got != 0 {
		t.Fatalf("expected empty table after clear, got %d", got)
	}
	if tt.Capacity() != 64 {
		t.Fatalf("clear must not change capacity, got %d", tt.Capacity())
	}
}

func TestTTSizeRoundsUpToPowerOfTwo(t *testing.T) {
	tt := NewTranspositionTable(100)
	if tt.Capacity() != 128 {
		t.Fatalf("expected capacity 128, got %d", tt.Capacity())
	}
	tt = NewTranspositionTable(0)
	if tt.Capacity() != 1 {
		t.Fatalf("expected minimum capacity 1, got %d", tt.Capacity())
	}
}

func TestTTTopEntriesPaging(t *testing.T) {
	tt := NewTranspositionTable(64)
	for i := uint64(0); i < 20; i++ {
		tt.Store(i, int(i), 1)
	}
	page, total := tt.TopEntries(5, 10)
	if total != 20 {
		t.Fatalf("expected 20 valid entries, got %d", total)
	}
	if len(page) != 10 {
		t.Fatalf("expected a page of 10, got %d", len(page))
	}
}

func TestTTConcurrentProbeStore(t *testing.T) {
	tt := NewTranspositionTable(1 << 12)
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			for i := 0; i < 4000; i++ {
				key := seed*0x9e3779b97f4a7c15 + uint64(i)
				tt.Store(key, i%37-18, (i%42)+1)
				tt.Probe(key)
				tt.Probe(key ^ 0x9e3779b97f4a7c15)
			}
		}(uint64(g + 1))
	}

	wg.Wait()
	if tt.Count() == 0 {
		t.Fatalf("expected TT to contain entries after concurrent traffic")
	}
}
