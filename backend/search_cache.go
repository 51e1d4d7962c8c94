package main

import "sync"

// SearchCache owns the transposition table shared by every solver in the
// process. It persists across moves within a game session so later searches
// reuse earlier work, and is rebuilt when the configured size changes.
type SearchCache struct {
	mu     sync.Mutex
	TT     *TranspositionTable
	TTSize int
}

var sharedSearchCache = &SearchCache{}

func SharedSearchCache() *SearchCache {
	return sharedSearchCache
}

// ensureTT returns the cache's table, creating or resizing it according to
// config. Returns nil when caching is disabled; the solver treats a nil table
// as a no-op cache and produces identical results.
func ensureTT(cache *SearchCache, config Config) *TranspositionTable {
	if !config.SolverEnableTT {
		return nil
	}
	size := config.SolverTtSize
	if size <= 0 {
		size = defaultTTSize
	}
	cache.mu.Lock()
	defer cache.mu.Unlock()
	if cache.TT == nil || cache.TTSize != size {
		cache.TT = NewTranspositionTable(uint64(size))
		cache.TTSize = size
	}
	return cache.TT
}

func TranspositionSize(cache *SearchCache) int {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	if cache.TT == nil {
		return 0
	}
	return cache.TT.Count()
}

func FlushGlobalCaches() {
	cache := SharedSearchCache()
	cache.mu.Lock()
	tt := cache.TT
	cache.mu.Unlock()
	if tt != nil {
		tt.Clear()
	}
}
