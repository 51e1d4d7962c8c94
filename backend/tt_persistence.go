package main

import (
	"encoding/gob"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
)

const xdgCacheSubdir = "connect4-ai"

type ttPersistenceSnapshot struct {
	Size    int
	Entries []TTEntry
}

func countValidTTEntries(entries []TTEntry) int {
	count := 0
	for _, entry := range entries {
		if entry.Valid {
			count++
		}
	}
	return count
}

func loadTTPersistence(cfg Config, cache *SearchCache) {
	if cache == nil || !cfg.SolverEnableTtPersistence || cfg.SolverTtPersistencePath == "" {
		return
	}
	path := resolveTTPersistencePath(cfg.SolverTtPersistencePath)
	file, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("failed to open TT snapshot")
		}
		return
	}
	defer file.Close()

	var snapshot ttPersistenceSnapshot
	if err := gob.NewDecoder(file).Decode(&snapshot); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to decode TT snapshot")
		return
	}
	size := cfg.SolverTtSize
	if size <= 0 {
		size = defaultTTSize
	}
	if snapshot.Size != size {
		log.Warn().
			Int("snapshot_size", snapshot.Size).
			Int("config_size", size).
			Msg("TT snapshot does not match configured size; skipping")
		return
	}
	tt := NewTranspositionTable(uint64(snapshot.Size))
	tt.loadEntries(snapshot.Entries)
	cache.mu.Lock()
	cache.TT = tt
	cache.TTSize = snapshot.Size
	cache.mu.Unlock()
	log.Info().
		Str("path", path).
		Int("valid", countValidTTEntries(snapshot.Entries)).
		Int("total", len(snapshot.Entries)).
		Msg("restored TT snapshot")
}

func persistTTPersistence(cfg Config, cache *SearchCache) {
	if cache == nil || !cfg.SolverEnableTtPersistence || cfg.SolverTtPersistencePath == "" {
		return
	}
	cache.mu.Lock()
	tt := cache.TT
	size := cache.TTSize
	cache.mu.Unlock()
	if tt == nil || size == 0 {
		return
	}
	entries := tt.snapshotEntries()
	path := resolveTTPersistencePath(cfg.SolverTtPersistencePath)
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("unable to create TT snapshot directory")
			return
		}
	}
	file, err := os.Create(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to create TT snapshot")
		return
	}
	defer file.Close()
	snapshot := ttPersistenceSnapshot{Size: size, Entries: entries}
	if err := gob.NewEncoder(file).Encode(&snapshot); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to encode TT snapshot")
		return
	}
	log.Info().
		Str("path", path).
		Int("valid", countValidTTEntries(entries)).
		Int("total", len(entries)).
		Msg("stored TT snapshot")
}

// resolveTTPersistencePath places relative snapshot paths into the XDG cache
// directory; absolute paths are used as given. Falls back to the relative
// path when the cache directory cannot be created.
func resolveTTPersistencePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	resolved, err := xdg.CacheFile(filepath.Join(xdgCacheSubdir, path))
	if err != nil {
		return path
	}
	return resolved
}
