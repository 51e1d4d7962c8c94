package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveTTPersistencePathKeepsAbsolutePath(t *testing.T) {
	absolute := "/tmp/connect4_tt.gob"
	if got := resolveTTPersistencePath(absolute); got != absolute {
		t.Fatalf("expected absolute path unchanged, got %q", got)
	}
}

func TestTTPersistenceRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SolverEnableTtPersistence = true
	cfg.SolverTtPersistencePath = filepath.Join(t.TempDir(), "tt.gob")
	cfg.SolverTtSize = 64

	cache := &SearchCache{}
	tt := ensureTT(cache, cfg)
	if tt == nil {
		t.Fatalf("expected a transposition table")
	}
	tt.Store(0x12345, 7, 30)
	tt.Store(0xabcde, -3, 11)

	persistTTPersistence(cfg, cache)
	if _, err := os.Stat(cfg.SolverTtPersistencePath); err != nil {
		t.Fatalf("expected snapshot file: %v", err)
	}

	loaded := &SearchCache{}
	loadTTPersistence(cfg, loaded)
	loadedTT := ensureTT(loaded, cfg)
	entry, ok := loadedTT.Probe(0x12345)
	if !ok {
		t.Fatalf("expected entry restored from snapshot")
	}
	if entry.Score != 7 || entry.Depth != 30 {
		t.Fatalf("unexpected restored entry: %+v", entry)
	}
	if _, ok := loadedTT.Probe(0xabcde); !ok {
		t.Fatalf("expected second entry restored from snapshot")
	}
}

func TestTTPersistenceSkipsSnapshotOfDifferentSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SolverEnableTtPersistence = true
	cfg.SolverTtPersistencePath = filepath.Join(t.TempDir(), "tt.gob")
	cfg.SolverTtSize = 64

	cache := &SearchCache{}
	ensureTT(cache, cfg).Store(0x777, 1, 5)
	persistTTPersistence(cfg, cache)

	cfg.SolverTtSize = 128
	loaded := &SearchCache{}
	loadTTPersistence(cfg, loaded)
	if loaded.TT != nil {
		t.Fatalf("snapshot of a different size must be ignored")
	}
}

func TestTTPersistenceDisabledIsNoOp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SolverEnableTtPersistence = false
	cfg.SolverTtPersistencePath = filepath.Join(t.TempDir(), "tt.gob")

	cache := &SearchCache{}
	ensureTT(cache, cfg).Store(0x1, 1, 1)
	persistTTPersistence(cfg, cache)
	if _, err := os.Stat(cfg.SolverTtPersistencePath); !os.IsNotExist(err) {
		t.Fatalf("expected no snapshot file when persistence is disabled")
	}
}
