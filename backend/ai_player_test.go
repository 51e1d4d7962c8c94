package main

import (
	"testing"
	"time"
)

func withSolverConfig(t *testing.T, mutate func(*Config)) {
	t.Helper()
	old := GetConfig()
	cfg := old
	mutate(&cfg)
	configStore.Update(cfg)
	t.Cleanup(func() { configStore.Update(old) })
}

func TestAIPlayerChooseMoveTakesImmediateWin(t *testing.T) {
	withSolverConfig(t, func(cfg *Config) { cfg.SolverEnableTT = false })

	state := DefaultGameState(humanVsHumanSettings())
	state.Status = StatusRunning
	state.Position = playSequence(t, 0, 0, 1, 1, 2, 2)

	ai := NewAIPlayer()
	move := ai.ChooseMove(state)
	if move.Col != 3 {
		t.Fatalf("expected the winning column 3, got %d", move.Col)
	}
}

func TestAIPlayerStartThinkingDeliversMove(t *testing.T) {
	withSolverConfig(t, func(cfg *Config) { cfg.SolverEnableTT = false })

	state := DefaultGameState(humanVsHumanSettings())
	state.Status = StatusRunning
	state.Position = playSequence(t, 0, 0, 1, 1, 2, 2)

	ai := NewAIPlayer()
	ai.StartThinking(state, nil)
	deadline := time.Now().Add(5 * time.Second)
	for !ai.HasMoveReady() {
		if time.Now().After(deadline) {
			t.Fatalf("search did not finish in time")
		}
		time.Sleep(time.Millisecond)
	}
	move, score, _ := ai.TakeMove()
	if move.Col != 3 {
		t.Fatalf("expected the winning column 3, got %d", move.Col)
	}
	want := (TotalCells + 1 - state.Position.Moves()) / 2
	if score != want {
		t.Fatalf("expected win score %d, got %d", want, score)
	}
	if ai.HasMoveReady() {
		t.Fatalf("TakeMove must consume the pending move")
	}
}
