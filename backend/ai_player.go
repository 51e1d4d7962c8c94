package main

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// AIPlayer wraps the exact solver. Searches run on a background goroutine so
// the server loop stays responsive; the search itself has no cancellation and
// always runs to completion, a stop signal only discards the finished result.
type AIPlayer struct {
	moveMutex  sync.Mutex
	workerDone chan struct{}
	thinking   atomic.Bool
	moveReady  atomic.Bool
	stopSignal atomic.Bool
	readyMove  Move
	readyScore int
	readyNodes int64
}

func NewAIPlayer() *AIPlayer {
	return &AIPlayer{}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

func (a *AIPlayer) ChooseMove(state GameState) Move {
	config := GetConfig()
	solver := NewSolver(ensureTT(SharedSearchCache(), config))
	solver.ResetStats()
	col, _ := solver.Solve(state.Position, nil)
	if config.SolverLogSearchStats {
		logSearchStats("choose", solver)
	}
	return Move{Col: col}
}

// StartThinking launches a search for the best reply to state. analysisSink,
// when non-nil, receives one event per resolved root column.
func (a *AIPlayer) StartThinking(state GameState, analysisSink func(analysisPayload)) {
	if a.thinking.Load() {
		return
	}
	if a.workerDone != nil {
		<-a.workerDone
	}
	a.thinking.Store(true)
	a.moveReady.Store(false)
	a.stopSignal.Store(false)

	stateCopy := state.Clone()
	done := make(chan struct{})
	a.workerDone = done
	config := GetConfig()
	go func() {
		defer close(done)
		solver := NewSolver(ensureTT(SharedSearchCache(), config))
		solver.ResetStats()
		var progress RootProgress
		if config.AnalysisEnabled && analysisSink != nil {
			moveIndex := stateCopy.Position.Moves()
			progress = func(col, score int, nodes int64) {
				analysisSink(analysisPayload{
					Column:    col,
					Score:     score,
					Nodes:     nodes,
					MoveIndex: moveIndex,
					Active:    true,
				})
			}
		}
		col, score := solver.Solve(stateCopy.Position, progress)
		if config.SolverLogSearchStats {
			logSearchStats("think", solver)
		}
		if a.stopSignal.Load() {
			a.moveReady.Store(false)
			a.thinking.Store(false)
			return
		}
		a.moveMutex.Lock()
		a.readyMove = Move{Col: col}
		a.readyScore = score
		a.readyNodes = solver.Stats().Nodes
		a.moveMutex.Unlock()
		a.moveReady.Store(true)
		a.thinking.Store(false)
	}()
}

func (a *AIPlayer) IsThinking() bool {
	return a.thinking.Load()
}

func (a *AIPlayer) HasMoveReady() bool {
	return a.moveReady.Load()
}

func (a *AIPlayer) TakeMove() (Move, int, int64) {
	a.moveMutex.Lock()
	defer a.moveMutex.Unlock()
	a.moveReady.Store(false)
	return a.readyMove, a.readyScore, a.readyNodes
}

func (a *AIPlayer) StopThinking() {
	a.stopSignal.Store(true)
}

func (a *AIPlayer) CacheSize() int {
	return TranspositionSize(SharedSearchCache())
}

func logSearchStats(tag string, solver *Solver) {
	stats := solver.Stats()
	elapsed := time.Duration(0)
	if !stats.Start.IsZero() {
		elapsed = time.Since(stats.Start)
	}
	nps := 0.0
	if elapsed > 0 {
		nps = float64(stats.Nodes) / elapsed.Seconds()
	}
	hitRate := 0.0
	if stats.TTProbes > 0 {
		hitRate = float64(stats.TTHits) * 100.0 / float64(stats.TTProbes)
	}
	log.Info().
		Str("tag", tag).
		Int64("elapsed_ms", elapsed.Milliseconds()).
		Int64("nodes", stats.Nodes).
		Float64("nps", nps).
		Int64("tt_probes", stats.TTProbes).
		Int64("tt_hits", stats.TTHits).
		Float64("tt_hit_rate", hitRate).
		Int64("tt_stores", stats.TTStores).
		Int64("cutoffs", stats.Cutoffs).
		Msg("search stats")
}
