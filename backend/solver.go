package main

import "time"

// searchOrder visits the center column first, then alternates outward.
// Center columns sit on more winning lines, so exploring them first tightens
// the alpha-beta window sooner. The root selector and the recursive search
// share the same order, which also makes tie-breaking deterministic and
// center-biased.
var searchOrder [BoardWidth]int

func init() {
	center := BoardWidth / 2
	for d := 0; d < BoardWidth; d++ {
		offset := (d + 1) / 2
		if d%2 != 0 {
			offset = -offset
		}
		searchOrder[d] = center - offset
	}
}

type SearchStats struct {
	Nodes    int64
	TTProbes int64
	TTHits   int64
	TTStores int64
	Cutoffs  int64
	Start    time.Time
}

// RootProgress is invoked after each root column is resolved, with the exact
// score of playing that column and the node count so far.
type RootProgress func(col, score int, nodes int64)

// Solver runs the exhaustive negamax search. The transposition table is
// injected; a nil table disables caching without changing any result. A
// Solver is not safe for concurrent use, but the table it holds may be
// shared across sequential searches to reuse earlier work.
type Solver struct {
	tt    *TranspositionTable
	stats SearchStats
}

func NewSolver(tt *TranspositionTable) *Solver {
	return &Solver{tt: tt}
}

func (s *Solver) ResetStats() {
	s.stats = SearchStats{Start: time.Now()}
}

func (s *Solver) Stats() SearchStats {
	return s.stats
}

// Negamax returns the exact score of pos from the perspective of the side to
// move: positive means a forced win, scaled so faster wins score higher,
// negative a forced loss, zero a draw. alpha/beta bound the window of scores
// the caller still cares about.
func (s *Solver) Negamax(pos Position, alpha, beta int) int {
	s.stats.Nodes++

	if pos.Full() {
		return 0
	}

	key := pos.Key()
	remaining := TotalCells - pos.moves
	if s.tt != nil {
		s.stats.TTProbes++
		if entry, ok := s.tt.Probe(key); ok && int(entry.Depth) >= remaining {
			s.stats.TTHits++
			return int(entry.Score)
		}
	}

	// A win on the very next stone dominates anything deeper search could
	// find, so check it before generating children.
	for col := 0; col < BoardWidth; col++ {
		if pos.CanPlay(col) && pos.IsWinningMove(col) {
			return (TotalCells + 1 - pos.moves) / 2
		}
	}

	// No immediate win exists, so the mover cannot do better than winning
	// with their stone after next. Shrinking beta to that bound prunes
	// branches the rest of the tree has already beaten.
	maxPossible := (TotalCells - 1 - pos.moves) / 2
	if beta > maxPossible {
		beta = maxPossible
		if alpha >= beta {
			return beta
		}
	}

	best := MinScore
	for _, col := range searchOrder {
		if !pos.CanPlay(col) {
			continue
		}
		next := pos
		next.Play(col)
		score := -s.Negamax(next, -beta, -alpha)
		if score >= beta {
			s.store(key, score, remaining)
			s.stats.Cutoffs++
			return score
		}
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
	}

	s.store(key, best, remaining)
	return best
}

func (s *Solver) store(key uint64, score, depth int) {
	if s.tt == nil {
		return
	}
	s.stats.TTStores++
	s.tt.Store(key, score, depth)
}

// BestMove returns the column the mover should play, or -1 if the board is
// full. The empty board is answered with the center column outright: by
// symmetry no other opening does better, and searching it from scratch is
// by far the most expensive query the engine can face.
func (s *Solver) BestMove(pos Position) int {
	col, _ := s.Solve(pos, nil)
	return col
}

// Solve resolves every legal root column in center-out order and returns the
// best one with its exact score. An immediately winning column is returned
// without recursing. The beta bound for each root search is the negated best
// score found so far, so later siblings only need to prove whether they beat
// the current choice. Ties keep the first (most central) column.
func (s *Solver) Solve(pos Position, progress RootProgress) (int, int) {
	if pos.moves == 0 {
		return BoardWidth / 2, 0
	}

	bestCol := -1
	bestVal := MinScore
	firstLegal := -1
	for _, col := range searchOrder {
		if !pos.CanPlay(col) {
			continue
		}
		if firstLegal == -1 {
			firstLegal = col
		}
		if pos.IsWinningMove(col) {
			score := (TotalCells + 1 - pos.moves) / 2
			if progress != nil {
				progress(col, score, s.stats.Nodes)
			}
			return col, score
		}
		next := pos
		next.Play(col)
		val := -s.Negamax(next, -MaxScore, -bestVal)
		if progress != nil {
			progress(col, val, s.stats.Nodes)
		}
		if val > bestVal {
			bestVal = val
			bestCol = col
		}
	}
	if bestCol == -1 {
		// Every column scored exactly MinScore (or none was legal).
		return firstLegal, bestVal
	}
	return bestCol, bestVal
}
