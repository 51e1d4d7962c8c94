package main

import "fmt"

const (
	BoardWidth  = 7
	BoardHeight = 6
	// Each column occupies BoardHeight+1 bits; the extra top bit is a
	// sentinel that stays 0 for every legal position. It bounds the
	// vertical win tests and keeps columns from bleeding into each
	// other under shifts. The column-full check tests the top playable
	// cell, one below the sentinel.
	colBits    = BoardHeight + 1
	TotalCells = BoardWidth * BoardHeight

	// Scores count how many of the mover's stones remain unplayed when the
	// game is decided, so a faster forced win scores higher.
	MinScore = -TotalCells/2 + 3
	MaxScore = (TotalCells+1)/2 - 3
)

var (
	topMasks    [BoardWidth]uint64
	bottomMasks [BoardWidth]uint64
	columnMasks [BoardWidth]uint64
)

func init() {
	for col := 0; col < BoardWidth; col++ {
		topMasks[col] = 1 << (col*colBits + BoardHeight - 1)
		bottomMasks[col] = 1 << (col * colBits)
		columnMasks[col] = ((1 << colBits) - 1) << (col * colBits)
	}
}

// Position is a bitboard encoding of an in-progress game. current holds the
// stones of the side to move, mask every stone on the board. Positions are
// plain values; search branches copy them and never share mutable state.
type Position struct {
	current uint64
	mask    uint64
	moves   int
}

// CanPlay reports whether col has at least one free cell.
func (p Position) CanPlay(col int) bool {
	return p.mask&topMasks[col] == 0
}

// Play drops the mover's stone into col and hands the turn over: current is
// flipped to the opponent's stones before the drop lands in mask. Callers
// must check CanPlay first; playing a full column corrupts the sentinel row,
// so it panics instead.
func (p *Position) Play(col int) {
	if !p.CanPlay(col) {
		panic(fmt.Sprintf("play: column %d is full", col))
	}
	p.current ^= p.mask
	p.mask |= p.mask + bottomMasks[col]
	p.moves++
}

// IsWinningMove reports whether dropping the mover's stone into col completes
// four in a row. The candidate stone is inserted into a scratch copy of the
// mover's stones, then each axis is tested with a pair of shifted ANDs: a
// surviving bit means a run of at least four crosses it.
func (p Position) IsWinningMove(col int) bool {
	stones := p.current
	stones |= (p.mask + bottomMasks[col]) & columnMasks[col]

	// vertical
	m := stones & (stones >> 1)
	if m&(m>>2) != 0 {
		return true
	}
	// horizontal
	m = stones & (stones >> colBits)
	if m&(m>>(2*colBits)) != 0 {
		return true
	}
	// diagonal /
	m = stones & (stones >> (colBits - 1))
	if m&(m>>(2*(colBits-1))) != 0 {
		return true
	}
	// diagonal \
	m = stones & (stones >> (colBits + 1))
	return m&(m>>(2*(colBits+1))) != 0
}

// Key packs the position into a single cache key. current+mask is a compact
// encoding: adding mask turns each column's stones into its height in unary,
// which together with the mover's stones identifies the column contents.
func (p Position) Key() uint64 {
	return p.current + p.mask
}

// Moves returns the number of stones placed so far.
func (p Position) Moves() int {
	return p.moves
}

// Full reports whether every cell is occupied.
func (p Position) Full() bool {
	return p.moves == TotalCells
}

// ColumnHeight returns the number of stones already stacked in col.
func (p Position) ColumnHeight(col int) int {
	height := 0
	for row := 0; row < BoardHeight; row++ {
		if p.mask&cellBit(col, row) == 0 {
			break
		}
		height++
	}
	return height
}

// OccupiedAt reports whether the cell at (col, row) holds a stone; row 0 is
// the bottom of the column.
func (p Position) OccupiedAt(col, row int) bool {
	return p.mask&cellBit(col, row) != 0
}

// MoverAt reports whether the cell at (col, row) holds a stone belonging to
// the side to move. Only meaningful when OccupiedAt is true.
func (p Position) MoverAt(col, row int) bool {
	return p.current&cellBit(col, row) != 0
}

func cellBit(col, row int) uint64 {
	return 1 << (col*colBits + row)
}
