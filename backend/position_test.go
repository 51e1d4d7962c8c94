package main

import (
	"testing"

	"lukechampine.com/frand"
)

func TestCanPlayUntilColumnFull(t *testing.T) {
	var pos Position
	for i := 0; i < BoardHeight; i++ {
		if !pos.CanPlay(2) {
			t.Fatalf("expected column 2 playable at height %d", i)
		}
		pos.Play(2)
	}
	if pos.CanPlay(2) {
		t.Fatalf("expected column 2 full after %d stones", BoardHeight)
	}
	if got := pos.ColumnHeight(2); got != BoardHeight {
		t.Fatalf("expected height %d, got %d", BoardHeight, got)
	}
	if pos.mask&(1<<(2*colBits+BoardHeight)) != 0 {
		t.Fatalf("sentinel bit set on a full column")
	}
	if pos.Moves() != BoardHeight {
		t.Fatalf("expected %d moves, got %d", BoardHeight, pos.Moves())
	}
}

func TestPlayPanicsOnFullColumn(t *testing.T) {
	var pos Position
	for i := 0; i < BoardHeight; i++ {
		pos.Play(4)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when playing a full column")
		}
	}()
	pos.Play(4)
}

func TestPlayStacksFromTheBottom(t *testing.T) {
	var pos Position
	pos.Play(5)
	pos.Play(5)
	pos.Play(5)
	for row := 0; row < 3; row++ {
		if !pos.OccupiedAt(5, row) {
			t.Fatalf("expected stone at (5,%d)", row)
		}
	}
	if pos.OccupiedAt(5, 3) {
		t.Fatalf("unexpected stone at (5,3)")
	}
	// Stones alternate ownership; the mover after three plays owns rows 0 and 2.
	if !pos.MoverAt(5, 1) {
		t.Fatalf("expected row 1 to belong to the side to move")
	}
	if pos.MoverAt(5, 0) || pos.MoverAt(5, 2) {
		t.Fatalf("expected rows 0 and 2 to belong to the opponent")
	}
}

func TestSentinelRowIsolatesColumns(t *testing.T) {
	// Mover stones at the top of column 0 and a candidate drop at the bottom
	// of column 1 are adjacent bit indices only if the sentinel row is
	// missing. The vertical check must not chain across the column boundary.
	pos := Position{
		current: cellBit(0, 3) | cellBit(0, 4) | cellBit(0, 5),
		mask: cellBit(0, 0) | cellBit(0, 1) | cellBit(0, 2) |
			cellBit(0, 3) | cellBit(0, 4) | cellBit(0, 5),
		moves: 6,
	}
	if pos.IsWinningMove(1) {
		t.Fatalf("vertical check leaked across the column sentinel")
	}
}

func TestKeyChangesWithEveryMove(t *testing.T) {
	var pos Position
	seen := map[uint64]bool{pos.Key(): true}
	for _, col := range []int{3, 3, 4, 2, 5} {
		pos.Play(col)
		key := pos.Key()
		if seen[key] {
			t.Fatalf("key repeated after playing column %d", col)
		}
		seen[key] = true
	}
}

func TestFourthStackedStoneWins(t *testing.T) {
	var pos Position
	for _, col := range []int{3, 0, 3, 0, 3, 0} {
		pos.Play(col)
	}
	if !pos.IsWinningMove(3) {
		t.Fatalf("expected the fourth stacked stone in column 3 to win")
	}
	if pos.IsWinningMove(0) {
		t.Fatalf("three stones in column 0 must not read as a win")
	}
}

func TestIsWinningMoveMatchesCellScan(t *testing.T) {
	for game := 0; game < 50; game++ {
		var pos Position
		var grid [BoardWidth][BoardHeight]int
		for pos.Moves() < TotalCells {
			mover := pos.Moves()%2 + 1
			// Compare the bitboard answer against a plain cell scan for
			// every playable column before committing a random move.
			for col := 0; col < BoardWidth; col++ {
				if !pos.CanPlay(col) {
					continue
				}
				want := gridWinsAt(&grid, col, pos.ColumnHeight(col), mover)
				if got := pos.IsWinningMove(col); got != want {
					t.Fatalf("game %d move %d col %d: bitboard says %v, scan says %v",
						game, pos.Moves(), col, got, want)
				}
			}
			col := frand.Intn(BoardWidth)
			if !pos.CanPlay(col) {
				continue
			}
			if pos.IsWinningMove(col) {
				break
			}
			grid[col][pos.ColumnHeight(col)] = mover
			pos.Play(col)
		}
	}
}

// gridWinsAt reports whether placing player's stone at (col, row) completes a
// run of four on the cell grid.
func gridWinsAt(grid *[BoardWidth][BoardHeight]int, col, row, player int) bool {
	directions := [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}
	for _, dir := range directions {
		run := 1
		for _, sign := range []int{1, -1} {
			c, r := col+sign*dir[0], row+sign*dir[1]
			for c >= 0 && c < BoardWidth && r >= 0 && r < BoardHeight && grid[c][r] == player {
				run++
				c += sign * dir[0]
				r += sign * dir[1]
			}
		}
		if run >= 4 {
			return true
		}
	}
	return false
}
