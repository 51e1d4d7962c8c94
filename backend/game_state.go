package main

type PlayerColor int

type GameStatus int

const (
	PlayerRed PlayerColor = iota
	PlayerYellow
)

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusRedWon
	StatusYellowWon
	StatusDraw
)

type Cell int

const (
	CellEmpty Cell = iota
	CellRed
	CellYellow
)

// GameState carries everything the server layer needs about one game. The
// Position always keeps the side to move in its current mask, so ToMove is
// flipped in lockstep with every Position.Play.
type GameState struct {
	Position    Position
	ToMove      PlayerColor
	Status      GameStatus
	HasLastMove bool
	LastMove    Move
	WinningLine []Move
	LastMessage string
}

func DefaultGameState(settings GameSettings) GameState {
	state := GameState{}
	state.Reset(settings)
	return state
}

func (s *GameState) Reset(settings GameSettings) {
	s.Position = Position{}
	if settings.RedStarts {
		s.ToMove = PlayerRed
	} else {
		s.ToMove = PlayerYellow
	}
	s.Status = StatusNotStarted
	s.HasLastMove = false
	s.LastMove = Move{Col: -1, Row: -1}
	s.WinningLine = nil
	s.LastMessage = ""
}

func (s GameState) Clone() GameState {
	clone := s
	clone.WinningLine = append([]Move(nil), s.WinningLine...)
	return clone
}

// CellAt decodes the bitboard into disc colors; row 0 is the bottom row.
func (s GameState) CellAt(col, row int) Cell {
	if !s.Position.OccupiedAt(col, row) {
		return CellEmpty
	}
	if s.Position.MoverAt(col, row) {
		return CellFromPlayer(s.ToMove)
	}
	return CellFromPlayer(otherPlayer(s.ToMove))
}

func otherPlayer(player PlayerColor) PlayerColor {
	if player == PlayerRed {
		return PlayerYellow
	}
	return PlayerRed
}

func CellFromPlayer(player PlayerColor) Cell {
	if player == PlayerRed {
		return CellRed
	}
	return CellYellow
}

func (c Cell) String() string {
	switch c {
	case CellRed:
		return "Red"
	case CellYellow:
		return "Yellow"
	default:
		return "Empty"
	}
}

// findWinningLine scans the decoded grid for a four-in-a-row of the given
// color and returns its cells. Plain cell iteration, deliberately independent
// of the bit-parallel detection used during search.
func findWinningLine(state GameState, color Cell) ([]Move, bool) {
	directions := [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}
	for col := 0; col < BoardWidth; col++ {
		for row := 0; row < BoardHeight; row++ {
			if state.CellAt(col, row) != color {
				continue
			}
			for _, dir := range directions {
				line := []Move{{Col: col, Row: row}}
				c, r := col+dir[0], row+dir[1]
				for len(line) < 4 && c >= 0 && c < BoardWidth && r >= 0 && r < BoardHeight && state.CellAt(c, r) == color {
					line = append(line, Move{Col: c, Row: r})
					c += dir[0]
					r += dir[1]
				}
				if len(line) == 4 {
					return line, true
				}
			}
		}
	}
	return nil, false
}
