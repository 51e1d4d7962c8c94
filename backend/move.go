package main

// Move is a resolved drop: the column chosen and the row the disc landed on
// (row 0 is the bottom). API clients submit only the column; Row is filled in
// when the move is applied.
type Move struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (m Move) ValidColumn() bool {
	return m.Col >= 0 && m.Col < BoardWidth
}

func (m Move) Equals(other Move) bool {
	return m.Col == other.Col && m.Row == other.Row
}
