package main

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerAI
)

// GameSettings configures who plays which color. The board geometry is fixed
// at 7x6; the engine is specialized to it.
type GameSettings struct {
	RedType    PlayerType `json:"-"`
	YellowType PlayerType `json:"-"`
	RedStarts  bool       `json:"red_starts"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		RedType:    PlayerHuman,
		YellowType: PlayerAI,
		RedStarts:  true,
	}
}
