package main

import "time"

type Game struct {
	settings     GameSettings
	state        GameState
	history      MoveHistory
	redPlayer    IPlayer
	yellowPlayer IPlayer
	turnStart    time.Time
}

func NewGame(settings GameSettings) Game {
	g := Game{}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.stopAIPlayers()
	g.settings = settings
	g.state.Reset(settings)
	g.history.Clear()
	g.createPlayers()
	g.turnStart = time.Now()
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
		g.turnStart = time.Now()
	}
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

// TryApplyMove drops the mover's disc into move.Col. The win check runs on
// the position before the drop (that is what IsWinningMove is defined on);
// ToMove always flips together with Position.Play so color decoding stays
// consistent even on a terminal move.
func (g *Game) TryApplyMove(move Move, isAi bool, score int, nodes int64) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "game not running"
	}
	if !move.ValidColumn() {
		g.state.LastMessage = "Illegal move: column out of range"
		return false, g.state.LastMessage
	}
	if !g.state.Position.CanPlay(move.Col) {
		g.state.LastMessage = "Illegal move: column is full"
		return false, g.state.LastMessage
	}
	g.state.LastMessage = ""
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	mover := g.state.ToMove
	wins := g.state.Position.IsWinningMove(move.Col)
	move.Row = g.state.Position.ColumnHeight(move.Col)

	g.state.Position.Play(move.Col)
	g.state.ToMove = otherPlayer(g.state.ToMove)
	g.state.LastMove = move
	g.state.HasLastMove = true
	g.state.WinningLine = nil

	g.history.Push(HistoryEntry{
		Move:      move,
		Player:    mover,
		ElapsedMs: elapsedMs,
		IsAi:      isAi,
		Score:     score,
		Nodes:     nodes,
	})

	switch {
	case wins:
		if line, ok := findWinningLine(g.state, CellFromPlayer(mover)); ok {
			g.state.WinningLine = line
		}
		if mover == PlayerRed {
			g.state.Status = StatusRedWon
		} else {
			g.state.Status = StatusYellowWon
		}
	case g.state.Position.Full():
		g.state.Status = StatusDraw
	default:
		g.turnStart = time.Now()
	}
	return true, ""
}

// Tick advances the game by at most one move: a buffered human move is
// applied, a finished AI search is consumed, an idle AI is started. Returns
// true when a move was applied.
func (g *Game) Tick(analysisSink func(analysisPayload)) bool {
	if g.state.Status != StatusRunning {
		return false
	}
	player := g.currentPlayer()
	if player == nil {
		return false
	}
	if player.IsHuman() {
		human, ok := player.(*HumanPlayer)
		if ok && human.HasPendingMove() {
			move := human.TakePendingMove()
			applied, _ := g.TryApplyMove(move, false, 0, 0)
			return applied
		}
		return false
	}
	ai, ok := player.(*AIPlayer)
	if !ok {
		move := player.ChooseMove(g.state.Clone())
		applied, _ := g.TryApplyMove(move, true, 0, 0)
		return applied
	}
	if ai.HasMoveReady() {
		move, score, nodes := ai.TakeMove()
		applied, _ := g.TryApplyMove(move, true, score, nodes)
		return applied
	}
	if !ai.IsThinking() {
		ai.StartThinking(g.state.Clone(), analysisSink)
	}
	return false
}

func (g *Game) SubmitHumanMove(move Move) bool {
	player := g.currentPlayer()
	if player == nil || !player.IsHuman() {
		return false
	}
	human, ok := player.(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingMove(move)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) AiThinking() bool {
	ai, ok := g.currentPlayer().(*AIPlayer)
	return ok && ai.IsThinking()
}

func (g *Game) currentPlayer() IPlayer {
	return g.playerForColor(g.state.ToMove)
}

func (g *Game) playerForColor(color PlayerColor) IPlayer {
	if color == PlayerRed {
		return g.redPlayer
	}
	return g.yellowPlayer
}

func (g *Game) createPlayers() {
	if g.settings.RedType == PlayerHuman {
		g.redPlayer = NewHumanPlayer()
	} else {
		g.redPlayer = NewAIPlayer()
	}
	if g.settings.YellowType == PlayerHuman {
		g.yellowPlayer = NewHumanPlayer()
	} else {
		g.yellowPlayer = NewAIPlayer()
	}
}

func (g *Game) stopAIPlayers() {
	if ai, ok := g.redPlayer.(*AIPlayer); ok {
		ai.StopThinking()
	}
	if ai, ok := g.yellowPlayer.(*AIPlayer); ok {
		ai.StopThinking()
	}
}
