package main

import "testing"

func TestApplyHumanMoveRejectedWhenNotHumanTurn(t *testing.T) {
	controller := NewGameController(GameSettings{
		RedType:    PlayerAI,
		YellowType: PlayerHuman,
		RedStarts:  true,
	})
	controller.StartGame(controller.Settings())
	if ok, msg := controller.ApplyHumanMove(Move{Col: 3}); ok {
		t.Fatalf("expected rejection while the AI is to move, got %q", msg)
	}
}

func TestSettingsModeMapping(t *testing.T) {
	base := DefaultGameSettings()

	aiVsAi := settingsFromDTO(GameSettingsDTO{Mode: "ai_vs_ai"}, base)
	if aiVsAi.RedType != PlayerAI || aiVsAi.YellowType != PlayerAI {
		t.Fatalf("ai_vs_ai mapped to %+v", aiVsAi)
	}
	if got := controllerSettingsDTO(aiVsAi); got.Mode != "ai_vs_ai" {
		t.Fatalf("expected ai_vs_ai round trip, got %q", got.Mode)
	}

	humans := settingsFromDTO(GameSettingsDTO{Mode: "human_vs_human"}, base)
	if humans.RedType != PlayerHuman || humans.YellowType != PlayerHuman {
		t.Fatalf("human_vs_human mapped to %+v", humans)
	}

	yellowHuman := settingsFromDTO(GameSettingsDTO{Mode: "ai_vs_human", HumanPlayer: 2}, base)
	if yellowHuman.RedType != PlayerAI || yellowHuman.YellowType != PlayerHuman {
		t.Fatalf("ai_vs_human with human_player=2 mapped to %+v", yellowHuman)
	}
	dto := controllerSettingsDTO(yellowHuman)
	if dto.Mode != "ai_vs_human" || dto.HumanPlayer != 2 {
		t.Fatalf("expected ai_vs_human/2 round trip, got %+v", dto)
	}
}

func TestPositionFromMovesValidation(t *testing.T) {
	pos, err := positionFromMoves([]int{3, 3, 4, 2})
	if err != nil {
		t.Fatalf("legal sequence rejected: %v", err)
	}
	if pos.Moves() != 4 {
		t.Fatalf("expected 4 moves, got %d", pos.Moves())
	}

	if _, err := positionFromMoves([]int{7}); err == nil {
		t.Fatalf("expected out-of-range column to be rejected")
	}
	if _, err := positionFromMoves([]int{0, 0, 0, 0, 0, 0, 0}); err == nil {
		t.Fatalf("expected overfull column to be rejected")
	}
	// Red completes four in a row on the seventh move; the sequence must not
	// be allowed to continue past it.
	if _, err := positionFromMoves([]int{0, 6, 1, 6, 2, 6, 3, 5}); err == nil {
		t.Fatalf("expected sequence past a win to be rejected")
	}
}

func TestBoardToSliceRendersTopDown(t *testing.T) {
	g := NewGame(humanVsHumanSettings())
	g.Start()
	g.TryApplyMove(Move{Col: 0}, false, 0, 0)
	rows := boardToSlice(g.State())
	if len(rows) != BoardHeight || len(rows[0]) != BoardWidth {
		t.Fatalf("unexpected board shape")
	}
	if rows[BoardHeight-1][0] != 1 {
		t.Fatalf("expected red stone at the bottom-left, got %d", rows[BoardHeight-1][0])
	}
	if rows[0][0] != 0 {
		t.Fatalf("expected empty top-left, got %d", rows[0][0])
	}
}
