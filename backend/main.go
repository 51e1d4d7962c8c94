package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"
	"unsafe"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type StatusResponse struct {
	Settings        GameSettingsDTO   `json:"settings"`
	Config          Config            `json:"config"`
	NextPlayer      int               `json:"next_player"`
	Winner          int               `json:"winner"`
	Status          string            `json:"status"`
	Board           [][]int           `json:"board"`
	MoveCount       int               `json:"move_count"`
	AiThinking      bool              `json:"ai_thinking"`
	History         []historyEntryDTO `json:"history"`
	WinningLine     []Move            `json:"winning_line"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type GameSettingsDTO struct {
	Mode        string `json:"mode"`
	HumanPlayer int    `json:"human_player"`
}

type apiMove struct {
	Column int `json:"column"`
}

type historyEntryDTO struct {
	Col       int     `json:"col"`
	Row       int     `json:"row"`
	Player    int     `json:"player"`
	ElapsedMs float64 `json:"elapsed_ms"`
	IsAi      bool    `json:"is_ai"`
	Score     int     `json:"score"`
	Nodes     int64   `json:"nodes"`
}

type historyPayload struct {
	History []historyEntryDTO `json:"history"`
}

type resetPayload struct {
	History         []historyEntryDTO `json:"history"`
	NextPlayer      int               `json:"next_player"`
	Winner          int               `json:"winner"`
	Status          string            `json:"status"`
	Board           [][]int           `json:"board"`
	WinningLine     []Move            `json:"winning_line"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type settingsPayload struct {
	Settings GameSettingsDTO `json:"settings"`
	Config   Config          `json:"config"`
}

type solveRequest struct {
	Moves []int `json:"moves"`
}

type solveResponse struct {
	Column    int   `json:"column"`
	Score     int   `json:"score"`
	Nodes     int64 `json:"nodes"`
	ElapsedMs int64 `json:"elapsed_ms"`
	Book      bool  `json:"book"`
}

type ttCacheStatusResponse struct {
	Count         int     `json:"count"`
	Capacity      int     `json:"capacity"`
	Usage         float64 `json:"usage"`
	Full          bool    `json:"full"`
	EntryBytes    uint64  `json:"entry_bytes"`
	UsedBytes     uint64  `json:"used_bytes"`
	CapacityBytes uint64  `json:"capacity_bytes"`
}

type ttCacheEntryDTO struct {
	Key   string `json:"key"`
	Score int16  `json:"score"`
	Depth int8   `json:"depth"`
}

type ttCacheEntriesResponse struct {
	Items  []ttCacheEntryDTO `json:"items"`
	Offset int               `json:"offset"`
	Limit  int               `json:"limit"`
	Total  int               `json:"total"`
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var persistOnce sync.Once
	persistOnShutdown := func(reason string) {
		persistOnce.Do(func() {
			log.Info().Str("reason", reason).Msg("persisting caches")
			persistTTPersistence(GetConfig(), SharedSearchCache())
		})
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			log.Error().Interface("panic", recovered).Msg("panic recovered in main")
			persistOnShutdown("panic")
		}
	}()

	controller := NewGameController(DefaultGameSettings())
	loadTTPersistence(GetConfig(), SharedSearchCache())
	defer persistOnShutdown("exit")
	hub := NewHub()
	analysisHub := NewAnalysisHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	controller.SetAnalysisPublisher(
		func() bool { return analysisHub.HasClients() && GetConfig().AnalysisEnabled },
		func(payload analysisPayload) {
			analysisHub.Publish(payload)
		},
	)

	go hub.Run(ctx.Done())
	go analysisHub.Run(ctx.Done())
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if controller.Tick() {
					if entry, ok := controller.LatestHistoryEntry(); ok {
						hub.broadcastHistory <- historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}}
					}
					hub.broadcastStatus <- controllerStatus(controller)
				}
			}
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/start", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings GameSettingsDTO `json:"settings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		settings := settingsFromDTO(payload.Settings, DefaultGameSettings())
		controller.StartGame(settings)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/stop", func(w http.ResponseWriter, r *http.Request) {
		settings := controller.Settings()
		controller.Reset(settings)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings *GameSettingsDTO `json:"settings"`
			Config   *Config          `json:"config"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if payload.Config != nil {
			configStore.Update(*payload.Config)
		}
		if payload.Settings != nil {
			settings := settingsFromDTO(*payload.Settings, controller.Settings())
			controller.UpdateSettings(settings, false)
		}
		hub.broadcastSettings <- settingsPayload{
			Settings: controllerSettingsDTO(controller.Settings()),
			Config:   GetConfig(),
		}
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload apiMove
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		applied, errMsg := controller.ApplyHumanMove(Move{Col: payload.Column})
		if !applied {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		if entry, ok := controller.LatestHistoryEntry(); ok {
			hub.broadcastHistory <- historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}}
		}
		hub.broadcastStatus <- controllerStatus(controller)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/solve", func(w http.ResponseWriter, r *http.Request) {
		var payload solveRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		pos, err := positionFromMoves(payload.Moves)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		config := GetConfig()
		solver := NewSolver(ensureTT(SharedSearchCache(), config))
		solver.ResetStats()
		start := time.Now()
		col, score := solver.Solve(pos, nil)
		if config.SolverLogSearchStats {
			logSearchStats("solve", solver)
		}
		writeJSON(w, http.StatusOK, solveResponse{
			Column:    col,
			Score:     score,
			Nodes:     solver.Stats().Nodes,
			ElapsedMs: time.Since(start).Milliseconds(),
			Book:      pos.Moves() == 0,
		})
	})

	r.Get("/api/cache/tt", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ttCacheStatus())
	})
	r.Delete("/api/cache/tt", func(w http.ResponseWriter, r *http.Request) {
		FlushGlobalCaches()
		writeJSON(w, http.StatusOK, map[string]any{
			"cleared": true,
		})
	})
	r.Get("/api/cache/tt/entries", func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit <= 0 {
			limit = 10
		}
		if limit > 100 {
			limit = 100
		}
		if offset < 0 {
			offset = 0
		}
		writeJSON(w, http.StatusOK, ttCacheEntries(offset, limit))
	})

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, controller, w, r)
	})
	r.Get("/ws/analysis", func(w http.ResponseWriter, r *http.Request) {
		serveAnalysisWS(analysisHub, w, r)
	})

	server := &http.Server{
		Addr:    GetConfig().ListenAddr,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Info().Str("addr", server.Addr).Msg("backend listening")
	var runErr error
	select {
	case <-sigCtx.Done():
		log.Info().Msg("shutdown signal received")
	case err, ok := <-serverErrCh:
		if ok {
			runErr = err
			log.Error().Err(err).Msg("server error")
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("graceful shutdown failed")
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Error().Err(closeErr).Msg("forced close failed")
		}
	}

	cancel()
	persistOnShutdown("shutdown")
	if runErr != nil {
		log.Error().Err(runErr).Msg("exiting after server error")
	}
}

func serveWS(hub *Hub, controller *GameController, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.Register(client)

	status := controllerStatus(controller)
	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(status)})

	go func() {
		defer conn.Close()
		if err := pumpClientMessages(conn, client.send); err != nil {
			return
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_status":
			status := controllerStatus(controller)
			client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(status)})
		}
	}
}

// positionFromMoves replays a column sequence from the empty board,
// validating legality and rejecting sequences that continue past a win.
func positionFromMoves(moves []int) (Position, error) {
	var pos Position
	for i, col := range moves {
		if col < 0 || col >= BoardWidth {
			return Position{}, fmt.Errorf("move %d: column %d out of range", i, col)
		}
		if !pos.CanPlay(col) {
			return Position{}, fmt.Errorf("move %d: column %d is full", i, col)
		}
		if pos.IsWinningMove(col) {
			return Position{}, fmt.Errorf("move %d: game already won", i)
		}
		pos.Play(col)
	}
	return pos, nil
}

func controllerStatus(controller *GameController) StatusResponse {
	state := controller.State()
	return StatusResponse{
		Settings:        controllerSettingsDTO(controller.Settings()),
		Config:          GetConfig(),
		NextPlayer:      playerToInt(state.ToMove),
		Winner:          winnerFromStatus(state.Status),
		Status:          statusToString(state.Status),
		Board:           boardToSlice(state),
		MoveCount:       state.Position.Moves(),
		AiThinking:      controller.AiThinking(),
		History:         historyToDTO(controller.History()),
		WinningLine:     append([]Move(nil), state.WinningLine...),
		TurnStartedAtMs: controller.CurrentTurnStartedAtMs(),
	}
}

func settingsFromDTO(dto GameSettingsDTO, base GameSettings) GameSettings {
	settings := base
	switch dto.Mode {
	case "ai_vs_ai":
		settings.RedType = PlayerAI
		settings.YellowType = PlayerAI
	case "human_vs_human":
		settings.RedType = PlayerHuman
		settings.YellowType = PlayerHuman
	case "ai_vs_human":
		if dto.HumanPlayer == 2 {
			settings.RedType = PlayerAI
			settings.YellowType = PlayerHuman
		} else {
			settings.RedType = PlayerHuman
			settings.YellowType = PlayerAI
		}
	}
	return settings
}

func controllerSettingsDTO(settings GameSettings) GameSettingsDTO {
	mode := "ai_vs_human"
	if settings.RedType == PlayerAI && settings.YellowType == PlayerAI {
		mode = "ai_vs_ai"
	} else if settings.RedType == PlayerHuman && settings.YellowType == PlayerHuman {
		mode = "human_vs_human"
	}
	humanPlayer := 0
	if settings.RedType == PlayerHuman && settings.YellowType != PlayerHuman {
		humanPlayer = 1
	} else if settings.YellowType == PlayerHuman && settings.RedType != PlayerHuman {
		humanPlayer = 2
	} else if settings.RedType == PlayerHuman && settings.YellowType == PlayerHuman {
		humanPlayer = 1
	}
	return GameSettingsDTO{Mode: mode, HumanPlayer: humanPlayer}
}

// boardToSlice renders rows top-down, the orientation UIs draw in.
func boardToSlice(state GameState) [][]int {
	rows := make([][]int, BoardHeight)
	for row := BoardHeight - 1; row >= 0; row-- {
		line := make([]int, BoardWidth)
		for col := 0; col < BoardWidth; col++ {
			line[col] = cellToInt(state.CellAt(col, row))
		}
		rows[BoardHeight-1-row] = line
	}
	return rows
}

func cellToInt(cell Cell) int {
	switch cell {
	case CellRed:
		return 1
	case CellYellow:
		return 2
	default:
		return 0
	}
}

func playerToInt(player PlayerColor) int {
	if player == PlayerRed {
		return 1
	}
	return 2
}

func winnerFromStatus(status GameStatus) int {
	switch status {
	case StatusRedWon:
		return 1
	case StatusYellowWon:
		return 2
	default:
		return 0
	}
}

func statusToString(status GameStatus) string {
	switch status {
	case StatusNotStarted:
		return "not_started"
	case StatusRedWon:
		return "red_won"
	case StatusYellowWon:
		return "yellow_won"
	case StatusDraw:
		return "draw"
	default:
		return "running"
	}
}

func historyToDTO(history MoveHistory) []historyEntryDTO {
	return lo.Map(history.All(), func(entry HistoryEntry, _ int) historyEntryDTO {
		return historyEntryToDTO(entry)
	})
}

func historyEntryToDTO(entry HistoryEntry) historyEntryDTO {
	return historyEntryDTO{
		Col:       entry.Move.Col,
		Row:       entry.Move.Row,
		Player:    playerToInt(entry.Player),
		ElapsedMs: entry.ElapsedMs,
		IsAi:      entry.IsAi,
		Score:     entry.Score,
		Nodes:     entry.Nodes,
	}
}

func resetFromController(controller *GameController) resetPayload {
	state := controller.State()
	return resetPayload{
		History:         historyToDTO(controller.History()),
		NextPlayer:      playerToInt(state.ToMove),
		Winner:          winnerFromStatus(state.Status),
		Status:          statusToString(state.Status),
		Board:           boardToSlice(state),
		WinningLine:     append([]Move(nil), state.WinningLine...),
		TurnStartedAtMs: controller.CurrentTurnStartedAtMs(),
	}
}

func ttCacheStatus() ttCacheStatusResponse {
	config := GetConfig()
	cache := SharedSearchCache()
	tt := ensureTT(cache, config)
	if tt == nil {
		return ttCacheStatusResponse{}
	}
	count := tt.Count()
	capacity := tt.Capacity()
	entryBytes := uint64(unsafe.Sizeof(TTEntry{}))
	usage := 0.0
	full := false
	if capacity > 0 {
		usage = float64(count) / float64(capacity)
		full = count >= capacity
	}
	return ttCacheStatusResponse{
		Count:         count,
		Capacity:      capacity,
		Usage:         usage,
		Full:          full,
		EntryBytes:    entryBytes,
		UsedBytes:     uint64(count) * entryBytes,
		CapacityBytes: uint64(capacity) * entryBytes,
	}
}

func ttCacheEntries(offset int, limit int) ttCacheEntriesResponse {
	config := GetConfig()
	cache := SharedSearchCache()
	tt := ensureTT(cache, config)
	if tt == nil {
		return ttCacheEntriesResponse{
			Items:  []ttCacheEntryDTO{},
			Offset: offset,
			Limit:  limit,
			Total:  0,
		}
	}
	entries, total := tt.TopEntries(offset, limit)
	items := lo.Map(entries, func(entry TTEntry, _ int) ttCacheEntryDTO {
		return ttCacheEntryDTO{
			Key:   fmt.Sprintf("0x%016x", entry.Key),
			Score: entry.Score,
			Depth: entry.Depth,
		}
	})
	return ttCacheEntriesResponse{
		Items:  items,
		Offset: offset,
		Limit:  limit,
		Total:  total,
	}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
