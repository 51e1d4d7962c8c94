package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

const boardWidth = 7
const boardHeight = 6

type bench struct {
	client  *http.Client
	baseURL string

	mu      sync.Mutex
	results []solveResult
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
	Count    int     `json:"count"`
	Capacity int     `json:"capacity"`
	Usage    float64 `json:"usage"`
}

type solveResult struct {
	plies     int
	score     int
	nodes     int64
	elapsedMs int64
}

func main() {
	addr := flag.String("addr", getenv("BACKEND_URL", "http://localhost:8080"), "backend base URL")
	solves := flag.Int("solves", 20, "number of positions to solve")
	workers := flag.Int("workers", 2, "concurrent solve requests")
	minPlies := flag.Int("min-plies", 8, "minimum opening length")
	maxPlies := flag.Int("max-plies", 16, "maximum opening length")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if *maxPlies < *minPlies {
		*maxPlies = *minPlies
	}
	if *maxPlies > boardWidth*boardHeight {
		*maxPlies = boardWidth * boardHeight
	}

	b := &bench{
		client:  &http.Client{Timeout: 10 * time.Minute},
		baseURL: *addr,
	}

	ctx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	if err := b.waitBackendReady(ctx); err != nil {
		log.Fatal().Err(err).Msg("backend not reachable")
	}
	log.Info().Str("backend", b.baseURL).Int("solves", *solves).Int("workers", *workers).Msg("bench starting")

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(*workers)
	for i := 0; i < *solves; i++ {
		group.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			plies := *minPlies
			if *maxPlies > *minPlies {
				plies += frand.Intn(*maxPlies - *minPlies + 1)
			}
			moves := randomOpening(plies)
			return b.solveOne(gctx, moves)
		})
	}
	if err := group.Wait(); err != nil && err != context.Canceled {
		log.Fatal().Err(err).Msg("bench failed")
	}

	b.report()
}

// randomOpening generates a legal column sequence of the given length,
// backing off when a move ends the game so the server will accept it.
func randomOpening(plies int) []int {
	for attempt := 0; attempt < 200; attempt++ {
		if moves, ok := tryRandomOpening(plies); ok {
			return moves
		}
	}
	// Fall back to a short opening rather than spin forever.
	moves, _ := tryRandomOpening(2)
	return moves
}

func tryRandomOpening(plies int) ([]int, bool) {
	var heights [boardWidth]int
	var grid [boardWidth][boardHeight]int
	moves := make([]int, 0, plies)
	player := 1
	for len(moves) < plies {
		col := frand.Intn(boardWidth)
		if heights[col] >= boardHeight {
			continue
		}
		row := heights[col]
		grid[col][row] = player
		if connectsFour(&grid, col, row, player) {
			return nil, false
		}
		heights[col]++
		moves = append(moves, col)
		player = 3 - player
	}
	return moves, true
}

func connectsFour(grid *[boardWidth][boardHeight]int, col, row, player int) bool {
	dirs := [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}
	for _, d := range dirs {
		run := 1
		for _, sign := range []int{1, -1} {
			c, r := col+sign*d[0], row+sign*d[1]
			for c >= 0 && c < boardWidth && r >= 0 && r < boardHeight && grid[c][r] == player {
				run++
				c += sign * d[0]
				r += sign * d[1]
			}
		}
		if run >= 4 {
			return true
		}
	}
	return false
}

func (b *bench) solveOne(ctx context.Context, moves []int) error {
	var resp solveResponse
	start := time.Now()
	if err := b.postJSON(ctx, "/api/solve", solveRequest{Moves: moves}, &resp); err != nil {
		return err
	}
	elapsed := time.Since(start)
	log.Info().
		Int("plies", len(moves)).
		Int("column", resp.Column).
		Int("score", resp.Score).
		Int64("nodes", resp.Nodes).
		Dur("elapsed", elapsed).
		Msg("solved")
	b.mu.Lock()
	b.results = append(b.results, solveResult{
		plies:     len(moves),
		score:     resp.Score,
		nodes:     resp.Nodes,
		elapsedMs: elapsed.Milliseconds(),
	})
	b.mu.Unlock()
	return nil
}

func (b *bench) report() {
	b.mu.Lock()
	results := append([]solveResult(nil), b.results...)
	b.mu.Unlock()
	if len(results) == 0 {
		log.Warn().Msg("no results collected")
		return
	}
	sort.Slice(results, func(i, j int) bool { return results[i].elapsedMs < results[j].elapsedMs })
	var totalNodes int64
	var totalMs int64
	for _, r := range results {
		totalNodes += r.nodes
		totalMs += r.elapsedMs
	}
	median := results[len(results)/2].elapsedMs
	log.Info().
		Int("solves", len(results)).
		Int64("total_nodes", totalNodes).
		Int64("total_ms", totalMs).
		Int64("median_ms", median).
		Int64("max_ms", results[len(results)-1].elapsedMs).
		Msg("bench complete")

	var tt ttCacheStatusResponse
	if err := b.getJSON(context.Background(), "/api/cache/tt", &tt); err == nil {
		log.Info().
			Int("count", tt.Count).
			Int("capacity", tt.Capacity).
			Float64("usage", tt.Usage).
			Msg("transposition cache after run")
	}
}

func (b *bench) waitBackendReady(ctx context.Context) error {
	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := b.ping(ctx); err == nil {
			return nil
		}
		if !sleepWithContext(ctx, time.Second) {
			return ctx.Err()
		}
	}
	return fmt.Errorf("timeout after 60s")
}

func (b *bench) ping(ctx context.Context) error {
	var out map[string]bool
	return b.getJSON(ctx, "/api/ping", &out)
}

func (b *bench) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("GET %s -> %d: %s", path, resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (b *bench) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("POST %s -> %d: %s", path, resp.StatusCode, string(respBody))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
