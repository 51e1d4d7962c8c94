package main

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// analysisPayload streams solver progress: one event per root column the
// search resolves, carrying its exact score and the node count so far.
type analysisPayload struct {
	Column    int   `json:"column"`
	Score     int   `json:"score"`
	Nodes     int64 `json:"nodes"`
	MoveIndex int   `json:"move_index"`
	Active    bool  `json:"active"`
	Final     bool  `json:"final,omitempty"`
}

type AnalysisClient struct {
	hub  *AnalysisHub
	conn *websocket.Conn
	send chan []byte
}

type AnalysisHub struct {
	mu        sync.Mutex
	clients   map[*AnalysisClient]struct{}
	broadcast chan analysisPayload
}

func NewAnalysisHub() *AnalysisHub {
	return &AnalysisHub{
		clients:   make(map[*AnalysisClient]struct{}),
		broadcast: make(chan analysisPayload, 64),
	}
}

func (h *AnalysisHub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case payload := <-h.broadcast:
			h.mu.Lock()
			if len(h.clients) == 0 {
				h.mu.Unlock()
				continue
			}
			for client := range h.clients {
				client.sendJSON(wsMessage{Type: "analysis", Payload: mustMarshal(payload)})
			}
			h.mu.Unlock()
		}
	}
}

func (h *AnalysisHub) Publish(payload analysisPayload) {
	select {
	case h.broadcast <- payload:
	default:
	}
}

func (h *AnalysisHub) HasClients() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients) > 0
}

func (h *AnalysisHub) register(c *AnalysisClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *AnalysisHub) unregister(c *AnalysisClient) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (c *AnalysisClient) sendJSON(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func serveAnalysisWS(hub *AnalysisHub, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &AnalysisClient{hub: hub, conn: conn, send: make(chan []byte, 32)}
	hub.register(client)

	go func() {
		defer conn.Close()
		if err := pumpClientMessages(conn, client.send); err != nil {
			return
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			hub.unregister(client)
			return
		}
	}
}
