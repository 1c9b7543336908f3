// Package web provides a WebSocket live feed of the running game plus a
// Prometheus metrics endpoint, so a browser page or spectator tool can
// watch a run without attaching to the terminal.
package web

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// Feed event names.
const (
	EventUpdate   = "snake_update"
	EventGameOver = "gameover"
)

// Pos is a grid coordinate in feed frames.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Frame is one feed message carrying the full visible game state.
type Frame struct {
	Event     string `json:"event"`
	Tick      uint64 `json:"tick"`
	Moves     uint64 `json:"moves"`
	Score     int    `json:"score"`
	Snake     []Pos  `json:"snake"` // Head first
	Food      Pos    `json:"food"`
	GridSize  int    `json:"gridSize"`
	GameOver  bool   `json:"gameOver"`
	EndReason string `json:"endReason,omitempty"`
}

// FrameFromSnapshot converts a game snapshot to a feed frame.
func FrameFromSnapshot(snap game.Snapshot) Frame {
	snake := make([]Pos, len(snap.Body))
	for i, p := range snap.Body {
		snake[i] = Pos{X: p.X, Y: p.Y}
	}

	event := EventUpdate
	gameOver := snap.State == game.StateGameOver
	if gameOver {
		event = EventGameOver
	}

	return Frame{
		Event:     event,
		Tick:      snap.Tick,
		Moves:     snap.Moves,
		Score:     snap.Score,
		Snake:     snake,
		Food:      Pos{X: snap.Food.X, Y: snap.Food.Y},
		GridSize:  snap.GridSize,
		GameOver:  gameOver,
		EndReason: snap.EndReason,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Spectator feed, any origin may watch
	},
}

// Hub tracks connected spectators and broadcasts frames to them.
type Hub struct {
	logger *log.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewHub creates a hub with no spectators.
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[*websocket.Conn]bool),
	}
}

// HandleWS upgrades the request and keeps the connection registered
// until the spectator goes away. The feed is one-way; incoming
// messages are drained and ignored.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	spectatorsConnected.Inc()
	defer spectatorsConnected.Dec()

	h.logger.Info("spectator connected", "remote", conn.RemoteAddr().String())

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()

	h.logger.Info("spectator disconnected", "remote", conn.RemoteAddr().String())
}

// Publish sends a frame to every connected spectator. Clients whose
// writes fail are closed and removed; their reader goroutine finishes
// the bookkeeping.
func (h *Hub) Publish(frame Frame) {
	data, err := json.Marshal(frame)
	if err != nil {
		h.logger.Error("cannot encode frame", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Warn("dropping spectator", "error", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}

	framesPublished.Inc()
}

// ClientCount returns the number of connected spectators.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// CloseAll disconnects every spectator.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}
