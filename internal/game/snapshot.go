package game

import "github.com/vovakirdan/tui-snake/internal/core"

// StateKind names the session phase for snapshots and the live feed.
type StateKind string

const (
	StatePlaying  StateKind = "playing"
	StatePaused   StateKind = "paused"
	StateGameOver StateKind = "game_over"
	StateTooSmall StateKind = "too_small_window"
)

// Snapshot captures the complete game state for determinism testing,
// the live feed, and run persistence.
type Snapshot struct {
	Tick      uint64
	Moves     uint64
	Score     int
	Body      []core.Point // Head at index 0
	Dir       core.Direction
	Food      core.Point
	GridSize  int
	MoveEvery int
	State     StateKind
	EndReason string // "" unless State is game_over
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StateTooSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	body := make([]core.Point, len(g.body))
	copy(body, g.body)

	return Snapshot{
		Tick:      g.tick,
		Moves:     g.moves,
		Score:     g.score,
		Body:      body,
		Dir:       g.dir,
		Food:      g.food,
		GridSize:  g.gridSize,
		MoveEvery: g.moveEvery,
		State:     state,
		EndReason: g.endReason,
	}
}

// Head returns the head cell, or a zero point for an uninitialized game.
func (s Snapshot) Head() core.Point {
	if len(s.Body) == 0 {
		return core.Point{}
	}
	return s.Body[0]
}

// Length returns the snake length in cells.
func (s Snapshot) Length() int {
	return len(s.Body)
}
