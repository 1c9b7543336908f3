package core

// DefaultGridSize is the side length of the square playing field when no
// explicit size is configured.
const DefaultGridSize = 20

// Outcome tells whether a step moved the snake or ended the run.
type Outcome int

const (
	OutcomeMoved Outcome = iota
	OutcomeCollision
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// StepResult is the result of advancing the snake by one cell.
// Body is the snake after the move, head first; it is nil when
// Outcome is OutcomeCollision.
type StepResult struct {
	Outcome Outcome
	Body    []Point
	Ate     bool
}

// Collided reports whether the step ended the run.
func (r StepResult) Collided() bool {
	return r.Outcome == OutcomeCollision
}

// Step advances the snake one cell in dir on a gridSize x gridSize field.
// body is head first and is never modified; the returned body is a fresh
// slice. A move onto food grows the snake by one and sets Ate.
//
// The move collides when the new head leaves the grid or lands on any
// current body cell. The tail cell counts as occupied: it is popped only
// after the collision check, never before.
//
// Step panics when body is empty; a snake always has at least its head.
func Step(body []Point, dir Direction, food Point, gridSize int) StepResult {
	if len(body) == 0 {
		panic("core: Step called with empty snake body")
	}

	dx, dy := dir.Delta()
	newHead := body[0].Add(dx, dy)

	if !newHead.InGrid(gridSize) {
		return StepResult{Outcome: OutcomeCollision}
	}
	for _, p := range body {
		if newHead == p {
			return StepResult{Outcome: OutcomeCollision}
		}
	}

	next := make([]Point, 0, len(body)+1)
	next = append(next, newHead)
	next = append(next, body...)

	if newHead == food {
		return StepResult{Outcome: OutcomeMoved, Body: next, Ate: true}
	}
	return StepResult{Outcome: OutcomeMoved, Body: next[:len(next)-1]}
}
