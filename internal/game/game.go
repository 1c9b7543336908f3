// Package game wraps the pure rules in internal/core with session state:
// tick timing, buffered input, food spawning, score and end-of-run
// bookkeeping. The platform layer drives it through Reset/Step/Render.
package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Reasons a run can end, stored with the run history.
const (
	EndWall = "wall-collision"
	EndSelf = "self-collision"
)

// Game implements the snake session.
type Game struct {
	rng        *rand.Rand
	tick       uint64
	moves      uint64 // Completed head moves, not ticks
	score      int
	moveEvery  int // Ticks between moves, fixed for the whole run
	moveTicker int // Counts ticks until next move

	// Snake state
	gridSize int
	body     []core.Point // Head at index 0
	dir      core.Direction
	nextDir  core.Direction // Buffered direction for next move
	food     core.Point

	// Screen layout
	screenW   int
	screenH   int
	hudHeight int
	fieldX    int // Screen x of grid cell (0, 0)
	fieldY    int // Screen y of grid cell (0, 0)

	// Game state flags
	gameOver  bool
	endReason string
	paused    bool
	tooSmall  bool
}

// New creates a snake game with the given gameplay settings.
func New(cfg config.Config) *Game {
	return &Game{
		gridSize:  cfg.Grid.Size,
		moveEvery: cfg.Speed.MoveEveryTicks,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// GridSize returns the side length of the playing field.
func (g *Game) GridSize() int {
	return g.gridSize
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.moves = 0
	g.score = 0
	g.moveTicker = 0
	g.gameOver = false
	g.endReason = ""
	g.paused = false
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH
	g.hudHeight = 2 // Top HUD lines

	g.layout()
	g.initSnake()
	g.spawnFood()
}

// Resize updates the screen dimensions without disturbing the run.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.layout()
}

// layout centers the field on screen and checks it fits.
func (g *Game) layout() {
	// Field plus border plus HUD.
	requiredW := g.gridSize + 2
	requiredH := g.gridSize + g.hudHeight + 2
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.fieldX = (g.screenW - g.gridSize) / 2
	g.fieldY = g.hudHeight + 1
}

// initSnake places a three-segment snake at the center, heading right.
func (g *Game) initSnake() {
	cx := g.gridSize / 2
	cy := g.gridSize / 2

	g.body = []core.Point{
		{X: cx, Y: cy}, // Head
		{X: cx - 1, Y: cy},
		{X: cx - 2, Y: cy},
	}
	g.dir = core.DirRight
	g.nextDir = core.DirRight
}

// spawnFood places food at a random cell the snake does not occupy.
func (g *Game) spawnFood() {
	var emptyCells []core.Point
	for y := 0; y < g.gridSize; y++ {
		for x := 0; x < g.gridSize; x++ {
			p := core.Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				emptyCells = append(emptyCells, p)
			}
		}
	}

	if len(emptyCells) == 0 {
		// Snake fills the grid, nowhere left to eat
		g.food = core.Point{X: -1, Y: -1}
		return
	}

	g.food = emptyCells[g.rng.Intn(len(emptyCells))]
}

// isSnakeAt checks if the snake occupies the given cell.
func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.GameState {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return g.State()
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return g.State()
	}

	// Process direction input (buffer for next move)
	g.processInput(input)

	// Move snake on tick interval
	g.moveTicker++
	if g.moveTicker >= g.moveEvery {
		g.moveTicker = 0
		g.advance()
	}

	return g.State()
}

// processInput handles direction changes.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir

	switch {
	case input.Has(core.ActionUp):
		newDir = core.DirUp
	case input.Has(core.ActionDown):
		newDir = core.DirDown
	case input.Has(core.ActionLeft):
		newDir = core.DirLeft
	case input.Has(core.ActionRight):
		newDir = core.DirRight
	}

	// Prevent instant reversal
	if newDir != g.dir.Opposite() {
		g.nextDir = newDir
	}
}

// advance performs one head move using the pure rules.
func (g *Game) advance() {
	g.dir = g.nextDir

	res := core.Step(g.body, g.dir, g.food, g.gridSize)
	if res.Collided() {
		g.gameOver = true
		g.endReason = g.classifyEnd()
		return
	}

	g.moves++
	g.body = res.Body
	if res.Ate {
		g.score++
		g.spawnFood()
	}
}

// classifyEnd tells a wall hit from running into the body, recomputing
// the head cell the failed move aimed at.
func (g *Game) classifyEnd() string {
	dx, dy := g.dir.Delta()
	if attempted := g.body[0].Add(dx, dy); !attempted.InGrid(g.gridSize) {
		return EndWall
	}
	return EndSelf
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// EndReason reports how the run ended, or "" while it is still going.
func (g *Game) EndReason() string {
	return g.endReason
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Field border
	dst.DrawBox(core.NewRect(g.fieldX-1, g.fieldY-1, g.gridSize+2, g.gridSize+2), core.ColorGray)

	// Snake
	for i, seg := range g.body {
		if i == 0 {
			g.setCell(dst, seg, 'O', core.ColorBrightGreen)
		} else {
			g.setCell(dst, seg, 'o', core.ColorGreen)
		}
	}

	// Food
	if g.food.InGrid(g.gridSize) {
		g.setCell(dst, g.food, '*', core.ColorRed)
	}

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// setCell draws a grid cell at its screen position.
func (g *Game) setCell(dst *core.Screen, p core.Point, r rune, c core.Color) {
	dst.SetColored(g.fieldX+p.X, g.fieldY+p.Y, r, c)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake — Score: %d  Length: %d", g.score, len(g.body))
	dst.DrawTextColored(0, 0, hud, core.ColorYellow)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorGray)
}
