package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func testConfig(gridSize, moveEvery int) config.Config {
	return config.Config{
		Grid:  config.GridConfig{Size: gridSize},
		Speed: config.SpeedConfig{MoveEveryTicks: moveEvery},
	}
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:    seed,
		ScreenW: 80,
		ScreenH: 24,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs produce identical snapshots
	g1 := New(testConfig(20, 6))
	g1.Reset(testRuntime(12345))

	g2 := New(testConfig(20, 6))
	g2.Reset(testRuntime(12345))

	input := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		input.Clear()
		if i == 20 {
			input.Set(core.ActionDown)
		}
		if i == 60 {
			input.Set(core.ActionLeft)
		}
		if i == 100 {
			input.Set(core.ActionUp)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1.Tick != snap2.Tick {
		t.Errorf("Tick mismatch: %d vs %d", snap1.Tick, snap2.Tick)
	}
	if snap1.Moves != snap2.Moves {
		t.Errorf("Moves mismatch: %d vs %d", snap1.Moves, snap2.Moves)
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Score mismatch: %d vs %d", snap1.Score, snap2.Score)
	}
	if snap1.Dir != snap2.Dir {
		t.Errorf("Direction mismatch: %v vs %v", snap1.Dir, snap2.Dir)
	}
	if snap1.Food != snap2.Food {
		t.Errorf("Food mismatch: %v vs %v", snap1.Food, snap2.Food)
	}
	if len(snap1.Body) != len(snap2.Body) {
		t.Fatalf("Body length mismatch: %d vs %d", len(snap1.Body), len(snap2.Body))
	}
	for i := range snap1.Body {
		if snap1.Body[i] != snap2.Body[i] {
			t.Errorf("Body[%d] mismatch: %v vs %v", i, snap1.Body[i], snap2.Body[i])
		}
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := New(testConfig(20, 6))
	g.Reset(testRuntime(42))

	if g.dir != core.DirRight {
		t.Fatalf("expected initial direction right, got %v", g.dir)
	}

	// Left is opposite of the current heading and must be ignored
	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)

	if g.nextDir == core.DirLeft {
		t.Error("should not allow immediate reversal from right to left")
	}

	input.Clear()
	input.Set(core.ActionDown)
	g.Step(input)

	if g.nextDir != core.DirDown {
		t.Errorf("expected nextDir down, got %v", g.nextDir)
	}
}

func TestFoodSpawnValidity(t *testing.T) {
	g := New(testConfig(20, 6))
	g.Reset(testRuntime(999))

	for i := 0; i < 100; i++ {
		g.spawnFood()

		if g.isSnakeAt(g.food) {
			t.Errorf("food spawned on snake at (%d, %d)", g.food.X, g.food.Y)
		}
		if !g.food.InGrid(g.gridSize) {
			t.Errorf("food spawned out of bounds at (%d, %d)", g.food.X, g.food.Y)
		}
	}
}

func TestFoodSentinelOnFullGrid(t *testing.T) {
	g := New(testConfig(4, 1))
	g.Reset(testRuntime(1))

	// Fill the whole grid with snake
	g.body = nil
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			g.body = append(g.body, core.Point{X: x, Y: y})
		}
	}
	g.spawnFood()

	if g.food.InGrid(4) {
		t.Errorf("expected off-grid sentinel food, got (%d, %d)", g.food.X, g.food.Y)
	}
}

func TestSnakeGrowth(t *testing.T) {
	g := New(testConfig(20, 1))
	g.Reset(testRuntime(222))

	initialLen := len(g.body)
	head := g.body[0]
	g.food = core.Point{X: head.X + 1, Y: head.Y}

	g.Step(core.NewInputFrame())

	if len(g.body) != initialLen+1 {
		t.Errorf("snake should grow by 1 after eating, got %d vs %d", len(g.body), initialLen+1)
	}
	if g.score != 1 {
		t.Errorf("score should be 1 after eating, got %d", g.score)
	}
	if g.food == g.body[0] {
		t.Error("food was not respawned after being eaten")
	}
}

func TestWallCollision(t *testing.T) {
	g := New(testConfig(20, 1))
	g.Reset(testRuntime(789))

	g.body = []core.Point{
		{X: 0, Y: 5},
		{X: 1, Y: 5},
		{X: 2, Y: 5},
	}
	g.dir = core.DirLeft
	g.nextDir = core.DirLeft

	g.advance()

	if !g.gameOver {
		t.Fatal("game should be over after hitting the wall")
	}
	if g.EndReason() != EndWall {
		t.Errorf("end reason = %q, expected %q", g.EndReason(), EndWall)
	}
}

func TestSelfCollision(t *testing.T) {
	g := New(testConfig(20, 1))
	g.Reset(testRuntime(111))

	// Moving right puts the head at (6, 5), which is occupied
	g.body = []core.Point{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	g.dir = core.DirRight
	g.nextDir = core.DirRight

	g.advance()

	if !g.gameOver {
		t.Fatal("game should be over after self collision")
	}
	if g.EndReason() != EndSelf {
		t.Errorf("end reason = %q, expected %q", g.EndReason(), EndSelf)
	}
}

func TestTailCellCollision(t *testing.T) {
	g := New(testConfig(20, 1))
	g.Reset(testRuntime(333))

	// Moving right aims at the tail cell (6, 5); the tail counts as
	// occupied, so the run ends.
	g.body = []core.Point{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
	}
	g.dir = core.DirRight
	g.nextDir = core.DirRight

	g.advance()

	if !g.gameOver {
		t.Fatal("moving onto the tail cell should end the run")
	}
	if g.EndReason() != EndSelf {
		t.Errorf("end reason = %q, expected %q", g.EndReason(), EndSelf)
	}
}

func TestMoveInterval(t *testing.T) {
	g := New(testConfig(20, 6))
	g.Reset(testRuntime(555))

	head := g.body[0]
	input := core.NewInputFrame()

	for i := 0; i < 5; i++ {
		g.Step(input)
		if g.body[0] != head {
			t.Fatalf("snake moved on tick %d, expected move on tick 6", i+1)
		}
	}

	g.Step(input)
	if g.body[0] == head {
		t.Error("snake did not move on the 6th tick")
	}
	if got := (core.Point{X: head.X + 1, Y: head.Y}); g.body[0] != got {
		t.Errorf("head = %v, expected %v", g.body[0], got)
	}
}

func TestSpeedStaysFixed(t *testing.T) {
	g := New(testConfig(20, 4))
	g.Reset(testRuntime(777))

	// Grow a few times and check the interval never changes
	input := core.NewInputFrame()
	for i := 0; i < 3; i++ {
		head := g.body[0]
		g.food = core.Point{X: head.X + 1, Y: head.Y}
		for tick := 0; tick < 4; tick++ {
			g.Step(input)
		}
	}

	if g.score != 3 {
		t.Fatalf("score = %d, expected 3", g.score)
	}
	if g.moveEvery != 4 {
		t.Errorf("move interval changed to %d after growing", g.moveEvery)
	}
}

func TestPause(t *testing.T) {
	g := New(testConfig(20, 1))
	g.Reset(testRuntime(888))

	head := g.body[0]

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)

	if !g.paused {
		t.Fatal("game should be paused")
	}

	input.Clear()
	for i := 0; i < 10; i++ {
		g.Step(input)
	}
	if g.body[0] != head {
		t.Error("snake moved while paused")
	}

	input.Set(core.ActionPause)
	g.Step(input)
	if g.paused {
		t.Error("game should be unpaused")
	}
}

func TestRestart(t *testing.T) {
	g := New(testConfig(20, 1))
	g.Reset(testRuntime(444))

	g.body = []core.Point{{X: 0, Y: 5}, {X: 1, Y: 5}}
	g.dir = core.DirLeft
	g.nextDir = core.DirLeft
	g.advance()

	if !g.gameOver {
		t.Fatal("setup failed: game should be over")
	}

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.gameOver {
		t.Error("game still over after restart")
	}
	if g.score != 0 {
		t.Errorf("score = %d after restart, expected 0", g.score)
	}
	if len(g.body) != 3 {
		t.Errorf("body length = %d after restart, expected 3", len(g.body))
	}
	if g.EndReason() != "" {
		t.Errorf("end reason = %q after restart, expected empty", g.EndReason())
	}
}

func TestRestartIgnoredMidRun(t *testing.T) {
	g := New(testConfig(20, 6))
	g.Reset(testRuntime(666))

	input := core.NewInputFrame()
	for i := 0; i < 3; i++ {
		g.Step(input)
	}
	tick := g.tick

	input.Set(core.ActionRestart)
	g.Step(input)

	if g.tick != tick+1 {
		t.Errorf("restart mid-run reset the tick counter: %d", g.tick)
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New(testConfig(20, 6))
	g.Reset(core.RuntimeConfig{Seed: 333, ScreenW: 10, ScreenH: 5})

	if !g.tooSmall {
		t.Fatal("game should detect the window is too small")
	}
	if snap := g.Snapshot(); snap.State != StateTooSmall {
		t.Errorf("state = %s, expected %s", snap.State, StateTooSmall)
	}

	// No movement while the window is too small
	head := g.body[0]
	input := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(input)
	}
	if g.body[0] != head {
		t.Error("snake moved while the window was too small")
	}

	g.Resize(80, 24)
	if g.tooSmall {
		t.Error("game still too small after resize")
	}
	if snap := g.Snapshot(); snap.State != StatePlaying {
		t.Errorf("state = %s after resize, expected %s", snap.State, StatePlaying)
	}
}

func TestRender(t *testing.T) {
	g := New(testConfig(20, 6))
	g.Reset(testRuntime(4444))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Snake") {
		t.Error("HUD should contain 'Snake'")
	}
	if !strings.Contains(content, "O") {
		t.Error("rendered screen should contain the snake head")
	}
	if !strings.Contains(content, "*") {
		t.Error("rendered screen should contain food")
	}

	// The head cell carries the head color at its screen position
	head := g.body[0]
	cell := screen.GetCell(g.fieldX+head.X, g.fieldY+head.Y)
	if cell.Rune != 'O' || cell.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v", cell)
	}
}

func TestSnapshotCopiesBody(t *testing.T) {
	g := New(testConfig(20, 6))
	g.Reset(testRuntime(5555))

	snap := g.Snapshot()
	snap.Body[0] = core.Point{X: -100, Y: -100}

	if g.body[0] == (core.Point{X: -100, Y: -100}) {
		t.Error("mutating a snapshot body changed the live game")
	}

	if snap.Length() != 3 {
		t.Errorf("Length() = %d, expected 3", snap.Length())
	}
	if snap.Head() != snap.Body[0] {
		t.Errorf("Head() = %v, expected %v", snap.Head(), snap.Body[0])
	}
}
