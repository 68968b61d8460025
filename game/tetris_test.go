package game

import (
	"errors"
	"testing"
	"time"

	"grid-games/game/clock"
	"grid-games/game/shape"
	"grid-games/game/types"
	"grid-games/ui"

	"golang.org/x/exp/rand"
)

func newTetris(t *testing.T) (*TetrisGame, *clock.Scheduler, *ui.MemorySurface) {
	t.Helper()
	grid := types.Grid{Rows: types.TetrisRows, Cols: types.TetrisCols}
	surface := ui.NewMemorySurface(800, 600)
	r := ui.NewRenderer(surface, ui.FitCellWidth(800, 600, grid))

	g, err := NewTetrisGame(r, grid, TetrisOptions{
		GravityInterval: time.Second,
		Kind:            shape.KindI,
		Rng:             rand.New(rand.NewSource(3)),
	})
	if err != nil {
		t.Fatalf("NewTetrisGame: %v", err)
	}
	sched := clock.NewScheduler(epoch)
	if err := g.Start(sched); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return g, sched, surface
}

func TestTetrisGravityFallsOneRowPerTick(t *testing.T) {
	g, sched, _ := newTetris(t)

	sched.Advance(epoch.Add(3 * time.Second))

	if got := g.Shape().Parts()[0].Pos; got != (types.Point{X: 3, Y: 3}) {
		t.Errorf("top part = %v, want (3,3)", got)
	}
}

func TestTetrisShapeRestsOnFloor(t *testing.T) {
	g, sched, _ := newTetris(t)

	sched.Advance(epoch.Add(time.Minute))

	if !g.Shape().AtBottom(g.Grid.Grid) {
		t.Error("shape not resting on the floor")
	}
	if got := g.Shape().Parts()[4].Pos.Y; got != types.TetrisCols-1 {
		t.Errorf("bottom part y = %d, want %d", got, types.TetrisCols-1)
	}
	if !g.Running() {
		t.Error("resting shape stopped the game")
	}
}

func TestTetrisSpaceRotates(t *testing.T) {
	g, _, _ := newTetris(t)

	if !g.HandleKey("Space") {
		t.Fatal("Space reported quit")
	}
	if g.Shape().Angle() != shape.Angle90 {
		t.Errorf("angle = %d, want 90", g.Shape().Angle())
	}
	g.HandleKey("KeyW")
	if g.Shape().Angle() != shape.Angle90 {
		t.Error("unbound key rotated the shape")
	}
}

func TestTetrisUnknownKind(t *testing.T) {
	grid := types.Grid{Rows: types.TetrisRows, Cols: types.TetrisCols}
	r := ui.NewRenderer(ui.NewMemorySurface(200, 480), 20)
	_, err := NewTetrisGame(r, grid, TetrisOptions{Kind: shape.Kind(42)})
	if !errors.Is(err, shape.ErrUnknownShape) {
		t.Errorf("err = %v, want ErrUnknownShape", err)
	}
}

func TestTetrisQuitCancelsGravity(t *testing.T) {
	g, sched, _ := newTetris(t)

	if g.HandleKey("Escape") {
		t.Error("Escape did not report quit")
	}
	if g.Running() {
		t.Error("game still running after quit")
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", sched.Pending())
	}

	before := g.Shape().Positions()
	sched.Advance(epoch.Add(5 * time.Second))
	if g.Shape().Positions()[0] != before[0] {
		t.Error("shape fell after quit")
	}
	if err := g.Rotate(); err != nil {
		t.Errorf("Rotate after stop: %v", err)
	}
	if g.Shape().Angle() != shape.Angle0 {
		t.Error("shape rotated after stop")
	}
	g.Stop()
}

func TestTetrisStartTwice(t *testing.T) {
	g, sched, _ := newTetris(t)
	if err := g.Start(sched); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start: err = %v, want ErrAlreadyStarted", err)
	}
}
