package entity

import (
	"reflect"
	"testing"

	"grid-games/game/input"
	"grid-games/game/types"
	"grid-games/ui"

	"github.com/joonazan/vec2"
)

func newTestRenderer() (*ui.Renderer, *ui.MemorySurface) {
	surface := ui.NewMemorySurface(400, 400)
	return ui.NewRenderer(surface, 20), surface
}

func TestMoveDropsTailAndFollowsHead(t *testing.T) {
	r, surface := newTestRenderer()
	q := input.NewDirectionQueue()
	s := NewSnake(r, q)
	q.Right()

	s.Move()

	if got := s.HeadPosition(); got != (types.Point{X: 5, Y: 0}) {
		t.Errorf("head = %v, want (5,0)", got)
	}
	want := []types.Point{{X: 4, Y: 0}, {X: 3, Y: 0}, {X: 2, Y: 0}}
	if got := s.BodyPositions(); !reflect.DeepEqual(got, want) {
		t.Errorf("body = %v, want %v", got, want)
	}

	// The dropped tail is repainted empty with its outline.
	tail := vec2.Vector{X: 20, Y: 0}
	if c, _ := surface.FillAt(tail); c != types.White {
		t.Errorf("old tail fill = %v, want white", c)
	}
	if surface.StrokesAt(tail) != 1 {
		t.Errorf("old tail outline strokes = %d, want 1", surface.StrokesAt(tail))
	}
}

func TestMoveKeepsLengthAndStepsOneUnit(t *testing.T) {
	r, _ := newTestRenderer()
	q := input.NewDirectionQueue()
	s := NewSnake(r, q)
	n := s.Len()

	turns := []types.Direction{types.DOWN, types.DOWN, types.LEFT, types.UP, types.UP, types.RIGHT}
	for _, d := range turns {
		before := s.HeadPosition()
		q.Enqueue(d)
		s.Move()

		if s.Len() != n {
			t.Fatalf("length changed to %d, want %d", s.Len(), n)
		}
		step := d.ToPoint()
		if got := s.HeadPosition(); got != before.Add(step) {
			t.Errorf("moving %v from %v: head = %v, want %v", d, before, got, before.Add(step))
		}
		if s.Body[0].Pos != before {
			t.Errorf("front segment = %v, want previous head %v", s.Body[0].Pos, before)
		}
	}
}

func TestEatGrowsByOneAtFood(t *testing.T) {
	r, _ := newTestRenderer()
	q := input.NewDirectionQueue()
	s := NewSnake(r, q)
	s.Move() // head onto (5,0)

	food := NewFood(r, types.Point{X: 5, Y: 0})
	if s.HeadPosition() != food.Pos {
		t.Fatalf("head %v not on food %v", s.HeadPosition(), food.Pos)
	}
	s.Eat(food)

	want := []types.Point{{X: 5, Y: 0}, {X: 4, Y: 0}, {X: 3, Y: 0}, {X: 2, Y: 0}}
	if got := s.BodyPositions(); !reflect.DeepEqual(got, want) {
		t.Errorf("body = %v, want %v", got, want)
	}
	if s.Body[0].Color != types.Green {
		t.Errorf("new segment color = %v, want green", s.Body[0].Color)
	}
}

func TestHeadOnBodyAndOccupies(t *testing.T) {
	r, _ := newTestRenderer()
	q := input.NewDirectionQueue()
	s := NewSnakeAt(r, q, types.Point{X: 2, Y: 2}, []types.Point{{X: 2, Y: 3}, {X: 2, Y: 2}})

	if !s.HeadOnBody() {
		t.Error("head on a body segment not detected")
	}
	if !s.Occupies(types.Point{X: 2, Y: 3}) {
		t.Error("Occupies misses a body segment")
	}
	if s.Occupies(types.Point{X: 0, Y: 0}) {
		t.Error("Occupies reports a free cell")
	}
}

func TestDrawPaintsBodyThenHead(t *testing.T) {
	r, surface := newTestRenderer()
	s := NewSnake(r, input.NewDirectionQueue())

	s.Draw()

	checks := map[vec2.Vector]types.Color{
		{X: 80, Y: 0}: types.Orange,
		{X: 60, Y: 0}: types.Green,
		{X: 20, Y: 0}: types.Green,
	}
	for corner, want := range checks {
		if got, ok := surface.FillAt(corner); !ok || got != want {
			t.Errorf("fill at %v = %v, want %v", corner, got, want)
		}
	}
	ops := surface.Ops()
	if last := ops[len(ops)-1]; last.Color != types.Orange {
		t.Errorf("last fill color = %v, want the head's orange", last.Color)
	}
}

func TestHeadTurns(t *testing.T) {
	r, _ := newTestRenderer()
	h := NewHead(r, types.Point{X: 5, Y: 5})

	h.TurnRight()
	h.TurnDown()
	h.TurnDown()
	h.TurnLeft()
	h.TurnUp()

	if h.Pos != (types.Point{X: 5, Y: 6}) {
		t.Errorf("head = %v, want (5,6)", h.Pos)
	}
	if c := h.ToCell(); c.Pos != h.Pos || c.Color != types.Green {
		t.Errorf("ToCell() = %+v, want green cell at head", c)
	}
}

func TestGridDrawStrokesEveryCellOnce(t *testing.T) {
	r, surface := newTestRenderer()
	g := NewGrid(types.Grid{Rows: 3, Cols: 2}, r)

	g.Draw()

	if n := len(surface.Ops()); n != 6 {
		t.Errorf("grid issued %d ops, want 6", n)
	}
	for x := 0; x < 3; x++ {
		for y := 0; y < 2; y++ {
			corner := vec2.Vector{X: float64(x * 20), Y: float64(y * 20)}
			if surface.StrokesAt(corner) != 1 {
				t.Errorf("cell (%d,%d) stroked %d times", x, y, surface.StrokesAt(corner))
			}
		}
	}
}
