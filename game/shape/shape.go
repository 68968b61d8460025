package shape

import (
	"errors"
	"fmt"

	"grid-games/game/types"
	"grid-games/ui"

	"golang.org/x/exp/rand"
)

var (
	ErrUnknownShape           = errors.New("unknown shape")
	ErrRotationNotImplemented = errors.New("rotation not implemented")
)

// Palette is the set of colors a new shape picks from.
var Palette = []types.Color{types.Red}

// Rotatable is implemented by shapes that can turn in place.
type Rotatable interface {
	Rotate() error
}

// Part is one cell of a falling shape.
type Part struct {
	Pos      types.Point
	Color    types.Color
	renderer *ui.Renderer
}

// Draw fills the part and keeps its outline visible.
func (p *Part) Draw() {
	p.renderer.FillCell(p.Pos.X, p.Pos.Y, p.Color)
	p.renderer.DrawOutline(p.Pos.X, p.Pos.Y)
}

func (p *Part) Clear() {
	p.renderer.FillCell(p.Pos.X, p.Pos.Y, types.White)
	p.renderer.DrawOutline(p.Pos.X, p.Pos.Y)
}

// Shape is a rigid group of parts sharing a color and rotation angle.
type Shape struct {
	kind  Kind
	color types.Color
	angle Angle
	parts []*Part
	table rotationTable
}

// NewShape builds a shape of a registered kind at its spawn position.
func NewShape(kind Kind, r *ui.Renderer, rng *rand.Rand) (*Shape, error) {
	v, ok := variants[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(kind))
	}

	color := Palette[rng.Intn(len(Palette))]
	s := &Shape{
		kind:  kind,
		color: color,
		angle: Angle0,
		parts: make([]*Part, 0, len(v.spawn)),
		table: v.offsets,
	}
	for _, p := range v.spawn {
		s.parts = append(s.parts, &Part{Pos: p, Color: color, renderer: r})
	}
	return s, nil
}

func (s *Shape) Kind() Kind         { return s.kind }
func (s *Shape) Angle() Angle       { return s.angle }
func (s *Shape) Color() types.Color { return s.color }
func (s *Shape) Parts() []*Part     { return s.parts }

// Positions returns the part positions in part order.
func (s *Shape) Positions() []types.Point {
	out := make([]types.Point, len(s.parts))
	for i, p := range s.parts {
		out[i] = p.Pos
	}
	return out
}

func (s *Shape) Draw() {
	for _, p := range s.parts {
		p.Draw()
	}
}

func (s *Shape) Clear() {
	for _, p := range s.parts {
		p.Clear()
	}
}

func (s *Shape) Redraw() {
	s.Clear()
	s.Draw()
}

// AtBottom reports whether the lowest part has reached the floor row.
func (s *Shape) AtBottom(grid types.Grid) bool {
	if len(s.parts) == 0 {
		return true
	}
	maxY := s.parts[0].Pos.Y
	for _, p := range s.parts[1:] {
		maxY = max(maxY, p.Pos.Y)
	}
	return maxY >= grid.Cols-1
}

// Rotate advances the angle by 90 degrees and moves each part by the offset
// registered for the new angle. A missing offset entry is an error and leaves
// the shape untouched.
func (s *Shape) Rotate() error {
	next := s.angle.Next()
	offsets, ok := s.table[next]
	if !ok {
		return fmt.Errorf("%w: %s at %d", ErrRotationNotImplemented, s.kind, next)
	}
	if len(offsets) != len(s.parts) {
		return fmt.Errorf("%w: %s at %d has %d offsets for %d parts",
			ErrRotationNotImplemented, s.kind, next, len(offsets), len(s.parts))
	}

	s.Clear()
	for i, p := range s.parts {
		p.Pos = p.Pos.Add(offsets[i])
	}
	s.angle = next
	s.Draw()
	return nil
}
