package ui

import (
	"math"

	"grid-games/game/types"

	"github.com/joonazan/vec2"
)

type OpKind int

const (
	OpSetFill OpKind = iota
	OpFill
	OpStroke
)

// Op is one recorded surface call.
type Op struct {
	Kind  OpKind
	Color types.Color
	Path  []vec2.Vector
}

// MemorySurface is an off-screen Surface that records every call and the
// latest fill per box. Boxes are keyed by their top-left corner.
type MemorySurface struct {
	width, height int
	fillColor     types.Color
	ops           []Op
	fills         map[vec2.Vector]types.Color
	strokes       map[vec2.Vector]int
}

func NewMemorySurface(width, height int) *MemorySurface {
	return &MemorySurface{
		width:     width,
		height:    height,
		fillColor: types.Black,
		fills:     make(map[vec2.Vector]types.Color),
		strokes:   make(map[vec2.Vector]int),
	}
}

func (m *MemorySurface) Size() (int, int) {
	return m.width, m.height
}

func (m *MemorySurface) SetFillColor(c types.Color) {
	m.fillColor = c
	m.ops = append(m.ops, Op{Kind: OpSetFill, Color: c})
}

func (m *MemorySurface) FillPath(path []vec2.Vector) {
	m.ops = append(m.ops, Op{Kind: OpFill, Color: m.fillColor, Path: clonePath(path)})
	m.fills[topLeft(path)] = m.fillColor
}

func (m *MemorySurface) StrokePath(path []vec2.Vector) {
	m.ops = append(m.ops, Op{Kind: OpStroke, Path: clonePath(path)})
	m.strokes[topLeft(path)]++
}

// Ops returns the recorded calls in order.
func (m *MemorySurface) Ops() []Op {
	return m.ops
}

// FillAt returns the latest fill color of the box whose top-left corner is
// corner.
func (m *MemorySurface) FillAt(corner vec2.Vector) (types.Color, bool) {
	c, ok := m.fills[corner]
	return c, ok
}

// StrokesAt counts strokes of the box whose top-left corner is corner.
func (m *MemorySurface) StrokesAt(corner vec2.Vector) int {
	return m.strokes[corner]
}

// Reset drops the recorded calls but keeps the surface contents.
func (m *MemorySurface) Reset() {
	m.ops = nil
}

func clonePath(path []vec2.Vector) []vec2.Vector {
	out := make([]vec2.Vector, len(path))
	copy(out, path)
	return out
}

func topLeft(path []vec2.Vector) vec2.Vector {
	if len(path) == 0 {
		return vec2.Vector{}
	}
	corner := path[0]
	for _, p := range path[1:] {
		corner.X = math.Min(corner.X, p.X)
		corner.Y = math.Min(corner.Y, p.Y)
	}
	return corner
}
