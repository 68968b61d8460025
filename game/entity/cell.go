package entity

import (
	"grid-games/game/types"
	"grid-games/ui"
)

// Cell is a single colored grid square.
type Cell struct {
	Pos      types.Point
	Color    types.Color
	renderer *ui.Renderer
}

// NewCell returns a green body cell at p.
func NewCell(r *ui.Renderer, p types.Point) *Cell {
	return &Cell{Pos: p, Color: types.Green, renderer: r}
}

func (c *Cell) Draw() {
	c.renderer.FillCell(c.Pos.X, c.Pos.Y, c.Color)
}

// Clear paints the cell white and restores its grid outline.
func (c *Cell) Clear() {
	c.renderer.FillCell(c.Pos.X, c.Pos.Y, types.White)
	c.renderer.DrawOutline(c.Pos.X, c.Pos.Y)
}

// Head is the snake's leading cell.
type Head struct {
	Cell
}

func NewHead(r *ui.Renderer, p types.Point) *Head {
	return &Head{Cell{Pos: p, Color: types.Orange, renderer: r}}
}

// ToCell snapshots the head position as a plain body cell.
func (h *Head) ToCell() *Cell {
	return NewCell(h.renderer, h.Pos)
}

func (h *Head) TurnRight() { h.Pos.X++ }
func (h *Head) TurnLeft()  { h.Pos.X-- }
func (h *Head) TurnUp()    { h.Pos.Y-- }
func (h *Head) TurnDown()  { h.Pos.Y++ }

// Step moves the head one cell in d. NONE leaves it in place.
func (h *Head) Step(d types.Direction) {
	switch d {
	case types.RIGHT:
		h.TurnRight()
	case types.LEFT:
		h.TurnLeft()
	case types.UP:
		h.TurnUp()
	case types.DOWN:
		h.TurnDown()
	}
}

// Food is the cell the snake grows on.
type Food struct {
	Cell
}

func NewFood(r *ui.Renderer, p types.Point) *Food {
	return &Food{Cell{Pos: p, Color: types.Red, renderer: r}}
}

func (f *Food) ToCell() *Cell {
	return NewCell(f.renderer, f.Pos)
}
