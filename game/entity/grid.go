package entity

import (
	"grid-games/game/types"
	"grid-games/ui"
)

// Grid is the drawable board outline.
type Grid struct {
	types.Grid
	renderer *ui.Renderer
}

func NewGrid(dims types.Grid, r *ui.Renderer) *Grid {
	return &Grid{Grid: dims, renderer: r}
}

// Draw strokes every cell once. It is only meant for game start; later
// repaints are per-cell.
func (g *Grid) Draw() {
	for x := 0; x < g.Rows; x++ {
		for y := 0; y < g.Cols; y++ {
			g.renderer.DrawOutline(x, y)
		}
	}
}
