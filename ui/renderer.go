package ui

import (
	"math"

	"grid-games/game/types"

	"github.com/joonazan/vec2"
)

// Surface is the drawable the renderer paints on. Paths are closed polygons
// in pixel coordinates.
type Surface interface {
	Size() (width, height int)
	SetFillColor(c types.Color)
	FillPath(path []vec2.Vector)
	StrokePath(path []vec2.Vector)
}

// Renderer maps grid cells to pixel boxes on a Surface. It keeps no record
// of what has been drawn.
type Renderer struct {
	surface   Surface
	cellWidth float64
}

func NewRenderer(surface Surface, cellWidth float64) *Renderer {
	return &Renderer{
		surface:   surface,
		cellWidth: cellWidth,
	}
}

// FitCellWidth returns the largest cell width that fits grid on a
// width x height surface.
func FitCellWidth(width, height int, grid types.Grid) float64 {
	cellW := float64(width) / float64(grid.Rows)
	cellH := float64(height) / float64(grid.Cols)
	return math.Min(cellW, cellH)
}

func (r *Renderer) CellWidth() float64 {
	return r.cellWidth
}

func (r *Renderer) Surface() Surface {
	return r.surface
}

// Extent returns floor(width/cellWidth) x floor(height/cellWidth) for the
// current surface size.
func (r *Renderer) Extent() types.Grid {
	width, height := r.surface.Size()
	return types.Grid{
		Rows: int(math.Floor(float64(width) / r.cellWidth)),
		Cols: int(math.Floor(float64(height) / r.cellWidth)),
	}
}

// Box returns the four pixel corners of cell (x, y), clockwise from the
// top-left.
func (r *Renderer) Box(x, y int) []vec2.Vector {
	cw := r.cellWidth
	left := float64(x) * cw
	top := float64(y) * cw
	return []vec2.Vector{
		{X: left, Y: top},
		{X: left + cw, Y: top},
		{X: left + cw, Y: top + cw},
		{X: left, Y: top + cw},
	}
}

// DrawOutline strokes the boundary of cell (x, y).
func (r *Renderer) DrawOutline(x, y int) {
	r.surface.StrokePath(r.Box(x, y))
}

// FillCell fills cell (x, y) with color. The color stays the surface's fill
// color for later Fill calls.
func (r *Renderer) FillCell(x, y int, color types.Color) {
	r.surface.SetFillColor(color)
	r.Fill(x, y)
}

// Fill fills cell (x, y) with the previous fill color.
func (r *Renderer) Fill(x, y int) {
	r.surface.FillPath(r.Box(x, y))
}
