package types

// Point is a grid-relative cell position, not a pixel position.
type Point struct {
	X, Y int
}

// Add returns p shifted by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Grid represents the game grid dimensions in cells.
// Rows is the extent along x and Cols the extent along y.
type Grid struct {
	Rows int
	Cols int
}

// Contains reports whether p lies in [0, Rows) x [0, Cols).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Rows && p.Y >= 0 && p.Y < g.Cols
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Rows * g.Cols
}

// Game constants
const (
	CellWidth         = 20   // Snake pixels per cell
	SnakeTickMillis   = 200  // Snake tick period
	GravityTickMillis = 1000 // Tetris gravity period
	TetrisRows        = 10
	TetrisCols        = 24
)
