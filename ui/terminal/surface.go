package terminal

import (
	"math"

	"grid-games/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/joonazan/vec2"
)

const (
	dHoriz  = '-'
	dVert   = '|'
	dCorner = '+'
	dFill   = ' '
)

// Surface draws on a tcell screen where one pixel is one terminal cell.
// Strokes draw box lines on the path bounds, fills paint the interior so
// neighbouring outlines survive.
type Surface struct {
	screen    tcell.Screen
	fill      types.Color
	lineStyle tcell.Style
}

func NewSurface(screen tcell.Screen) *Surface {
	base := tcell.StyleDefault.
		Background(toTcell(types.White)).
		Foreground(toTcell(types.Black))
	screen.SetStyle(base)
	screen.Clear()

	return &Surface{
		screen:    screen,
		fill:      types.Black,
		lineStyle: base.Foreground(tcell.ColorGray),
	}
}

func (s *Surface) Size() (int, int) {
	return s.screen.Size()
}

func (s *Surface) SetFillColor(c types.Color) {
	s.fill = c
}

func (s *Surface) FillPath(path []vec2.Vector) {
	x0, y0, x1, y1 := bounds(path)
	style := tcell.StyleDefault.Background(toTcell(s.fill))

	// Boxes too small to have an interior are painted whole.
	if x1-x0 < 2 || y1-y0 < 2 {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				s.screen.SetContent(x, y, dFill, nil, style)
			}
		}
		return
	}
	for y := y0 + 1; y < y1; y++ {
		for x := x0 + 1; x < x1; x++ {
			s.screen.SetContent(x, y, dFill, nil, style)
		}
	}
}

func (s *Surface) StrokePath(path []vec2.Vector) {
	x0, y0, x1, y1 := bounds(path)
	for x := x0 + 1; x < x1; x++ {
		s.screen.SetContent(x, y0, dHoriz, nil, s.lineStyle)
		s.screen.SetContent(x, y1, dHoriz, nil, s.lineStyle)
	}
	for y := y0 + 1; y < y1; y++ {
		s.screen.SetContent(x0, y, dVert, nil, s.lineStyle)
		s.screen.SetContent(x1, y, dVert, nil, s.lineStyle)
	}
	s.screen.SetContent(x0, y0, dCorner, nil, s.lineStyle)
	s.screen.SetContent(x1, y0, dCorner, nil, s.lineStyle)
	s.screen.SetContent(x0, y1, dCorner, nil, s.lineStyle)
	s.screen.SetContent(x1, y1, dCorner, nil, s.lineStyle)
}

// Show pushes pending cell changes to the terminal.
func (s *Surface) Show() {
	s.screen.Show()
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func bounds(path []vec2.Vector) (x0, y0, x1, y1 int) {
	if len(path) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY := path[0].X, path[0].Y
	maxX, maxY := minX, minY
	for _, p := range path[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return int(math.Round(minX)), int(math.Round(minY)), int(math.Round(maxX)), int(math.Round(maxY))
}
