package window

import (
	"math"

	"grid-games/game/types"

	"github.com/joonazan/vec2"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const lineWidth = 2

// Surface is a raylib window backed by a persistent render texture, so cell
// paints accumulate across frames instead of being cleared by BeginDrawing.
// All calls must come from the goroutine that opened the window.
type Surface struct {
	width, height int32
	target        rl.RenderTexture2D
	fill          rl.Color
	stroke        rl.Color
	drawing       bool
}

// NewSurface creates the render target. The window must already be open.
func NewSurface(width, height int) *Surface {
	s := &Surface{
		width:  int32(width),
		height: int32(height),
		target: rl.LoadRenderTexture(int32(width), int32(height)),
		fill:   toRaylib(types.Black),
		stroke: toRaylib(types.Black),
	}

	rl.BeginTextureMode(s.target)
	rl.ClearBackground(rl.White)
	rl.EndTextureMode()

	return s
}

func (s *Surface) Size() (int, int) {
	return int(s.width), int(s.height)
}

func (s *Surface) SetFillColor(c types.Color) {
	s.fill = toRaylib(c)
}

func (s *Surface) FillPath(path []vec2.Vector) {
	s.begin()
	rl.DrawRectangleRec(bounds(path), s.fill)
}

func (s *Surface) StrokePath(path []vec2.Vector) {
	s.begin()
	rl.DrawRectangleLinesEx(bounds(path), lineWidth, s.stroke)
}

// Present flushes pending paints and shows the texture for one frame.
func (s *Surface) Present() {
	s.end()

	rl.BeginDrawing()
	rl.ClearBackground(rl.White)
	// Render textures are stored upside down.
	source := rl.NewRectangle(0, 0, float32(s.width), -float32(s.height))
	rl.DrawTextureRec(s.target.Texture, source, rl.NewVector2(0, 0), rl.White)
	rl.EndDrawing()
}

// Close releases the render texture.
func (s *Surface) Close() {
	s.end()
	rl.UnloadRenderTexture(s.target)
}

func (s *Surface) begin() {
	if !s.drawing {
		rl.BeginTextureMode(s.target)
		s.drawing = true
	}
}

func (s *Surface) end() {
	if s.drawing {
		rl.EndTextureMode()
		s.drawing = false
	}
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// bounds returns the axis-aligned rectangle enclosing path.
func bounds(path []vec2.Vector) rl.Rectangle {
	if len(path) == 0 {
		return rl.Rectangle{}
	}
	minX, minY := path[0].X, path[0].Y
	maxX, maxY := minX, minY
	for _, p := range path[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return rl.NewRectangle(float32(minX), float32(minY), float32(maxX-minX), float32(maxY-minY))
}
