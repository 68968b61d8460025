package shape

import "grid-games/game/types"

// Gravity pulls a shape down one row per application until it rests on the
// floor.
type Gravity struct {
	grid types.Grid
}

func NewGravity(grid types.Grid) *Gravity {
	return &Gravity{grid: grid}
}

// Apply clears each part and moves it down one row. It reports whether the
// shape moved.
func (g *Gravity) Apply(s *Shape) bool {
	if s.AtBottom(g.grid) {
		return false
	}
	for _, p := range s.parts {
		p.Clear()
		p.Pos.Y++
	}
	return true
}
