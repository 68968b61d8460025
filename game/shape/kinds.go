package shape

import "grid-games/game/types"

type Kind int

const (
	KindI Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	default:
		return "unknown"
	}
}

// Angle is a rotation state in degrees.
type Angle int

const (
	Angle0   Angle = 0
	Angle90  Angle = 90
	Angle180 Angle = 180
	Angle270 Angle = 270
)

// Next returns the angle one quarter turn on, wrapping 270 to 0.
func (a Angle) Next() Angle {
	return (a + 90) % 360
}

// rotationTable holds per-part offsets applied when a shape turns into the
// keyed angle.
type rotationTable map[Angle][]types.Point

type variant struct {
	spawn   []types.Point
	offsets rotationTable
}

// iTurn lays the vertical I flat around its middle part.
var iTurn = []types.Point{{X: 2, Y: 2}, {X: 1, Y: 1}, {X: 0, Y: 0}, {X: -1, Y: -1}, {X: -2, Y: -2}}

var variants = map[Kind]variant{
	KindI: {
		spawn: []types.Point{{X: 3, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 3, Y: 4}},
		offsets: rotationTable{
			Angle90:  iTurn,
			Angle180: negate(iTurn),
			Angle270: iTurn,
			Angle0:   negate(iTurn),
		},
	},
}

func negate(offsets []types.Point) []types.Point {
	out := make([]types.Point, len(offsets))
	for i, o := range offsets {
		out[i] = types.Point{X: -o.X, Y: -o.Y}
	}
	return out
}
