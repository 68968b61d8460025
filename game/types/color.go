package types

type Color struct {
	R, G, B, A uint8
}

var (
	White  = Color{R: 255, G: 255, B: 255, A: 255}
	Black  = Color{R: 0, G: 0, B: 0, A: 255}
	Green  = Color{R: 0, G: 128, B: 0, A: 255}
	Orange = Color{R: 255, G: 165, B: 0, A: 255}
	Red    = Color{R: 255, G: 0, B: 0, A: 255}
)
