package window

import rl "github.com/gen2brain/raylib-go/raylib"

var keyCodes = map[int32]string{
	rl.KeyW:      "KeyW",
	rl.KeyA:      "KeyA",
	rl.KeyS:      "KeyS",
	rl.KeyD:      "KeyD",
	rl.KeyQ:      "KeyQ",
	rl.KeySpace:  "Space",
	rl.KeyUp:     "ArrowUp",
	rl.KeyDown:   "ArrowDown",
	rl.KeyLeft:   "ArrowLeft",
	rl.KeyRight:  "ArrowRight",
	rl.KeyEscape: "Escape",
}

// PollKeys drains the keys pressed since the last frame, in press order.
// Keys without a code are skipped.
func PollKeys() []string {
	var codes []string
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if code, ok := keyCodes[key]; ok {
			codes = append(codes, code)
		}
	}
	return codes
}
