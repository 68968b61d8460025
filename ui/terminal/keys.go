package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyCode translates a tcell key event into a DOM-style key code. Keys the
// games never bind come back as "".
func KeyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "ArrowUp"
	case tcell.KeyDown:
		return "ArrowDown"
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return "Escape"
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			return "KeyW"
		case 'a':
			return "KeyA"
		case 's':
			return "KeyS"
		case 'd':
			return "KeyD"
		case 'q':
			return "KeyQ"
		case ' ':
			return "Space"
		}
	}
	return ""
}
