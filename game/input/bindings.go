package input

import "grid-games/game/types"

// Action is what a key press asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionRotate
	ActionQuit
)

// Direction returns the movement direction of a steering action, NONE for
// the others.
func (a Action) Direction() types.Direction {
	switch a {
	case ActionUp:
		return types.UP
	case ActionDown:
		return types.DOWN
	case ActionLeft:
		return types.LEFT
	case ActionRight:
		return types.RIGHT
	default:
		return types.NONE
	}
}

// Bindings maps DOM-style key codes to actions.
type Bindings map[string]Action

// Lookup returns the bound action, ActionNone for unbound keys.
func (b Bindings) Lookup(code string) Action {
	return b[code]
}

var SnakeBindings = Bindings{
	"KeyW":       ActionUp,
	"KeyA":       ActionLeft,
	"KeyS":       ActionDown,
	"KeyD":       ActionRight,
	"ArrowUp":    ActionUp,
	"ArrowLeft":  ActionLeft,
	"ArrowDown":  ActionDown,
	"ArrowRight": ActionRight,
	"KeyQ":       ActionQuit,
	"Escape":     ActionQuit,
}

var TetrisBindings = Bindings{
	"Space":  ActionRotate,
	"KeyQ":   ActionQuit,
	"Escape": ActionQuit,
}
