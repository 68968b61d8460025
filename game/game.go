package game

import (
	"errors"

	"grid-games/game/clock"
	"grid-games/game/input"
	"grid-games/game/types"
)

var ErrAlreadyStarted = errors.New("game already started")

// Controller is the loop shape shared by both games: it is started on a
// scheduler, fed key codes, and stopped once.
type Controller interface {
	Start(s *clock.Scheduler) error
	// HandleKey applies a DOM-style key code. It returns false once the
	// player asked to quit.
	HandleKey(code string) bool
	Running() bool
	Stop()
}

type State int

const (
	StateRunning State = iota
	StateOver
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "over"
}

// OverReason says why a game left the running state.
type OverReason int

const (
	OverNone OverReason = iota
	OverSelf
	OverBorder
	OverBoardFull
	OverQuit
)

func (r OverReason) String() string {
	switch r {
	case OverSelf:
		return "ran into itself"
	case OverBorder:
		return "hit the border"
	case OverBoardFull:
		return "board full"
	case OverQuit:
		return "quit"
	default:
		return "none"
	}
}

// Listener receives game events. Implementations must not block.
type Listener interface {
	FoodEaten(p types.Point)
	GameOver(reason OverReason)
}

// View is the read-only board a Pilot steers by.
type View interface {
	Head() types.Point
	Body() []types.Point
	Food() types.Point
	// Blocked reports whether moving the head onto p would end the game.
	Blocked(p types.Point) bool
}

// Pilot is an input source that is consulted once per tick, before the move.
type Pilot interface {
	Steer(v View, q *input.DirectionQueue)
}
