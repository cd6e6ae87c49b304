package game

import "functional-snake/game/types"

// Input is one key event after the UI layer has translated it.
type Input int

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputResume
	InputQuit
)

func (in Input) String() string {
	switch in {
	case InputUp:
		return "up"
	case InputDown:
		return "down"
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	case InputResume:
		return "resume"
	case InputQuit:
		return "quit"
	default:
		return "none"
	}
}

// direction maps the arrow inputs to a facing.
func (in Input) direction() (types.Direction, bool) {
	switch in {
	case InputUp:
		return types.UP, true
	case InputDown:
		return types.DOWN, true
	case InputLeft:
		return types.LEFT, true
	case InputRight:
		return types.RIGHT, true
	}
	return types.DOWN, false
}
