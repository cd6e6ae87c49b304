package ui

import (
	"functional-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/samber/lo"
)

var keyInputs = map[int32]game.Input{
	rl.KeyUp:      game.InputUp,
	rl.KeyDown:    game.InputDown,
	rl.KeyLeft:    game.InputLeft,
	rl.KeyRight:   game.InputRight,
	rl.KeyEnter:   game.InputResume,
	rl.KeyKpEnter: game.InputResume,
	rl.KeyEscape:  game.InputQuit,
}

type KeyboardHandler struct{}

func NewKeyboardHandler() *KeyboardHandler {
	// Escape goes through Poll like every other key.
	rl.SetExitKey(rl.KeyNull)
	return &KeyboardHandler{}
}

// Poll pulls fresh events from the window and returns the recognised keys in
// the order they were pressed. Closing the window yields InputQuit.
func (kh *KeyboardHandler) Poll() []game.Input {
	rl.PollInputEvents()

	var keys []int32
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		keys = append(keys, key)
	}

	inputs := lo.FilterMap(keys, func(key int32, _ int) (game.Input, bool) {
		in, ok := keyInputs[key]
		return in, ok
	})

	if rl.WindowShouldClose() {
		inputs = append(inputs, game.InputQuit)
	}
	return inputs
}
