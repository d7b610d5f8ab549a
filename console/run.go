// Package console runs a frame paced main loop.
package console

import (
	"github.com/clktmr/gba/hw/keypad"
)

// Frame paces the game loop.
type Frame interface {
	WaitVBlank()
}

// Gamelooper represents a game instance that is updated once per frame.
type Gamelooper interface {
	// Update is called every frame after the keypad was polled.
	// Return an error to exit the game loop, nil to continue.
	Update(keys *keypad.Keypad) error
}

// Run calls g.Update once per frame until it returns an error, which is
// returned by Run.
func Run(f Frame, keys *keypad.Keypad, g Gamelooper) error {
	for {
		f.WaitVBlank()
		keys.Poll()
		if err := g.Update(keys); err != nil {
			return err
		}
	}
}
