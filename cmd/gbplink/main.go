// Gbplink plays the Game Boy Player's part of the rumble protocol, so rumble
// can be developed without a GameCube.
//
// It talks to the console through a link cable bridge: a serial adapter or a
// websocket server that clocks one 32-bit transfer per word it receives.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
