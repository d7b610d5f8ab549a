// Package keypad reads the console's buttons.
package keypad

import (
	"strings"

	"github.com/clktmr/gba/hw"
)

// KEYINPUT holds one bit per button, which is cleared while the button is
// held down.
const KEYINPUT hw.Addr = 0x0400_0130

// Buttons is a set of buttons. Unlike KEYINPUT, a set bit means pressed.
type Buttons uint16

const (
	A Buttons = 1 << iota
	B
	Select
	Start
	Right
	Left
	Up
	Down
	R
	L

	All Buttons = 1<<iota - 1
)

// Unlocked is the raw KEYINPUT value of all four directions held at once.
// The directional pad can't produce it, so the Game Boy Player uses it to
// signal that its extra functionality is unlocked.
const Unlocked uint16 = 0x030f

var buttonNames = [...]string{
	"A",
	"B",
	"Select",
	"Start",
	"→",
	"←",
	"↑",
	"↓",
	"R",
	"L",
}

func (b Buttons) String() string {
	var sb strings.Builder
	for i, v := range buttonNames {
		if b&(1<<i) != 0 {
			if sb.Len() != 0 {
				sb.WriteString(" + ")
			}
			sb.WriteString(v)
		}
	}
	return sb.String()
}

// Raw returns the KEYINPUT register as is.
func Raw(bus hw.Bus) uint16 {
	return bus.Load16(KEYINPUT)
}

// Read returns the buttons currently held down.
func Read(bus hw.Bus) Buttons {
	return Buttons(^Raw(bus)) & All
}

// Keypad tracks button state across polls for edge detection.
type Keypad struct {
	bus           hw.Bus
	current, last Buttons
}

func New(bus hw.Bus) *Keypad {
	return &Keypad{bus: bus}
}

// Poll samples the buttons. Call it once per frame.
func (k *Keypad) Poll() {
	k.last = k.current
	k.current = Read(k.bus)
}

func (k *Keypad) Down() Buttons {
	return k.current
}

func (k *Keypad) Changed() Buttons {
	return k.current ^ k.last
}

func (k *Keypad) Pressed() Buttons {
	return k.Changed() & k.current
}

func (k *Keypad) Released() Buttons {
	return k.Changed() & k.last
}
