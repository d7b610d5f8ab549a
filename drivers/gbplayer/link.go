// Package gbplayer implements rumble on the Game Boy Player.
//
// The Game Boy Player relays rumble to the controller plugged into the
// GameCube. It talks to the cartridge over the link port: after a handshake
// and an exchange of magic values it polls for the current rumble command
// every frame. The host side of that protocol runs entirely in the serial
// interrupt handler, see [Link.Interrupt].
//
// The Game Boy Player must be detected with [Detect] before anything else is
// shown on screen.
package gbplayer

import (
	"github.com/clktmr/gba/hw"
	"github.com/clktmr/gba/hw/sio"
	"github.com/clktmr/gba/splash"
)

// Link holds the state shared between the serial interrupt handler and the
// main loop. The protocol state is only written by the interrupt handler, the
// rumble command only by the main loop.
type Link struct {
	bus hw.Bus

	// Splash is shown during [Detect]. If nil, [splash.Default] is used.
	Splash *splash.Image

	state   hw.IntrCell[State]
	command hw.IntrCell[Command]
}

func NewLink(bus hw.Bus) *Link {
	l := &Link{bus: bus}
	l.command.Store(Stop)
	return l
}

// Configure programs the serial port for the Game Boy Player. Call it after
// a successful [Detect] and before installing the interrupt handler.
func (l *Link) Configure() {
	sio.Configure(l.bus)
}

// Install registers [Link.Interrupt] for the serial interrupt and enables
// it.
func (l *Link) Install(irq *hw.Interrupts) {
	irq.SetHandler(hw.IntrSerial, l.Interrupt)
	irq.Enable(hw.IntrSerial)
}

// Interrupt advances the protocol by the word received in the last transfer.
// It must be called from the serial interrupt handler.
//
//go:nosplit
func (l *Link) Interrupt() {
	in := sio.Data(l.bus)
	next, reply, ok := Step(l.state.Load(), in, l.command.Load())
	if ok {
		sio.SetData(l.bus, reply)
		sio.Arm(l.bus)
	}
	l.state.Store(next)
}

// State returns a snapshot of the protocol state, for diagnostics only.
func (l *Link) State() State {
	return l.state.Load()
}
