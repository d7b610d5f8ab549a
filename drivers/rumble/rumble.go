// Package rumble drives the rumble motor, either through the Game Boy Player
// or a rumble cartridge.
package rumble

import (
	"github.com/clktmr/gba/drivers/gbplayer"
	"github.com/clktmr/gba/hw"
	"github.com/clktmr/gba/hw/gpio"
)

// Rumbler is implemented by all rumble devices. Update must be called once
// per frame.
type Rumbler interface {
	Start()
	Stop()
	Update()
}

var (
	_ Rumbler = (*gbplayer.Player)(nil)
	_ Rumbler = (*GPIO)(nil)
)

// GPIO drives a motor on the cartridge's GPIO port. Writes are never
// acknowledged, so there is no way to tell whether a motor is present.
type GPIO struct {
	bus hw.Bus
}

func NewGPIO(bus hw.Bus) *GPIO {
	return &GPIO{bus}
}

func (g *GPIO) Start() {
	gpio.Enable(g.bus)
	gpio.SetOutputs(g.bus, gpio.Rumble)
	gpio.Write(g.bus, gpio.Rumble)
}

// Stop only clears the data pin. The port stays configured for the next
// Start.
func (g *GPIO) Stop() {
	gpio.Write(g.bus, 0)
}

// Update does nothing, the motor follows the pin directly.
func (g *GPIO) Update() {}

func (g *GPIO) String() string {
	return "GPIO"
}

// Probe detects the Game Boy Player and returns it if present. In that case
// the serial port is configured and the link's interrupt handler installed
// in irq. Otherwise the cartridge's GPIO rumble is returned.
//
// Like [gbplayer.Detect], Probe must be called before setting up graphics.
// Use gbplayer directly for a custom splash screen.
func Probe(bus hw.Bus, f gbplayer.Frame, irq *hw.Interrupts) Rumbler {
	l := gbplayer.NewLink(bus)
	if p, ok := gbplayer.Detect(l, f); ok {
		l.Configure()
		l.Install(irq)
		return p
	}
	return NewGPIO(bus)
}
