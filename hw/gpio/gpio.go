// Package gpio accesses the general purpose I/O port some cartridges map
// into ROM space, e.g. for a rumble motor, real-time clock or sensors.
package gpio

import (
	"github.com/clktmr/gba/hw"
)

const (
	Data      hw.Addr = 0x0800_00c4
	Direction hw.Addr = 0x0800_00c6 // set bits are outputs
	Control   hw.Addr = 0x0800_00c8
)

type Pin uint16

const (
	Pin0 Pin = 1 << iota
	Pin1
	Pin2
	Pin3
)

// Rumble is the pin the motor is connected to on rumble cartridges.
const Rumble = Pin3

// Enable makes the port readable. Writes work regardless.
func Enable(bus hw.Bus) {
	bus.Store16(Control, 1)
}

// SetOutputs configures the pins in out as outputs and all others as inputs.
func SetOutputs(bus hw.Bus, out Pin) {
	bus.Store16(Direction, uint16(out))
}

// Write sets the output pins to the levels in p.
func Write(bus hw.Bus, p Pin) {
	bus.Store16(Data, uint16(p))
}
