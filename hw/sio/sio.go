// Package sio drives the serial port on the link connector in normal 32-bit
// mode, as used by the Game Boy Player.
package sio

import (
	"github.com/clktmr/gba/hw"
)

const (
	SIODATA32 hw.Addr = 0x0400_0120
	SIOCNT    hw.Addr = 0x0400_0128
	RCNT      hw.Addr = 0x0400_0134
)

type Control uint16

const (
	InternalClock Control = 1 << iota
	Clock2MHz
	SIState    // read-only, opponent's SO
	SOInactive // SO level while no transfer is running
	_
	_
	_
	Start // set to start a transfer, cleared by hardware when done
	_
	_
	_
	_
	Transfer32
	_
	IRQEnable
)

// Normal32 is the configuration the Game Boy Player expects. The accessory
// provides the clock.
const Normal32 = IRQEnable | Transfer32 | SOInactive

// Configure selects normal serial mode and programs SIOCNT for 32-bit
// transfers with the serial interrupt enabled.
func Configure(bus hw.Bus) {
	bus.Store16(RCNT, 0)
	bus.Store16(SIOCNT, uint16(Normal32))
}

// Arm sets the start bit, so the next transfer sends the content of
// SIODATA32.
//
//go:nosplit
func Arm(bus hw.Bus) {
	bus.Store16(SIOCNT, bus.Load16(SIOCNT)|uint16(Start))
}

func Armed(bus hw.Bus) bool {
	return Control(bus.Load16(SIOCNT))&Start != 0
}

// Data returns the word received by the last transfer.
//
//go:nosplit
func Data(bus hw.Bus) uint32 {
	return bus.Load32(SIODATA32)
}

// SetData sets the word sent by the next transfer.
//
//go:nosplit
func SetData(bus hw.Bus, v uint32) {
	bus.Store32(SIODATA32, v)
}
