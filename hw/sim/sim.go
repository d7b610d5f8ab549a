// Package sim models the GBA memory map in RAM, so drivers can be tested on a
// host without an emulator.
//
// Only the regions the drivers in this module touch are mapped. Any access
// outside of them panics, which catches typos in register addresses early.
package sim

import (
	"encoding/binary"
	"fmt"

	"github.com/clktmr/gba/hw"
)

type region struct {
	base hw.Addr
	mem  []byte
}

var layout = [...]struct {
	base hw.Addr
	size int
}{
	{0x0300_0000, 0x8000},  // IWRAM
	{0x0400_0000, 0x400},   // IO registers
	{0x04ff_f600, 0x200},   // mGBA debug registers
	{0x0500_0000, 0x400},   // palette RAM
	{0x0600_0000, 0x18000}, // VRAM
	{0x0800_00c4, 0x6},     // cartridge GPIO
}

// Access is a single store recorded by the Bus.
type Access struct {
	Addr  hw.Addr
	Value uint32
	Size  int // in bytes
}

// Bus implements [hw.Bus] on RAM. Loads and stores can be intercepted per
// address to model registers with side effects.
type Bus struct {
	regions []region
	loads   map[hw.Addr]func() uint32
	stores  map[hw.Addr]func(old, v uint32) uint32

	// Stores logs every Store16 and Store32 in order. WriteIO isn't
	// logged.
	Stores []Access
}

// KEYINPUT is active low, so a released keypad reads all ones.
const keyinput hw.Addr = 0x0400_0130

func New() *Bus {
	b := &Bus{
		loads:  make(map[hw.Addr]func() uint32),
		stores: make(map[hw.Addr]func(old, v uint32) uint32),
	}
	for _, l := range layout {
		b.regions = append(b.regions, region{l.base, make([]byte, l.size)})
	}
	binary.LittleEndian.PutUint16(b.slice(keyinput, 2), 0x03ff)
	return b
}

// OnLoad makes loads from addr return fn's result instead of the stored
// value.
func (b *Bus) OnLoad(addr hw.Addr, fn func() uint32) {
	b.loads[addr] = fn
}

// OnStore makes stores to addr keep fn's result instead of v. The old value
// is the one currently in memory.
func (b *Bus) OnStore(addr hw.Addr, fn func(old, v uint32) uint32) {
	b.stores[addr] = fn
}

func (b *Bus) slice(addr hw.Addr, n int) []byte {
	for _, r := range b.regions {
		if addr >= r.base && int(addr-r.base)+n <= len(r.mem) {
			off := int(addr - r.base)
			return r.mem[off : off+n]
		}
	}
	panic(fmt.Sprintf("sim: unmapped address 0x%08x (%d bytes)", uint32(addr), n))
}

func (b *Bus) Load16(addr hw.Addr) uint16 {
	if fn := b.loads[addr]; fn != nil {
		return uint16(fn())
	}
	return binary.LittleEndian.Uint16(b.slice(addr, 2))
}

func (b *Bus) Load32(addr hw.Addr) uint32 {
	if fn := b.loads[addr]; fn != nil {
		return fn()
	}
	return binary.LittleEndian.Uint32(b.slice(addr, 4))
}

func (b *Bus) Store16(addr hw.Addr, v uint16) {
	b.Stores = append(b.Stores, Access{addr, uint32(v), 2})
	mem := b.slice(addr, 2)
	if fn := b.stores[addr]; fn != nil {
		v = uint16(fn(uint32(binary.LittleEndian.Uint16(mem)), uint32(v)))
	}
	binary.LittleEndian.PutUint16(mem, v)
}

func (b *Bus) Store32(addr hw.Addr, v uint32) {
	b.Stores = append(b.Stores, Access{addr, v, 4})
	mem := b.slice(addr, 4)
	if fn := b.stores[addr]; fn != nil {
		v = fn(binary.LittleEndian.Uint32(mem), v)
	}
	binary.LittleEndian.PutUint32(mem, v)
}

func (b *Bus) WriteIO(addr hw.Addr, p []byte) {
	if addr&0x1 != 0 {
		panic("unaligned io write")
	}
	copy(b.slice(addr, len(p)), p)
}

// Peek returns a copy of n bytes at addr without triggering any hooks.
func (b *Bus) Peek(addr hw.Addr, n int) []byte {
	return append([]byte(nil), b.slice(addr, n)...)
}

// Poke16 sets the halfword at addr without triggering any hooks or logging.
func (b *Bus) Poke16(addr hw.Addr, v uint16) {
	binary.LittleEndian.PutUint16(b.slice(addr, 2), v)
}

func (b *Bus) Poke32(addr hw.Addr, v uint32) {
	binary.LittleEndian.PutUint32(b.slice(addr, 4), v)
}

// StoresTo returns the values stored to addr in order.
func (b *Bus) StoresTo(addr hw.Addr) (values []uint32) {
	for _, s := range b.Stores {
		if s.Addr == addr {
			values = append(values, s.Value)
		}
	}
	return
}
