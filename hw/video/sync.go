package video

import (
	"github.com/clktmr/gba/hw"
)

// Sync provides frame synchronization on a bus. It polls the current scanline
// and doesn't rely on interrupts.
type Sync struct {
	bus hw.Bus
}

func NewSync(bus hw.Bus) *Sync {
	return &Sync{bus}
}

// WaitVBlank blocks until the next vertical blank starts. If called during a
// vertical blank, it waits for the following one.
func (s *Sync) WaitVBlank() {
	for s.bus.Load16(VCOUNT) >= vblankLine {
		// wait
	}
	for s.bus.Load16(VCOUNT) < vblankLine {
		// wait
	}
}

var zeros [0x400]byte

// ResetVRAM clears palette RAM and VRAM, which is what the BIOS does in
// RegisterRamReset with flags 0x0c.
func (s *Sync) ResetVRAM() {
	s.bus.WriteIO(PaletteAddr, zeros[:PaletteSize])
	for off := 0; off < VRAMSize; off += len(zeros) {
		s.bus.WriteIO(VRAMAddr+hw.Addr(off), zeros[:])
	}
}
