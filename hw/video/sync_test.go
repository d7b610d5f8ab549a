package video_test

import (
	"bytes"
	"testing"

	"github.com/clktmr/gba/hw/sim"
	"github.com/clktmr/gba/hw/video"
	gbatesting "github.com/clktmr/gba/testing"
)

func TestMain(m *testing.M) { gbatesting.TestMain(m) }

func TestWaitVBlank(t *testing.T) {
	tests := map[string]struct {
		lines []uint32
		reads int
	}{
		"visible":    {[]uint32{10, 100, 159, 160}, 4},
		"lastLine":   {[]uint32{159, 160}, 2},
		"inVBlank":   {[]uint32{160, 200, 227, 0, 159, 160}, 6},
		"lateVBlank": {[]uint32{227, 0, 160}, 3},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			bus := sim.New()
			reads := 0
			bus.OnLoad(video.VCOUNT, func() uint32 {
				v := tc.lines[min(reads, len(tc.lines)-1)]
				reads++
				return v
			})

			video.NewSync(bus).WaitVBlank()

			if reads != tc.reads {
				t.Errorf("returned after %d reads of VCOUNT, want %d", reads, tc.reads)
			}
		})
	}
}

func TestResetVRAM(t *testing.T) {
	bus := sim.New()
	bus.WriteIO(video.PaletteAddr, bytes.Repeat([]byte{0xaa}, video.PaletteSize))
	bus.WriteIO(video.VRAMAddr, bytes.Repeat([]byte{0x55}, video.VRAMSize))

	video.NewSync(bus).ResetVRAM()

	if got := bus.Peek(video.PaletteAddr, video.PaletteSize); !bytes.Equal(got, make([]byte, video.PaletteSize)) {
		t.Error("palette not cleared")
	}
	if got := bus.Peek(video.VRAMAddr, video.VRAMSize); !bytes.Equal(got, make([]byte, video.VRAMSize)) {
		t.Error("vram not cleared")
	}
}

func TestBlocks(t *testing.T) {
	if got := video.CharBlock(2); got != 0x0600_8000 {
		t.Errorf("char block 2 at 0x%08x", uint32(got))
	}
	if got := video.ScreenBlock(31); got != 0x0600_f800 {
		t.Errorf("screen block 31 at 0x%08x", uint32(got))
	}
	if got := video.CharBase(2) | video.Colors256 | video.ScreenBase(0); got != 0x88 {
		t.Errorf("BG0CNT 0x%04x", uint16(got))
	}
	if got := video.Mode0 | video.EnableBG0; got != 0x100 {
		t.Errorf("DISPCNT 0x%04x", uint16(got))
	}
}
