// Package video controls the LCD: display and background configuration,
// frame synchronization and video memory.
package video

import (
	"github.com/clktmr/gba/hw"
)

const (
	DISPCNT  hw.Addr = 0x0400_0000
	DISPSTAT hw.Addr = 0x0400_0004
	VCOUNT   hw.Addr = 0x0400_0006
	BG0CNT   hw.Addr = 0x0400_0008
)

// Video memory regions
const (
	PaletteAddr hw.Addr = 0x0500_0000
	PaletteSize         = 0x400
	VRAMAddr    hw.Addr = 0x0600_0000
	VRAMSize            = 0x1_8000
)

const (
	Width  = 240
	Height = 160

	vblankLine = Height // first line of the vertical blank
)

type DisplayControl uint16

const (
	Mode0 DisplayControl = iota // four tiled backgrounds
	Mode1
	Mode2
	Mode3 // 240x160 bitmap, 15 bit color
	Mode4
	Mode5
)

const (
	ForcedBlank DisplayControl = 1 << (iota + 7)
	EnableBG0
	EnableBG1
	EnableBG2
	EnableBG3
	EnableOBJ
)

type BGControl uint16

const (
	Colors256 BGControl = 1 << 7 // 8 bits per pixel, single 256 color palette
)

// CharBase selects the 16 KiB block the background's tiles are read from.
func CharBase(block int) BGControl { return BGControl(block&0x3) << 2 }

// ScreenBase selects the 2 KiB block the background's tile map is read from.
func ScreenBase(block int) BGControl { return BGControl(block&0x1f) << 8 }

// CharBlock returns the address of a 16 KiB tile block.
func CharBlock(block int) hw.Addr { return VRAMAddr + hw.Addr(block)*0x4000 }

// ScreenBlock returns the address of a 2 KiB tile map block.
func ScreenBlock(block int) hw.Addr { return VRAMAddr + hw.Addr(block)*0x800 }
