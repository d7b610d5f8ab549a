//go:build gba

package hw

import (
	"embedded/mmio"
	"unsafe"
)

// Hardware accesses the memory mapped registers of the console.
var Hardware Bus = hardware{}

type hardware struct{}

func u16(addr Addr) *mmio.U16 { return (*mmio.U16)(unsafe.Pointer(uintptr(addr))) }
func u32(addr Addr) *mmio.U32 { return (*mmio.U32)(unsafe.Pointer(uintptr(addr))) }

//go:nosplit
func (hardware) Load16(addr Addr) uint16 { return u16(addr).Load() }

//go:nosplit
func (hardware) Store16(addr Addr, v uint16) { u16(addr).Store(v) }

//go:nosplit
func (hardware) Load32(addr Addr) uint32 { return u32(addr).Load() }

//go:nosplit
func (hardware) Store32(addr Addr, v uint32) { u32(addr).Store(v) }

// WriteIO expects addr to be halfword aligned. An odd trailing byte is merged
// with the current content of the last halfword.
//
//go:nosplit
func (hardware) WriteIO(addr Addr, p []byte) {
	if addr&0x1 != 0 {
		panic("unaligned io write")
	}
	for len(p) >= 2 {
		u16(addr).Store(uint16(p[0]) | uint16(p[1])<<8)
		addr += 2
		p = p[2:]
	}
	if len(p) == 1 {
		r := u16(addr)
		r.Store(r.Load()&0xff00 | uint16(p[0]))
	}
}
