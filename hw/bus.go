package hw

// Addr represents an address on the GBA's system bus.
type Addr uint32

// Bus gives access to memory mapped registers. Implementations must not
// cache, reorder or merge accesses, i.e. each call is exactly one access of
// the given width.
type Bus interface {
	Load16(addr Addr) uint16
	Store16(addr Addr, v uint16)
	Load32(addr Addr) uint32
	Store32(addr Addr, v uint32)

	// WriteIO copies p to addr. Palette RAM and VRAM don't support byte
	// writes, so implementations write halfwords.
	WriteIO(addr Addr, p []byte)
}
