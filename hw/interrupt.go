package hw

// Interrupt sources, in the bit order of the IE and IF registers.
type InterruptFlag uint16

const (
	IntrVBlank InterruptFlag = 1 << iota
	IntrHBlank
	IntrVCount
	IntrTimer0
	IntrTimer1
	IntrTimer2
	IntrTimer3
	IntrSerial // serial transfer complete
	IntrDMA0
	IntrDMA1
	IntrDMA2
	IntrDMA3
	IntrKeypad
	IntrGamePak // cartridge removed

	IntrLast
)

const (
	regIE  Addr = 0x0400_0200
	regIF  Addr = 0x0400_0202 // write 1 to acknowledge
	regIME Addr = 0x0400_0208

	// Checked by the BIOS in IntrWait and VBlankIntrWait.
	biosIntrCheck Addr = 0x0300_7ff8
)

// Interrupts dispatches the single interrupt line of the CPU to a handler per
// interrupt source. Handlers run in interrupt context: they must not block and
// are never preempted by the main loop.
type Interrupts struct {
	bus      Bus
	handlers [14]func()
}

func NewInterrupts(bus Bus) *Interrupts {
	return &Interrupts{bus: bus}
}

// SetHandler registers handler for the interrupt source flag. Interrupts are
// masked while the table is modified.
func (p *Interrupts) SetHandler(flag InterruptFlag, handler func()) {
	ime := p.bus.Load16(regIME)
	p.bus.Store16(regIME, 0)

	irq := 0
	for f := InterruptFlag(1); f != IntrLast; f = f << 1 {
		if f&flag != 0 {
			p.handlers[irq] = handler
			break
		}
		irq += 1
	}

	p.bus.Store16(regIME, ime)
}

func (p *Interrupts) Handler(flag InterruptFlag) func() {
	irq := 0
	for f := InterruptFlag(1); f != IntrLast; f = f << 1 {
		if f&flag != 0 {
			return p.handlers[irq]
		}
		irq += 1
	}
	return nil
}

func (p *Interrupts) Enable(mask InterruptFlag) {
	p.bus.Store16(regIE, p.bus.Load16(regIE)|uint16(mask))
}

func (p *Interrupts) Disable(mask InterruptFlag) {
	p.bus.Store16(regIE, p.bus.Load16(regIE)&^uint16(mask))
}

// SetMaster sets the master enable. Without it no interrupt reaches the CPU,
// regardless of the sources enabled with [Interrupts.Enable].
func (p *Interrupts) SetMaster(enabled bool) {
	var ime uint16
	if enabled {
		ime = 1
	}
	p.bus.Store16(regIME, ime)
}

// Handle acknowledges all pending and enabled interrupts and calls their
// handlers. It's meant to be called from the IRQ vector.
//
//go:nosplit
func (p *Interrupts) Handle() {
	pending := p.bus.Load16(regIF) & p.bus.Load16(regIE)
	p.bus.Store16(regIF, pending)
	p.bus.Store16(biosIntrCheck, p.bus.Load16(biosIntrCheck)|pending)

	irq := 0
	for flag := InterruptFlag(1); flag != IntrLast; flag = flag << 1 {
		if InterruptFlag(pending)&flag != 0 {
			handler := p.handlers[irq]
			if handler == nil {
				panic("unhandled interrupt")
			}
			handler()
		}
		irq += 1
	}
}
