//go:build gba

package hw

import (
	_ "unsafe" // for linkname
)

// Default is the dispatcher of the console's interrupt line.
var Default = NewInterrupts(Hardware)

//go:linkname irqHandler IRQ_Handler
//go:interrupthandler
func irqHandler() {
	Default.Handle()
}
