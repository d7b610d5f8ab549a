package hw

import (
	"sync/atomic"
)

// IntrCell passes a word sized value between a goroutine and an interrupt
// handler. Only a single writer is allowed, which is either the interrupt
// handler or one goroutine. Loads and stores are single word accesses, so no
// lock is needed and neither side can deadlock the other.
type IntrCell[T ~uint32] struct {
	v atomic.Uint32
}

//go:nosplit
func (p *IntrCell[T]) Load() T {
	return T(p.v.Load())
}

//go:nosplit
func (p *IntrCell[T]) Store(v T) {
	p.v.Store(uint32(v))
}
