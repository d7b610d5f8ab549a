// Package drivers holds the peripheral drivers built on top of package hw.
package drivers

import "io"

// SystemWriter receives the output of print, println and panic, see
// rtos.SetSystemWriter. The file descriptor is ignored.
type SystemWriter func(fd int, p []byte) int

// NewSystemWriter returns a SystemWriter writing to w. Errors are dropped,
// there's nobody left to report them to.
func NewSystemWriter(w io.Writer) SystemWriter {
	return func(fd int, p []byte) int {
		n, _ := w.Write(p)
		return n
	}
}
