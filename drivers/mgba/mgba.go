// Package mgba writes to the debug log of the mGBA emulator.
package mgba

import (
	"github.com/clktmr/gba/hw"
)

const (
	regString hw.Addr = 0x04ff_f600
	regFlags  hw.Addr = 0x04ff_f700
	regEnable hw.Addr = 0x04ff_f780
)

const (
	enableRequest  = 0xc0de
	enableResponse = 0x1dea

	flagSend = 0x100
)

type Level uint16

const (
	Fatal Level = iota
	Error
	Warn
	Info
	Debug
)

// Logger is an io.Writer that sends each line as a separate log message.
type Logger struct {
	bus   hw.Bus
	level Level
	buf   [0x100]byte
	n     int
}

// Probe returns a Logger if running in mGBA, nil otherwise.
func Probe(bus hw.Bus, level Level) *Logger {
	bus.Store16(regEnable, enableRequest)
	if bus.Load16(regEnable) != enableResponse {
		return nil
	}
	return &Logger{bus: bus, level: level}
}

// Write buffers p until a newline or until the emulator's string buffer is
// full, whichever comes first. Newlines aren't sent.
func (l *Logger) Write(p []byte) (n int, err error) {
	for _, c := range p {
		if c == '\n' {
			l.Flush()
			continue
		}
		l.buf[l.n] = c
		l.n++
		if l.n == len(l.buf)-1 {
			l.Flush()
		}
	}
	return len(p), nil
}

// Flush sends any buffered data as a log message.
func (l *Logger) Flush() {
	if l.n == 0 {
		return
	}
	l.buf[l.n] = 0
	l.bus.WriteIO(regString, l.buf[:l.n+1])
	l.bus.Store16(regFlags, uint16(l.level)|flagSend)
	l.n = 0
}
