package mgba_test

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/clktmr/gba/drivers/mgba"
	"github.com/clktmr/gba/hw/sim"
)

const (
	regString = 0x04ff_f600
	regFlags  = 0x04ff_f700
	regEnable = 0x04ff_f780
)

type message struct {
	text  string
	flags uint32
}

// emulator returns a bus with the debug registers present and records sent
// messages.
func emulator() (*sim.Bus, *[]message) {
	bus := sim.New()
	msgs := new([]message)
	bus.OnLoad(regEnable, func() uint32 { return 0x1dea })
	bus.OnStore(regFlags, func(old, v uint32) uint32 {
		s := bus.Peek(regString, 0x100)
		if n := bytes.IndexByte(s, 0); n >= 0 {
			s = s[:n]
		}
		*msgs = append(*msgs, message{string(s), v})
		return v
	})
	return bus, msgs
}

func TestProbe(t *testing.T) {
	if l := mgba.Probe(sim.New(), mgba.Info); l != nil {
		t.Error("detected on hardware without debug registers")
	}

	bus, _ := emulator()
	if mgba.Probe(bus, mgba.Info) == nil {
		t.Error("not detected")
	}
	if got := bus.StoresTo(regEnable); !slices.Equal(got, []uint32{0xc0de}) {
		t.Errorf("enable stores %x", got)
	}
}

func TestWrite(t *testing.T) {
	long := strings.Repeat("x", 300)

	tests := map[string]struct {
		writes []string
		want   []string
	}{
		"line":    {[]string{"hello\n"}, []string{"hello"}},
		"split":   {[]string{"hel", "lo\nwor", "ld\n"}, []string{"hello", "world"}},
		"pending": {[]string{"hello\nworld"}, []string{"hello"}},
		"empty":   {[]string{"\n\n"}, nil},
		"long":    {[]string{long + "\n"}, []string{long[:255], long[255:]}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			bus, msgs := emulator()
			l := mgba.Probe(bus, mgba.Warn)
			for _, w := range tc.writes {
				n, err := l.Write([]byte(w))
				if n != len(w) || err != nil {
					t.Fatalf("wrote %d, %v", n, err)
				}
			}

			var got []string
			for _, m := range *msgs {
				got = append(got, m.text)
				if m.flags != 0x102 {
					t.Errorf("flags 0x%x", m.flags)
				}
			}
			if !slices.Equal(got, tc.want) {
				t.Errorf("sent %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFlush(t *testing.T) {
	bus, msgs := emulator()
	l := mgba.Probe(bus, mgba.Debug)

	fmt.Fprint(l, "no newline")
	l.Flush()
	l.Flush()

	if len(*msgs) != 1 || (*msgs)[0] != (message{"no newline", 0x104}) {
		t.Errorf("sent %v", *msgs)
	}
}
