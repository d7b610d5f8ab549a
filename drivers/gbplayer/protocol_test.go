package gbplayer_test

import (
	"math/rand/v2"
	"testing"

	"github.com/clktmr/gba/drivers/gbplayer"
	gbatesting "github.com/clktmr/gba/testing"
)

func TestMain(m *testing.M) { gbatesting.TestMain(m) }

func TestStep(t *testing.T) {
	type result struct {
		next  gbplayer.State
		reply uint32
		ok    bool
	}
	tests := map[string]struct {
		state gbplayer.State
		in    uint32
		cmd   gbplayer.Command
		want  result
	}{
		"handshake0":      {gbplayer.Handshake0, 0xb6b1_494e, gbplayer.Stop, result{gbplayer.Handshake1, 0x544e_b6b1, true}},
		"handshake1":      {gbplayer.Handshake1, 0xabb1_544e, gbplayer.Stop, result{gbplayer.Handshake2, 0x4e45_abb1, true}},
		"handshake2":      {gbplayer.Handshake2, 0xb1ba_4e45, gbplayer.Stop, result{gbplayer.Handshake3, 0x4f44_b1ba, true}},
		"handshake3":      {gbplayer.Handshake3, 0xb0bb_4f44, gbplayer.Stop, result{gbplayer.Magic1, 0x8000_b0bb, true}},
		"complement0":     {gbplayer.Handshake0, 0x0000_494e, gbplayer.Stop, result{gbplayer.Handshake0, 0x494e_b6b1, true}},
		"complement2":     {gbplayer.Handshake2, 0x1234_4e45, gbplayer.Start, result{gbplayer.Handshake2, 0x4e45_b1ba, true}},
		"wrongKey":        {gbplayer.Handshake1, 0xb6b1_494e, gbplayer.Stop, result{gbplayer.Handshake0, 0, false}},
		"zero":            {gbplayer.Handshake0, 0, gbplayer.Stop, result{gbplayer.Handshake0, 0, false}},
		"magic1":          {gbplayer.Magic1, 0xb0bb_8002, gbplayer.Stop, result{gbplayer.Magic2, 0x1000_0010, true}},
		"magic2":          {gbplayer.Magic2, 0x1000_0010, gbplayer.Stop, result{gbplayer.Magic3, 0x2000_0013, true}},
		"magic3":          {gbplayer.Magic3, 0x2000_0013, gbplayer.Start, result{gbplayer.SendData, 0x4000_0004, true}},
		"wrongMagic":      {gbplayer.Magic2, 0xb0bb_8002, gbplayer.Stop, result{gbplayer.Handshake0, 0, false}},
		"keyInMagic":      {gbplayer.Magic1, 0xb6b1_494e, gbplayer.Stop, result{gbplayer.Handshake0, 0, false}},
		"pollStop":        {gbplayer.SendData, 0x3000_0003, gbplayer.Stop, result{gbplayer.SendData, 0x4000_0004, true}},
		"pollStart":       {gbplayer.SendData, 0x3000_0003, gbplayer.Start, result{gbplayer.SendData, 0x4000_0026, true}},
		"pollHardStop":    {gbplayer.SendData, 0x3000_0003, gbplayer.HardStop, result{gbplayer.SendData, 0x4000_0015, true}},
		"wrongPoll":       {gbplayer.SendData, 0x3000_0004, gbplayer.Start, result{gbplayer.Handshake0, 0, false}},
		"handshakeInPoll": {gbplayer.SendData, 0xb6b1_494e, gbplayer.Start, result{gbplayer.Handshake0, 0, false}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			next, reply, ok := gbplayer.Step(tc.state, tc.in, tc.cmd)
			if got := (result{next, reply, ok}); got != tc.want {
				t.Errorf("Step(%v, 0x%08x) = %v, 0x%08x, %v; want %v, 0x%08x, %v",
					tc.state, tc.in, got.next, got.reply, got.ok,
					tc.want.next, tc.want.reply, tc.want.ok)
			}
		})
	}
}

func TestStepRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 10000 {
		s := gbplayer.State(rng.IntN(int(gbplayer.SendData) + 1))
		in := rng.Uint32()
		next, reply, ok := gbplayer.Step(s, in, gbplayer.Start)
		if !ok && (next != gbplayer.Handshake0 || reply != 0) {
			t.Fatalf("Step(%v, 0x%08x) failed into %v", s, in, next)
		}
		if ok && next != s && next != s+1 {
			t.Fatalf("Step(%v, 0x%08x) skipped to %v", s, in, next)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := map[gbplayer.State]string{
		gbplayer.Handshake0:  "Handshake(0)",
		gbplayer.Handshake(3): "Handshake(3)",
		gbplayer.Magic1:      "Magic(1)",
		gbplayer.Magic(3):    "Magic(3)",
		gbplayer.SendData:    "SendData",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestCommandString(t *testing.T) {
	tests := map[gbplayer.Command]string{
		gbplayer.Stop:     "Stop",
		gbplayer.HardStop: "HardStop",
		gbplayer.Start:    "Start",
		0x3000_0003:       "Command(0x30000003)",
	}
	for c, want := range tests {
		if got := c.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
