// Package accessory implements the Game Boy Player's side of the link
// protocol. It can stand in for the real accessory, either in tests against
// [gbplayer.Link] or on a host connected to the console through a link cable
// bridge.
package accessory

import (
	"errors"

	"github.com/clktmr/gba/drivers/gbplayer"
)

// ErrNoReply is returned by an [Exchanger] if the console didn't arm a
// transfer, i.e. didn't reply.
var ErrNoReply = errors.New("accessory: no reply")

// Exchanger performs a single 32-bit transfer with the console.
type Exchanger interface {
	Exchange(out uint32) (in uint32, err error)
}

// Sequence positions. Steps 0-3 send handshake keys, 4-6 magic values and
// polling starts at step 7.
const (
	firstMagic = 4
	polling    = 7
)

const (
	magicStart  uint32 = 0x8000_b0bb
	pollRequest uint32 = 0x3000_0003
)

// Accessory tracks the protocol from the Game Boy Player's point of view.
// The zero value starts with the first handshake key.
type Accessory struct {
	step   int
	rumble gbplayer.Command

	// Restarts counts how often the sequence was restarted because of an
	// unexpected or missing reply.
	Restarts int
}

// Request returns the word to send with the next transfer.
func (a *Accessory) Request() uint32 {
	switch {
	case a.step < firstMagic:
		key := gbplayer.HandshakeKey(a.step)
		return uint32(key) | uint32(^key)<<16
	case a.step < polling:
		return gbplayer.MagicValue(a.step - firstMagic)
	}
	return pollRequest
}

func (a *Accessory) expected() uint32 {
	switch {
	case a.step < firstMagic-1:
		key := gbplayer.HandshakeKey(a.step)
		return uint32(^key) | uint32(gbplayer.HandshakeKey(a.step+1))<<16
	case a.step == firstMagic-1:
		return magicStart
	case a.step < polling:
		return gbplayer.MagicValue(a.step - firstMagic + 1)
	}
	return 0
}

// Response processes the console's reply to the last [Accessory.Request].
func (a *Accessory) Response(in uint32) {
	if a.step == polling {
		switch c := gbplayer.Command(in); c {
		case gbplayer.Stop, gbplayer.HardStop, gbplayer.Start:
			a.rumble = c
		default:
			a.restart()
		}
		return
	}

	if in != a.expected() {
		a.restart()
		return
	}
	a.step++
}

// Timeout processes a transfer without reply.
func (a *Accessory) Timeout() {
	a.restart()
}

func (a *Accessory) restart() {
	a.step = 0
	a.rumble = gbplayer.Stop
	a.Restarts++
}

// Synced reports whether handshake and magic values are done and the console
// is being polled.
func (a *Accessory) Synced() bool {
	return a.step == polling
}

// Rumble returns the last command received while polling. It's
// [gbplayer.Stop] until then and after each restart.
func (a *Accessory) Rumble() gbplayer.Command {
	if a.rumble == 0 {
		return gbplayer.Stop
	}
	return a.rumble
}

// Step runs a single transfer on x.
func (a *Accessory) Step(x Exchanger) error {
	in, err := x.Exchange(a.Request())
	if errors.Is(err, ErrNoReply) {
		a.Timeout()
		return nil
	} else if err != nil {
		return err
	}
	a.Response(in)
	return nil
}
