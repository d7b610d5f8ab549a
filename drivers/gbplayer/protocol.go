package gbplayer

import (
	"fmt"

	"github.com/clktmr/gba/debug"
)

// State is the position of the host in the link protocol. The step index is
// part of the value, so only the eight valid states exist.
type State uint32

const (
	Handshake0 State = iota
	Handshake1
	Handshake2
	Handshake3
	Magic1
	Magic2
	Magic3
	SendData // serving the rumble command on every poll
)

// Handshake returns the state that expects the i-th handshake key, with i in
// [0, 3].
func Handshake(i int) State {
	debug.Assert(i >= 0 && i <= 3, "gbplayer: handshake index out of range")
	return Handshake0 + State(i)
}

// Magic returns the state that expects the i-th magic value exchange, with i
// in [1, 3].
func Magic(i int) State {
	debug.Assert(i >= 1 && i <= 3, "gbplayer: magic index out of range")
	return Magic1 + State(i-1)
}

func (s State) String() string {
	switch {
	case s <= Handshake3:
		return fmt.Sprintf("Handshake(%d)", s-Handshake0)
	case s <= Magic3:
		return fmt.Sprintf("Magic(%d)", s-Magic1+1)
	case s == SendData:
		return "SendData"
	}
	return fmt.Sprintf("State(%d)", uint32(s))
}

// Command is the word served to the accessory while in [SendData].
type Command uint32

const (
	Stop     Command = 0x4000_0004
	HardStop Command = 0x4000_0015
	Start    Command = 0x4000_0026
)

func (c Command) String() string {
	switch c {
	case Stop:
		return "Stop"
	case HardStop:
		return "HardStop"
	case Start:
		return "Start"
	}
	return fmt.Sprintf("Command(0x%08x)", uint32(c))
}

var (
	handshakeKeys = [4]uint16{0x494e, 0x544e, 0x4e45, 0x4f44}
	magicValues   = [4]uint32{0xb0bb_8002, 0x1000_0010, 0x2000_0013, 0x4000_0004}
)

const (
	magicStart  uint32 = 0x8000_b0bb // reply to the last handshake key
	pollRequest uint32 = 0x3000_0003 // sent by the accessory in SendData
)

// HandshakeKey returns the i-th handshake key, with i in [0, 3].
func HandshakeKey(i int) uint16 { return handshakeKeys[i] }

// MagicValue returns the i-th magic value, with i in [0, 3].
func MagicValue(i int) uint32 { return magicValues[i] }

// Step computes the transition for the word in received while in state s.
// If ok is true, reply must be sent with the next transfer. Otherwise nothing
// must be sent and next is always [Handshake0].
//
// During the handshake each side echoes the complement of the key it received
// in one half of the word, while putting its next key into the other half.
// Any unexpected word restarts the whole sequence.
//
//go:nosplit
func Step(s State, in uint32, cmd Command) (next State, reply uint32, ok bool) {
	switch {
	case s <= Handshake3:
		key := handshakeKeys[s-Handshake0]
		if uint16(in) != key {
			return Handshake0, 0, false
		}
		if uint16(in>>16) != ^key {
			return s, uint32(^key) | uint32(key)<<16, true
		}
		if s == Handshake3 {
			return Magic1, magicStart, true
		}
		return s + 1, in>>16 | uint32(handshakeKeys[s+1-Handshake0])<<16, true

	case s <= Magic3:
		i := s - Magic1 + 1
		if in != magicValues[i-1] {
			return Handshake0, 0, false
		}
		return s + 1, magicValues[i], true // Magic3 + 1 is SendData

	case s == SendData:
		if in != pollRequest {
			return Handshake0, 0, false
		}
		return SendData, uint32(cmd), true
	}

	return Handshake0, 0, false
}
