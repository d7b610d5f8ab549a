package main

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate = 44100
	buzzFreq   = 60 // Hz
	amplitude  = 0x2000
)

// Buzzer plays a low square wave while it's on.
type Buzzer struct {
	ctx    *oto.Context
	player *oto.Player
	on     atomic.Bool
	sample int
}

func NewBuzzer() (*Buzzer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	b := &Buzzer{ctx: ctx}
	b.player = ctx.NewPlayer(b)
	b.player.Play()
	return b, nil
}

// Read implements io.Reader for the audio player. It never blocks.
func (b *Buzzer) Read(p []byte) (n int, err error) {
	on := b.on.Load()
	for n = 0; n+2 <= len(p); n += 2 {
		var v int16
		if on {
			v = amplitude
			if (b.sample*2*buzzFreq/sampleRate)%2 != 0 {
				v = -amplitude
			}
		}
		binary.LittleEndian.PutUint16(p[n:], uint16(v))
		b.sample = (b.sample + 1) % sampleRate
	}
	return n, nil
}

func (b *Buzzer) Set(on bool) {
	b.on.Store(on)
}

func (b *Buzzer) Close() error {
	return b.player.Close()
}
