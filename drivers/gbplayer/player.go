package gbplayer

import (
	"github.com/clktmr/gba/hw/keypad"
	"github.com/clktmr/gba/hw/sio"
	"github.com/clktmr/gba/hw/video"
	"github.com/clktmr/gba/splash"
)

// Number of frames KEYINPUT is sampled during detection.
const detectFrames = 125

// Frame is the frame synchronization used by [Detect].
type Frame interface {
	// WaitVBlank blocks until the next vertical blank.
	WaitVBlank()
	// ResetVRAM clears video memory.
	ResetVRAM()
}

// Player is proof that a Game Boy Player was detected. It can only be
// obtained from [Detect].
type Player struct {
	link *Link
}

// Detect shows a splash screen and watches the keypad for the Game Boy
// Player's signature for 125 frames. It returns a [Player] if the signature
// was seen at least once.
//
// Detect takes over the display and video memory while it runs. The display
// registers are restored and video memory is cleared afterwards, so it must
// be called before setting up any graphics and before relying on interrupts.
func Detect(l *Link, f Frame) (p *Player, ok bool) {
	dispcnt := l.bus.Load16(video.DISPCNT)
	bg0cnt := l.bus.Load16(video.BG0CNT)
	defer func() {
		l.bus.Store16(video.DISPCNT, dispcnt)
		l.bus.Store16(video.BG0CNT, bg0cnt)
		f.ResetVRAM()
	}()

	img := l.Splash
	if img == nil {
		img = splash.Default()
	}
	l.bus.Store16(video.DISPCNT, uint16(splash.DisplayControl))
	l.bus.Store16(video.BG0CNT, uint16(splash.BGControl))
	img.Upload(l.bus)

	// The accessory holds the signature steadily, so keep sampling the
	// whole window even after it was seen.
	for range detectFrames {
		f.WaitVBlank()
		if keypad.Raw(l.bus) == keypad.Unlocked {
			p, ok = &Player{l}, true
		}
	}

	return
}

func (p *Player) Start() {
	p.link.command.Store(Start)
}

func (p *Player) Stop() {
	p.link.command.Store(Stop)
}

// HardStop stops the motor immediately instead of letting it spin down.
func (p *Player) HardStop() {
	p.link.command.Store(HardStop)
}

// Update restarts the serial transfer. The accessory clocks the transfers,
// so the port must be armed again every frame or the link stalls.
func (p *Player) Update() {
	sio.Arm(p.link.bus)
}

func (p *Player) String() string {
	return "GameBoyPlayer"
}
