package splash

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/clktmr/gba/hw/video"
)

var caption = [...]string{
	"GAME BOY PLAYER",
	"checking for rumble",
}

var defaultImage = sync.OnceValue(func() *Image {
	src := image.NewPaletted(image.Rect(0, 0, video.Width, video.Height), color.Palette{
		color.RGBA{0xff, 0xff, 0xff, 0xff},
		color.RGBA{0x21, 0x21, 0x84, 0xff},
	})

	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  src,
		Src:  image.NewUniform(src.Palette[1]),
		Face: face,
	}
	lineHeight := face.Metrics().Height
	y := fixed.I(video.Height/2) - lineHeight*fixed.Int26_6(len(caption)-1)/2
	for _, line := range caption {
		d.Dot = fixed.Point26_6{
			X: (fixed.I(video.Width) - d.MeasureString(line)) / 2,
			Y: y,
		}
		d.DrawString(line)
		y += lineHeight
	}

	img, err := FromPaletted(src)
	if err != nil {
		panic(err)
	}
	return img
})

// Default returns the built-in splash: two lines of text on a white
// background. It's generated on first use.
func Default() *Image {
	return defaultImage()
}
