package splash

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/clktmr/gba/hw/video"
)

const previewScale = 3

type previewWindow struct {
	src image.Image
	img *ebiten.Image
}

func (p *previewWindow) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (p *previewWindow) Draw(screen *ebiten.Image) {
	if p.img == nil {
		p.img = ebiten.NewImageFromImage(p.src)
	}
	screen.DrawImage(p.img, nil)
}

func (p *previewWindow) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return video.Width, video.Height
}

// showPreview shows img at the console's resolution until the window is
// closed or escape is pressed.
func showPreview(img image.Image) error {
	ebiten.SetWindowTitle("splash preview")
	ebiten.SetWindowSize(video.Width*previewScale, video.Height*previewScale)
	return ebiten.RunGame(&previewWindow{src: img})
}
