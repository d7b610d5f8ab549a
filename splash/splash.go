// Package splash converts images to and from the tiled background layout that
// is shown while probing for a Game Boy Player.
//
// The layout is fixed: mode 0 with background 0 enabled, 256 color tiles in
// character block 2, the tile map in screen block 0 and a single 256 color
// palette.
package splash

import (
	"errors"
	"image"
	"image/color"

	"github.com/clktmr/gba/hw"
	"github.com/clktmr/gba/hw/video"
)

const (
	CharBlock   = 2
	ScreenBlock = 0

	TileSize  = 8 * 8 // bytes per tile at 8 bits per pixel
	MaxTiles  = 0x4000 / TileSize
	MaxColors = 256
	MapWidth  = 32 // tile map entries per row
)

var (
	TilesAddr   = video.CharBlock(CharBlock)
	MapAddr     = video.ScreenBlock(ScreenBlock)
	PaletteAddr = video.PaletteAddr

	DisplayControl = video.Mode0 | video.EnableBG0
	BGControl      = video.CharBase(CharBlock) | video.Colors256 | video.ScreenBase(ScreenBlock)
)

var (
	ErrSize          = errors.New("splash: image exceeds screen size")
	ErrTooManyTiles  = errors.New("splash: too many unique tiles")
	ErrTooManyColors = errors.New("splash: too many colors")
)

// Image holds a splash screen in the console's memory layout, ready to be
// copied to video memory.
type Image struct {
	Tiles   []byte // 8 bits per pixel, row major, TileSize bytes per tile
	Map     []byte // little endian tile map entries, MapWidth per row
	Palette []byte // little endian BGR555 colors
}

// Upload copies the image to video memory. It doesn't touch the display
// registers.
func (img *Image) Upload(bus hw.Bus) {
	bus.WriteIO(TilesAddr, img.Tiles)
	bus.WriteIO(MapAddr, img.Map)
	bus.WriteIO(PaletteAddr, img.Palette)
}

// FromPaletted converts src, which must fit on the screen. Identical tiles are
// stored only once. Tile 0 is always blank, i.e. filled with color 0, which
// is also used for the area outside of src.
func FromPaletted(src *image.Paletted) (*Image, error) {
	r := src.Bounds()
	if r.Dx() > video.Width || r.Dy() > video.Height {
		return nil, ErrSize
	}
	if len(src.Palette) > MaxColors {
		return nil, ErrTooManyColors
	}

	img := &Image{
		Palette: make([]byte, 0, 2*len(src.Palette)),
	}
	for _, c := range src.Palette {
		v := bgr555(c)
		img.Palette = append(img.Palette, byte(v), byte(v>>8))
	}

	cols := (r.Dx() + 7) / 8
	rows := (r.Dy() + 7) / 8
	img.Map = make([]byte, 2*MapWidth*rows)

	var blank [TileSize]byte
	index := map[[TileSize]byte]uint16{blank: 0}
	img.Tiles = append(img.Tiles, blank[:]...)

	for ty := range rows {
		for tx := range cols {
			var tile [TileSize]byte
			for y := range 8 {
				for x := range 8 {
					p := image.Pt(r.Min.X+tx*8+x, r.Min.Y+ty*8+y)
					if p.In(r) {
						tile[y*8+x] = src.ColorIndexAt(p.X, p.Y)
					}
				}
			}

			n, ok := index[tile]
			if !ok {
				if len(index) == MaxTiles {
					return nil, ErrTooManyTiles
				}
				n = uint16(len(index))
				index[tile] = n
				img.Tiles = append(img.Tiles, tile[:]...)
			}

			off := 2 * (ty*MapWidth + tx)
			img.Map[off] = byte(n)
			img.Map[off+1] = byte(n >> 8)
		}
	}

	return img, nil
}

// Render returns the visible screen area as it will appear on the console.
func (img *Image) Render() *image.Paletted {
	palette := make(color.Palette, len(img.Palette)/2)
	for i := range palette {
		palette[i] = rgb(uint16(img.Palette[2*i]) | uint16(img.Palette[2*i+1])<<8)
	}
	if len(palette) == 0 {
		palette = append(palette, color.RGBA{A: 0xff})
	}

	dst := image.NewPaletted(image.Rect(0, 0, video.Width, video.Height), palette)
	rows := min(len(img.Map)/(2*MapWidth), video.Height/8)
	for ty := range rows {
		for tx := range video.Width / 8 {
			off := 2 * (ty*MapWidth + tx)
			n := int(uint16(img.Map[off])|uint16(img.Map[off+1])<<8) & 0x3ff
			if (n+1)*TileSize > len(img.Tiles) {
				continue
			}
			tile := img.Tiles[n*TileSize : (n+1)*TileSize]
			for y := range 8 {
				copy(dst.Pix[dst.PixOffset(tx*8, ty*8+y):], tile[y*8:y*8+8])
			}
		}
	}
	return dst
}

func bgr555(c color.Color) uint16 {
	r, g, b, _ := c.RGBA()
	return uint16(r>>11) | uint16(g>>11)<<5 | uint16(b>>11)<<10
}

func rgb(c uint16) color.RGBA {
	expand := func(v uint16) uint8 {
		v &= 0x1f
		return uint8(v<<3 | v>>2)
	}
	return color.RGBA{expand(c), expand(c >> 5), expand(c >> 10), 0xff}
}
