package splash

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/clktmr/gba/hw/video"
	"github.com/clktmr/gba/splash"
	"github.com/ericpauley/go-quantize/quantize"
	xdraw "golang.org/x/image/draw"
)

var (
	flags = flag.NewFlagSet("splash", flag.ExitOnError)

	colors  = flags.Int("colors", splash.MaxColors, "number of colors in the palette")
	dither  = flags.Bool("dither", false, "enable Floyd-Steinberg error diffusion")
	fit     = flags.Bool("fit", false, "scale the image to the screen size")
	preview = flags.Bool("preview", false, "show the result in a window")

	imagefile string
)

const usageString = `Image to GBA splash screen converter.

Usage: %s [flags] <image>

`

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "splash")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		imagefile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}
	if *colors < 1 || *colors > splash.MaxColors {
		log.Fatalf("colors must be in [1, %d]", splash.MaxColors)
	}

	r, err := os.Open(imagefile)
	if err != nil {
		log.Fatalln(err)
	}
	defer r.Close()

	src, _, err := image.Decode(r)
	if err != nil {
		log.Fatalln(err)
	}

	img, err := convert(src, *colors, *dither, *fit)
	if err != nil {
		log.Fatalln(err)
	}

	outfile := strings.TrimSuffix(imagefile, filepath.Ext(imagefile))
	outfile += ".splash"
	w, err := os.Create(outfile)
	if err != nil {
		log.Fatalln(err)
	}
	defer w.Close()

	err = img.Encode(w)
	if err != nil {
		log.Fatalln(err)
	}

	log.Printf("%s: %d tiles, %d colors", outfile, len(img.Tiles)/splash.TileSize, len(img.Palette)/2)

	if *preview {
		if err := showPreview(img.Render()); err != nil {
			log.Fatalln(err)
		}
	}
}

// convert reduces src to a paletted image with at most n colors and converts
// it to the tiled layout. If fit is set, or src doesn't fit on the screen, it
// is scaled to the screen size first, keeping its aspect ratio.
func convert(src image.Image, n int, dither, fit bool) (*splash.Image, error) {
	if b := src.Bounds(); fit || b.Dx() > video.Width || b.Dy() > video.Height {
		src = scale(src)
	}

	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, n), src)

	dst := image.NewPaletted(src.Bounds().Sub(src.Bounds().Min), p)

	var d draw.Drawer = draw.Src
	if dither {
		d = draw.FloydSteinberg
	}
	d.Draw(dst, dst.Bounds(), src, src.Bounds().Min)

	return splash.FromPaletted(dst)
}

func scale(src image.Image) image.Image {
	b := src.Bounds()
	w, h := video.Width, b.Dy()*video.Width/b.Dx()
	if h > video.Height {
		w, h = b.Dx()*video.Height/b.Dy(), video.Height
	}
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
