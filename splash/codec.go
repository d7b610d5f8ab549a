package splash

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/sigurn/crc8"
)

var (
	ErrFormat   = errors.New("splash: invalid format")
	ErrChecksum = errors.New("splash: checksum mismatch")
)

const (
	magic   = "GSPL"
	version = 1
)

type header struct {
	Magic   [4]byte
	Version uint8
	_       uint8
	Tiles   uint16 // length in bytes
	Map     uint16
	Palette uint16
}

var table = crc8.MakeTable(crc8.Params{0x07, 0x00, false, false, 0x00, 0xF4, "CRC-8"})

func checksum(parts ...[]byte) uint8 {
	csum := crc8.Init(table)
	for _, p := range parts {
		csum = crc8.Update(csum, p, table)
	}
	return crc8.Complete(csum, table)
}

// Encode writes img as a splash file: a fixed header, the tiles, map and
// palette and a CRC-8 of those three.
func (img *Image) Encode(w io.Writer) error {
	if err := img.validate(); err != nil {
		return err
	}

	h := header{
		Version: version,
		Tiles:   uint16(len(img.Tiles)),
		Map:     uint16(len(img.Map)),
		Palette: uint16(len(img.Palette)),
	}
	copy(h.Magic[:], magic)

	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return err
	}
	for _, p := range [][]byte{img.Tiles, img.Map, img.Palette} {
		if _, err := w.Write(p); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte{checksum(img.Tiles, img.Map, img.Palette)})
	return err
}

// Decode reads a splash file written by [Image.Encode].
func Decode(r io.Reader) (*Image, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if string(h.Magic[:]) != magic || h.Version != version {
		return nil, ErrFormat
	}

	img := &Image{
		Tiles:   make([]byte, h.Tiles),
		Map:     make([]byte, h.Map),
		Palette: make([]byte, h.Palette),
	}
	if err := img.validate(); err != nil {
		return nil, err
	}

	var csum [1]byte
	for _, p := range [][]byte{img.Tiles, img.Map, img.Palette, csum[:]} {
		if _, err := io.ReadFull(r, p); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFormat, err)
		}
	}
	if checksum(img.Tiles, img.Map, img.Palette) != csum[0] {
		return nil, ErrChecksum
	}

	return img, nil
}

// Load decodes a splash file from memory, e.g. one included with go:embed.
func Load(data []byte) (*Image, error) {
	return Decode(bytes.NewReader(data))
}

func (img *Image) validate() error {
	switch {
	case len(img.Tiles)%TileSize != 0:
		return fmt.Errorf("%w: partial tile", ErrFormat)
	case len(img.Tiles) > MaxTiles*TileSize:
		return ErrTooManyTiles
	case len(img.Map)%(2*MapWidth) != 0 || len(img.Map) > 2*MapWidth*MapWidth:
		return fmt.Errorf("%w: map size %d", ErrFormat, len(img.Map))
	case len(img.Palette)%2 != 0:
		return fmt.Errorf("%w: palette size %d", ErrFormat, len(img.Palette))
	case len(img.Palette) > 2*MaxColors:
		return ErrTooManyColors
	}
	return nil
}
