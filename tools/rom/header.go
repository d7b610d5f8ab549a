package rom

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ErrHeader = errors.New("rom: invalid header")

// Cartridge header layout. The Nintendo logo at 0x04 is left to the program's
// startup code.
const (
	HeaderSize = 0xc0

	offTitle      = 0xa0
	offGameCode   = 0xac
	offMaker      = 0xb0
	offFixed      = 0xb2
	offVersion    = 0xbc
	offComplement = 0xbd

	fixedValue = 0x96
)

// Header holds the fields of the cartridge header that identify the game.
type Header struct {
	Title    string // up to 12 characters
	GameCode string // 4 characters, e.g. "AGBE"
	Maker    string // 2 characters
	Version  uint8
}

// Write fills the header fields into the first [HeaderSize] bytes of rom and
// updates the complement check. The ROM must start with an ARM branch over
// the header.
func (h *Header) Write(rom []byte) error {
	if len(rom) < HeaderSize {
		return fmt.Errorf("%w: rom too small", ErrHeader)
	}
	if rom[3] != 0xea {
		return fmt.Errorf("%w: entry point doesn't branch over header", ErrHeader)
	}

	for _, f := range []struct {
		off, n int
		s      string
	}{
		{offTitle, 12, h.Title},
		{offGameCode, 4, h.GameCode},
		{offMaker, 2, h.Maker},
	} {
		text, err := EncodeText(f.s, f.n)
		if err != nil {
			return err
		}
		copy(rom[f.off:f.off+f.n], text)
	}

	rom[offFixed] = fixedValue
	rom[offVersion] = h.Version
	rom[offComplement] = Complement(rom)
	return nil
}

// Complement returns the header check byte the BIOS verifies before booting.
func Complement(rom []byte) byte {
	var sum byte
	for _, b := range rom[offTitle:offComplement] {
		sum += b
	}
	return -(sum + 0x19)
}

// EncodeText converts s to the character set of the header's text fields and
// pads it with zeros to n bytes. Longer strings are truncated. Accents are
// dropped and letters are converted to upper case.
func EncodeText(s string, n int) ([]byte, error) {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		cases.Upper(language.Und),
		HeaderText.NewEncoder(),
	)
	text, _, err := transform.Bytes(t, []byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHeader, err)
	}
	buf := make([]byte, n)
	copy(buf, text)
	return buf, nil
}
