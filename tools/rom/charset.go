package rom

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const (
	rcd = '�' // decoding replacement character
	rce = '?' // encoding replacement character
)

func valid(c rune) bool {
	return c >= ' ' && c <= '_'
}

type charset struct{}

// HeaderText is the character set of the cartridge header: printable ASCII
// up to '_', i.e. without lower case letters. Zero bytes are padding and
// decode to nothing.
var HeaderText encoding.Encoding = &charset{}

func (m *charset) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &decoder{}}
}

func (m *charset) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &encoder{}}
}

type decoder struct{}

func (d *decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for _, c := range src {
		r := rune(c)
		switch {
		case c == 0:
			nSrc++
			continue
		case !valid(r):
			r = rcd
		}
		if utf8.RuneLen(r) > len(dst)-nDst {
			err = transform.ErrShortDst
			return
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc++
	}
	return
}

func (d *decoder) Reset() {}

type encoder struct{}

func (e *encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			err = transform.ErrShortSrc
			return
		}
		if nDst >= len(dst) {
			err = transform.ErrShortDst
			return
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		if !valid(r) {
			r = rce
		}
		dst[nDst] = byte(r)
		nDst++
		nSrc += size
	}
	return
}

func (e *encoder) Reset() {}
