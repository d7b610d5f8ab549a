package rom

import (
	"bytes"
	"errors"
	"testing"

	"golang.org/x/text/transform"
)

func TestComplement(t *testing.T) {
	rom := make([]byte, HeaderSize)
	rom[offFixed] = fixedValue
	if got := Complement(rom); got != 0x51 {
		t.Errorf("got 0x%02x, want 0x51", got)
	}
}

func TestEncodeText(t *testing.T) {
	tests := map[string]struct {
		in   string
		n    int
		want []byte
	}{
		"plain":    {"RUMBLE", 12, []byte("RUMBLE\x00\x00\x00\x00\x00\x00")},
		"lower":    {"rumble test", 12, []byte("RUMBLE TEST\x00")},
		"accents":  {"Démo Ärger", 12, []byte("DEMO ARGER\x00\x00")},
		"truncate": {"game boy player", 12, []byte("GAME BOY PLA")},
		"replace":  {"日本~", 4, []byte("???\x00")},
		"code":     {"agbe", 4, []byte("AGBE")},
		"empty":    {"", 2, []byte{0, 0}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := EncodeText(tc.in, tc.n)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestHeaderTextDecode(t *testing.T) {
	got, _, err := transform.Bytes(HeaderText.NewDecoder(), []byte("RUMBLE\x7f\x00\x00"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "RUMBLE�" {
		t.Errorf("got %q", got)
	}
}

func TestHeaderWrite(t *testing.T) {
	rom := make([]byte, HeaderSize)
	rom[0], rom[1], rom[2], rom[3] = 0x2e, 0x00, 0x00, 0xea
	for i := offTitle; i < HeaderSize; i++ {
		rom[i] = 0xff
	}

	h := Header{Title: "Rumble", GameCode: "ZRBE", Maker: "01", Version: 2}
	if err := h.Write(rom); err != nil {
		t.Fatal(err)
	}

	if got := rom[offTitle : offTitle+12]; !bytes.Equal(got, []byte("RUMBLE\x00\x00\x00\x00\x00\x00")) {
		t.Errorf("title %q", got)
	}
	if got := string(rom[offGameCode : offGameCode+4]); got != "ZRBE" {
		t.Errorf("game code %q", got)
	}
	if got := string(rom[offMaker : offMaker+2]); got != "01" {
		t.Errorf("maker %q", got)
	}
	if rom[offFixed] != 0x96 || rom[offVersion] != 2 {
		t.Errorf("fixed 0x%02x, version %d", rom[offFixed], rom[offVersion])
	}

	var sum byte
	for _, b := range rom[offTitle : offComplement+1] {
		sum += b
	}
	if sum+0x19 != 0 {
		t.Errorf("complement check fails: 0x%02x", sum)
	}
}

func TestHeaderErrors(t *testing.T) {
	tests := map[string][]byte{
		"short":    make([]byte, HeaderSize-1),
		"noBranch": make([]byte, HeaderSize),
	}
	for name, rom := range tests {
		t.Run(name, func(t *testing.T) {
			var h Header
			if err := h.Write(rom); !errors.Is(err, ErrHeader) {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestResult(t *testing.T) {
	tests := map[string]struct {
		line string
		code int
		ok   bool
	}{
		"pass":    {"[INFO] GBA Debug: PASS", 0, true},
		"fail":    {"[INFO] GBA Debug:\tFAIL", 1, true},
		"panic":   {"[INFO] GBA Debug: panic: runtime error", 1, true},
		"fatal":   {"fatal error: out of memory", 1, true},
		"running": {"[INFO] GBA Debug: === RUN   TestSync", 0, false},
		"passing": {"--- PASS: TestSync (0.01s)", 0, false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			code, ok := testResult(stripLogPrefix(tc.line))
			if code != tc.code || ok != tc.ok {
				t.Errorf("got %d, %v", code, ok)
			}
		})
	}
}
