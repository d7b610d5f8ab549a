//go:build gba

package testing

import (
	"embedded/rtos"
	"os"
	"syscall"
	"testing"

	"github.com/clktmr/gba/drivers"
	"github.com/clktmr/gba/drivers/mgba"
	"github.com/clktmr/gba/hw"
	"github.com/clktmr/gba/hw/keypad"

	"github.com/embeddedgo/fs/termfs"
)

// TestMain redirects stdout and stderr to the emulator's log and runs the
// tests. Tests that need a Game Boy Player are skipped unless START is held
// during boot.
func TestMain(m *testing.M) {
	var err error

	logger := mgba.Probe(hw.Hardware, mgba.Info)
	if logger == nil {
		panic("no logging peripheral found")
	}
	rtos.SetSystemWriter(drivers.NewSystemWriter(logger))

	fs := termfs.NewLight("termfs", nil, logger)
	rtos.Mount(fs, "/dev/console")
	os.Stdout, err = os.OpenFile("/dev/console", syscall.O_WRONLY, 0)
	if err != nil {
		panic(err)
	}
	os.Stderr = os.Stdout

	os.Args = append(os.Args, "-test.v")

	print("Hold START to run Game Boy Player tests.. ")
	if keypad.Read(hw.Hardware)&keypad.Start == 0 {
		os.Args = append(os.Args, "-test.short")
		println("skipping")
	} else {
		println("ok")
	}

	code := m.Run()
	logger.Flush()
	os.Exit(code)
}
