// Copyright 2024 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rom

import (
	"bufio"
	"debug/elf"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
)

const usageString = `ELF to GBA ROM converter.

Usage: %s [flags] <elffile>

`

var (
	flags = flag.NewFlagSet("rom", flag.ExitOnError)

	infile   string
	title    = flags.String("title", "", "Game title, defaults to the file name")
	gameCode = flags.String("code", "", "Four character game code")
	maker    = flags.String("maker", "", "Two character maker code")
	version  = flags.Uint("version", 0, "Software version")
	run      = flags.String("run", "", "Run the ROM with command")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "rom")
	flags.PrintDefaults()
}

func objcopy(dst io.WriterAt, src *elf.File) error {
	for _, s := range src.Sections {
		if s.Type != elf.SHT_PROGBITS || s.Flags&elf.SHF_ALLOC == 0 {
			continue
		}
		data, err := s.Data()
		if err != nil {
			return err
		}

		if s.Addr < src.Entry {
			return errors.New("data before entry point")
		}

		_, err = dst.WriteAt(data, int64(s.Addr-src.Entry))
		if err != nil {
			return err
		}
	}

	return nil
}

func writeHeader(rom io.ReaderAt, dst io.WriterAt, h *Header) error {
	buf := make([]byte, HeaderSize)
	if _, err := rom.ReadAt(buf, 0); err != nil {
		return fmt.Errorf("%w: %w", ErrHeader, err)
	}
	if err := h.Write(buf); err != nil {
		return err
	}
	_, err := dst.WriteAt(buf, 0)
	return err
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		infile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}

	outfile, _ := strings.CutSuffix(infile, ".elf")
	outfile += ".gba"

	if *title == "" {
		*title = filepath.Base(strings.TrimSuffix(outfile, ".gba"))
	}

	elffile, err := elf.Open(infile)
	if err != nil {
		log.Fatalln(err)
	}
	defer elffile.Close()

	rom, err := os.Create(outfile)
	if err != nil {
		log.Fatalln(err)
	}
	defer rom.Close()

	err = objcopy(rom, elffile)
	if err != nil {
		log.Fatalln("objcopy:", err)
	}

	err = writeHeader(rom, rom, &Header{
		Title:    *title,
		GameCode: *gameCode,
		Maker:    *maker,
		Version:  uint8(*version),
	})
	if err != nil {
		log.Fatalln("write rom header:", err)
	}

	if *run != "" {
		rom.Close()
		runROM(*run, outfile)
	}
}

func runROM(cmdpath, rompath string) {
	args, err := shellquote.Split(cmdpath)
	if err != nil {
		log.Fatal("run:", err)
	}
	args = append(args, rompath)
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr
	newGroup(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		log.Fatal("open stdout:", err)
	}

	sigintr := make(chan os.Signal, 1)
	signal.Notify(sigintr, os.Interrupt)

	err = cmd.Start()
	if err != nil {
		log.Fatal("start command:", err)
	}

	stop := func() {
		stdout.Close()
		if err := interruptGroup(cmd); err != nil {
			log.Println(err)
		}
	}
	go func() {
		<-sigintr
		stop()
	}()

	code := 0
	exiting := false
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := scanner.Text()
		log.Println(line)
		if exiting {
			continue
		}
		if result, ok := testResult(stripLogPrefix(line)); ok {
			code = result
			exiting = true
			// give panic() time to print the stacktrace
			time.AfterFunc(500*time.Millisecond, stop)
		}
	}
	cmd.Wait()
	os.Exit(code)
}

// stripLogPrefix removes the prefix mGBA puts in front of each message
// logged through its debug registers.
func stripLogPrefix(line string) string {
	if _, msg, ok := strings.Cut(line, "GBA Debug:"); ok {
		return strings.TrimSpace(msg)
	}
	return line
}

// testResult reports whether line ends a test run and with which exit code.
func testResult(line string) (code int, ok bool) {
	switch {
	case strings.HasPrefix(line, "fatal error:"), strings.HasPrefix(line, "panic:"):
		return 1, true
	case line == "FAIL":
		return 1, true
	case line == "PASS":
		return 0, true
	}
	return 0, false
}
