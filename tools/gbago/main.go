package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/clktmr/gba/tools/rom"
	"github.com/clktmr/gba/tools/splash"
)

const usageString = `gbago is a tool for development of Game Boy Advance ROMs.

Usage:

	%s <command> [arguments]

The commands are:

	rom      convert elf to GBA ROMs and run them
	splash   convert images to splash screens
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "rom":
		rom.Main(flag.Args())
	case "splash":
		splash.Main(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
