// tui launches an interactive single-step debugger over a flat binary
// image, reset through the standard 65C02 reset vector.
package main

import (
	"flag"
	"io/ioutil"
	"log"
	"os"

	"github.com/anvilrun/m65c02/cpu"
	"github.com/anvilrun/m65c02/memory"
	"github.com/anvilrun/m65c02/tui"
)

var offset = flag.Int("offset", 0x8000, "address to load the program at; also written into the reset vector")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("Invalid command: %s [-offset <addr>] <filename>", os.Args[0])
	}

	b, err := ioutil.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("can't open %q: %v", flag.Arg(0), err)
	}

	bus := memory.NewFlat()
	bus.Load(uint16(*offset), b)
	bus.WriteWord(cpu.ResetVector, uint16(*offset))

	chip := cpu.New()
	chip.Reset(bus)

	if err := tui.Run(chip, bus); err != nil {
		log.Fatalf("debugger exited with error: %v", err)
	}
}
