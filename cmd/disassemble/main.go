// disassemble loads a flat binary image and prints a disassembly listing
// of it to stdout, starting at a given program counter.
package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"sort"

	"gopkg.in/urfave/cli.v2"

	"github.com/anvilrun/m65c02/disassembler"
	"github.com/anvilrun/m65c02/memory"
)

func main() {
	app := &cli.App{
		Name:    "disassemble",
		Usage:   "disassemble a flat 65C02 binary image",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "start-pc",
				Aliases: []string{"s"},
				Usage:   "address to start disassembling from",
				Value:   0x0000,
			},
			&cli.IntFlag{
				Name:    "offset",
				Aliases: []string{"o"},
				Usage:   "address to load the file's contents at",
				Value:   0x0000,
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				cli.ShowAppHelp(c)
				return cli.Exit("expected exactly one input file", 86)
			}
			return run(c.Args().First(), uint16(c.Int("start-pc")), uint16(c.Int("offset")))
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(filename string, startPC, offset uint16) error {
	b, err := ioutil.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("can't open %s: %w", filename, err)
	}

	bus := memory.NewFlat()
	bus.Load(offset, b)

	pc := startPC
	cnt := 0
	for cnt < len(b) {
		line, n := disassembler.Step(pc, bus)
		fmt.Println(line)
		pc += uint16(n)
		cnt += n
	}
	return nil
}
