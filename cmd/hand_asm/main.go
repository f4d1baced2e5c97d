// hand_asm assembles a small hand-written listing into a flat binary
// image. Each non-blank, non-comment line has the form:
//
//	XXXX OP A1 A2 ...
//
// where XXXX is the hex address the bytes belong at (informational --
// lines must appear in ascending address order) and OP/A1/A2/... are hex
// opcode and operand bytes. Lines starting with ';' are comments.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

var offset = flag.Int("offset", 0x0000, "offset to start writing assembled data; everything prior is zero filled")

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		log.Fatalf("Invalid command: %s <input> <output>", os.Args[0])
	}
	in, out := flag.Arg(0), flag.Arg(1)

	f, err := os.Open(in)
	if err != nil {
		log.Fatalf("can't open %q for input: %v", in, err)
	}
	defer f.Close()

	output, err := assemble(f, *offset)
	if err != nil {
		log.Fatalf("%v", err)
	}

	of, err := os.Create(out)
	if err != nil {
		log.Fatalf("can't open output %q: %v", out, err)
	}
	defer of.Close()

	n, err := of.Write(output)
	if err != nil {
		log.Fatalf("error writing to %q: %v", out, err)
	}
	if got, want := n, len(output); got != want {
		log.Fatalf("short write to %q: got %d want %d", out, got, want)
	}
}

// assemble reads a hand-assembly listing and returns the byte image it
// produces, zero-filled from address 0 up to offset.
func assemble(r io.Reader, offset int) ([]byte, error) {
	output := make([]byte, offset)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		t := strings.TrimSpace(scanner.Text())
		if t == "" || strings.HasPrefix(t, ";") {
			continue
		}

		fields := strings.Fields(t)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected an address and at least one opcode byte, got %q", line, t)
		}

		// fields[0] is the address field; informational only, since
		// output already tracks position by append order.
		for _, tok := range fields[1:] {
			b, err := strconv.ParseUint(tok, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("line %d: can't parse byte %q: %w", line, tok, err)
			}
			output = append(output, byte(b))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return output, nil
}
