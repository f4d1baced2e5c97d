// Package disassembler turns bytes sitting on a memory.Bus into
// human-readable instruction listings, using the same decode tables the
// cpu package's sequencer consumes.
package disassembler

import (
	"fmt"

	"github.com/anvilrun/m65c02/cpu"
	"github.com/anvilrun/m65c02/memory"
)

// operandBytes reports how many operand bytes follow the opcode for mode,
// independent of cycle count. This mirrors the grouping cpu/addressing.go
// already uses for address computation, not a second hand-maintained
// table: zero-page and immediate/relative forms take one byte, absolute
// and indirect forms take two, and no-operand forms take zero.
func operandBytes(mode cpu.AddrMode) int {
	switch mode {
	case cpu.ModeImplied, cpu.ModeAccumulator, cpu.ModeStackPush, cpu.ModeStackPull,
		cpu.ModeSubroutineReturn, cpu.ModeInterruptReturn:
		return 0
	case cpu.ModeImmediate, cpu.ModePcRelative,
		cpu.ModeZeroPage, cpu.ModeZeroPageXIndexed, cpu.ModeZeroPageYIndexed,
		cpu.ModeZeroPageRMW, cpu.ModeZeroPageXIndexedRMW,
		cpu.ModeZeroPageIndirect, cpu.ModeZeroPageIndirectYIndexed,
		cpu.ModeZeroPageXIndexedIndirect:
		return 1
	case cpu.ModeAbsolute, cpu.ModeAbsoluteRMW,
		cpu.ModeAbsoluteXIndexed, cpu.ModeAbsoluteXIndexedRMW, cpu.ModeAbsoluteYIndexed,
		cpu.ModeAbsoluteIndirect, cpu.ModeAbsoluteXIndexedIndirect,
		cpu.ModeSubroutineJump:
		return 2
	case cpu.ModeInterruptSetup:
		// BRK's signature byte: not a real operand, but the sequencer
		// advances PC past it like one.
		return 1
	default:
		return 0
	}
}

// format renders one decoded instruction as "ADDR  MNEMONIC OPERANDS",
// operands printed big-endian as a reader would type them (high byte
// first for two-byte operands), regardless of the little-endian layout
// in memory.
func format(pc uint16, mnemonic string, mode cpu.AddrMode, operands []uint8) string {
	switch len(operands) {
	case 0:
		return fmt.Sprintf("%04X  %s", pc, mnemonic)
	case 1:
		if mode == cpu.ModePcRelative {
			target := pc + 2 + uint16(int8(operands[0]))
			return fmt.Sprintf("%04X  %s $%04X", pc, mnemonic, target)
		}
		return fmt.Sprintf("%04X  %s $%02X", pc, mnemonic, operands[0])
	case 2:
		addr := uint16(operands[0]) | uint16(operands[1])<<8
		return fmt.Sprintf("%04X  %s $%04X", pc, mnemonic, addr)
	default:
		return fmt.Sprintf("%04X  %s", pc, mnemonic)
	}
}

// Step decodes the instruction at pc and returns its formatted line plus
// the number of bytes it occupies in memory (opcode plus operands), so a
// caller can advance pc for the next call. An undecodable opcode still
// returns a one-byte step so a caller can make forward progress through a
// data blob embedded in the image; the returned line says so explicitly.
func Step(pc uint16, bus memory.Bus) (string, int) {
	opcode := bus.ReadByte(pc)
	mnemonic, mode, _, ok := cpu.Lookup(opcode)
	if !ok {
		return fmt.Sprintf("%04X  .byte $%02X", pc, opcode), 1
	}

	n := operandBytes(mode)
	operands := make([]uint8, n)
	for i := 0; i < n; i++ {
		operands[i] = bus.ReadByte(pc + 1 + uint16(i))
	}
	return format(pc, mnemonic, mode, operands), 1 + n
}
