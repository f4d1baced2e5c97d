// Package cpu implements a cycle-accurate emulation of a 65C02-class 8-bit
// microprocessor. Each call to Tick advances the chip by exactly one clock:
// it either fetches the next opcode or advances the current instruction's
// sub-cycle counter and runs that sub-cycle's addressing and instruction
// work. The chip owns no memory of its own; every read and write goes
// through the memory.Bus passed into Reset and Tick.
package cpu

import (
	"fmt"

	"github.com/anvilrun/m65c02/memory"
)

// Named status bit positions, per the register file definition. Bit 5 is
// reserved and always reads as 1.
const (
	FlagC uint8 = 1 << 0 // Carry
	FlagZ uint8 = 1 << 1 // Zero
	FlagI uint8 = 1 << 2 // Interrupt disable
	FlagD uint8 = 1 << 3 // Decimal (ignored by ADC/SBC; see SPEC_FULL.md)
	FlagB uint8 = 1 << 4 // Break
	flag5 uint8 = 1 << 5 // Reserved, always 1
	FlagV uint8 = 1 << 6 // Overflow
	FlagN uint8 = 1 << 7 // Negative
)

// Vectors, little-endian words read from the top of the address space.
const (
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
)

// Chip is a 65C02 register file plus the sequencer state needed to spread
// instruction execution across multiple Tick calls.
type Chip struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	PC uint16
	PS uint8

	IR   uint8
	TCU  uint8
	ALU  uint8
	ADDR uint16

	reset bool // latch: next tick performs the post-reset fetch.

	mnemonic   string
	mode       AddrMode
	cycleCount uint8

	halted    bool
	haltedErr error
}

// New returns a Chip with every register zeroed except PS, which carries
// the reserved bit, matching power-on state before Reset has run.
func New() *Chip {
	return &Chip{PS: flag5}
}

// Reset reads the 16-bit little-endian reset vector from bus into PC,
// clears I and D, sets B, sets SP to 0xFF, and arms the post-reset fetch.
// It performs this synchronously; it does not consume Ticks.
func (c *Chip) Reset(bus memory.Bus) {
	c.PC = bus.ReadWord(ResetVector)
	c.PS &^= FlagI | FlagD
	c.PS |= FlagB | flag5
	c.SP = 0xFF
	c.TCU = 0
	c.reset = true
	c.halted = false
	c.haltedErr = nil
}

// Halted reports whether an emulator invariant violation has stopped the
// chip. Once halted, Tick keeps returning the same error without advancing
// state.
func (c *Chip) Halted() (bool, error) {
	return c.halted, c.haltedErr
}

// Tick advances the chip by exactly one clock cycle. It either fetches the
// next opcode (resetting TCU to 0) or advances TCU and runs that sub-cycle's
// addressing and instruction work. An error return means an emulator
// invariant was violated (unknown opcode, missing cycle count, or an
// instruction that doesn't handle its addressing mode); the chip halts and
// every subsequent Tick returns the same error.
func (c *Chip) Tick(bus memory.Bus) error {
	if c.halted {
		return c.haltedErr
	}

	if c.reset {
		c.reset = false
		c.fetch(bus)
		return c.haltedErr
	}

	c.TCU++
	done, err := c.execute(bus, c.TCU)
	if err != nil {
		c.halt(err)
		return err
	}
	// The instruction's last sub-cycle and the next fetch share a tick:
	// a real 65C02 overlaps the opcode fetch with the previous
	// instruction's final bus cycle.
	if c.TCU == c.cycleCount-1 {
		if !done {
			c.halt(InvalidState{fmt.Sprintf("%s: opcode 0x%02X did not finish by its declared cycle count %d", c.mnemonic, c.IR, c.cycleCount)})
			return c.haltedErr
		}
		c.fetch(bus)
		return c.haltedErr
	}
	return nil
}

func (c *Chip) halt(err error) {
	c.halted = true
	c.haltedErr = err
}

// fetch reads the opcode at PC into IR, advances PC, looks up its
// addressing mode and cycle count, and resets the sub-cycle counter.
func (c *Chip) fetch(bus memory.Bus) {
	c.IR = bus.ReadByte(c.PC)
	c.PC++
	c.TCU = 0

	mnemonic, mode, cycleCount, ok := Lookup(c.IR)
	if !ok {
		c.halt(InvalidState{fmt.Sprintf("undefined opcode 0x%02X at PC 0x%04X", c.IR, c.PC-1)})
		return
	}
	c.mnemonic = mnemonic
	c.mode = mode
	c.cycleCount = cycleCount
}

// execute dispatches the current opcode's addressing-mode and instruction
// work for sub-cycle tcu. It returns true once the instruction has
// committed its final effect.
func (c *Chip) execute(bus memory.Bus, tcu uint8) (bool, error) {
	fn, ok := instructions[c.mnemonic]
	if !ok {
		return true, InvalidState{fmt.Sprintf("mnemonic %q has no instruction body", c.mnemonic)}
	}
	return fn(c, bus, tcu)
}

// StatusByte reports the packed status byte as seen across the external
// boundary: the reserved bit always reads as 1.
func (c *Chip) StatusByte() uint8 {
	return c.PS | flag5
}

// Flag reports whether the named status bit is set.
func (c *Chip) Flag(bit uint8) bool {
	return c.PS&bit != 0
}

// SetFlag sets or clears the named status bit.
func (c *Chip) SetFlag(bit uint8, v bool) {
	if v {
		c.PS |= bit
	} else {
		c.PS &^= bit
	}
}

// Mnemonic, AddrMode and CycleCount report the instruction currently being executed, for
// test and tooling introspection.
func (c *Chip) Mnemonic() string   { return c.mnemonic }
func (c *Chip) AddrMode() AddrMode { return c.mode }
func (c *Chip) CycleCount() uint8  { return c.cycleCount }

func (c *Chip) zeroCheck(v uint8) {
	c.SetFlag(FlagZ, v == 0)
}

func (c *Chip) negativeCheck(v uint8) {
	c.SetFlag(FlagN, v&0x80 != 0)
}

func (c *Chip) carryCheck(wide uint16) {
	c.SetFlag(FlagC, wide > 0xFF)
}

// overflowCheck implements the two's-complement overflow rule:
// ((A ^ R) & (M ^ R) & 0x80) != 0.
func (c *Chip) overflowCheck(a, m, r uint8) {
	c.SetFlag(FlagV, (a^r)&(m^r)&0x80 != 0)
}

func (c *Chip) pushStack(bus memory.Bus, v uint8) {
	bus.WriteByte(0x0100+uint16(c.SP), v)
	c.SP--
}

func (c *Chip) pullStack(bus memory.Bus) uint8 {
	c.SP++
	return bus.ReadByte(0x0100 + uint16(c.SP))
}
