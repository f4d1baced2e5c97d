package cpu

import "github.com/anvilrun/m65c02/memory"

// instrFunc runs one sub-cycle (tcu) of an instruction's execution phase.
// It reports whether the instruction has committed its final effect this
// tick.
type instrFunc func(c *Chip, bus memory.Bus, tcu uint8) (bool, error)

func fetchOperandByte(c *Chip, bus memory.Bus) uint8 {
	v := bus.ReadByte(c.PC)
	c.PC++
	return v
}

// addrTicks reports how many sub-cycles a mode needs purely to compute its
// effective address, before the instruction-specific operate tick(s).
// Modes not listed here (Implied, Immediate, Accumulator, PcRelative, the
// stack and subroutine/interrupt modes, the two indirect JMP modes) are
// handled by their own dedicated instrFuncs rather than through this table.
func addrTicks(mode AddrMode) uint8 {
	switch mode {
	case ModeZeroPage, ModeZeroPageRMW:
		return 1
	case ModeZeroPageXIndexed, ModeZeroPageYIndexed, ModeZeroPageXIndexedRMW:
		return 2
	case ModeZeroPageIndirect, ModeZeroPageIndirectYIndexed:
		return 3
	case ModeZeroPageXIndexedIndirect:
		return 4
	case ModeAbsolute, ModeAbsoluteRMW, ModeAbsoluteXIndexed, ModeAbsoluteYIndexed, ModeAbsoluteXIndexedRMW:
		return 2
	default:
		return 0
	}
}

// computeAddr runs one address-computation sub-cycle for tcu in
// [1, addrTicks(c.mode)]. Zero-page arithmetic wraps at 256, matching the
// zero page never leaving its own page regardless of index value.
func computeAddr(c *Chip, bus memory.Bus, tcu uint8) {
	switch c.mode {
	case ModeZeroPage, ModeZeroPageRMW:
		c.ADDR = uint16(fetchOperandByte(c, bus))

	case ModeZeroPageXIndexed, ModeZeroPageXIndexedRMW:
		switch tcu {
		case 1:
			c.ADDR = uint16(fetchOperandByte(c, bus))
		case 2:
			c.ADDR = uint16(uint8(c.ADDR) + c.X)
		}

	case ModeZeroPageYIndexed:
		switch tcu {
		case 1:
			c.ADDR = uint16(fetchOperandByte(c, bus))
		case 2:
			c.ADDR = uint16(uint8(c.ADDR) + c.Y)
		}

	case ModeZeroPageIndirect:
		switch tcu {
		case 1:
			c.ADDR = uint16(fetchOperandByte(c, bus))
		case 2:
			c.ALU = bus.ReadByte(c.ADDR)
		case 3:
			hi := bus.ReadByte(uint16(uint8(c.ADDR) + 1))
			c.ADDR = uint16(c.ALU) | uint16(hi)<<8
		}

	case ModeZeroPageIndirectYIndexed:
		switch tcu {
		case 1:
			c.ADDR = uint16(fetchOperandByte(c, bus))
		case 2:
			c.ALU = bus.ReadByte(c.ADDR)
		case 3:
			hi := bus.ReadByte(uint16(uint8(c.ADDR) + 1))
			c.ADDR = (uint16(c.ALU) | uint16(hi)<<8) + uint16(c.Y)
		}

	case ModeZeroPageXIndexedIndirect:
		switch tcu {
		case 1:
			c.ADDR = uint16(fetchOperandByte(c, bus))
		case 2:
			c.ADDR = uint16(uint8(c.ADDR) + c.X)
		case 3:
			c.ALU = bus.ReadByte(c.ADDR)
		case 4:
			hi := bus.ReadByte(uint16(uint8(c.ADDR) + 1))
			c.ADDR = uint16(c.ALU) | uint16(hi)<<8
		}

	case ModeAbsolute, ModeAbsoluteRMW:
		switch tcu {
		case 1:
			c.ALU = fetchOperandByte(c, bus)
		case 2:
			hi := fetchOperandByte(c, bus)
			c.ADDR = uint16(c.ALU) | uint16(hi)<<8
		}

	case ModeAbsoluteXIndexed, ModeAbsoluteXIndexedRMW:
		switch tcu {
		case 1:
			c.ALU = fetchOperandByte(c, bus)
		case 2:
			hi := fetchOperandByte(c, bus)
			c.ADDR = (uint16(c.ALU) | uint16(hi)<<8) + uint16(c.X)
		}

	case ModeAbsoluteYIndexed:
		switch tcu {
		case 1:
			c.ALU = fetchOperandByte(c, bus)
		case 2:
			hi := fetchOperandByte(c, bus)
			c.ADDR = (uint16(c.ALU) | uint16(hi)<<8) + uint16(c.Y)
		}
	}
}

// loadInstruction builds an instrFunc that resolves its operand across
// whatever mode the opcode was decoded with, then hands the loaded byte to
// apply. Covers Immediate directly; every other supported mode goes through
// the shared address-computation table.
func loadInstruction(apply func(c *Chip, value uint8)) instrFunc {
	return func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) {
		if c.mode == ModeImmediate {
			apply(c, fetchOperandByte(c, bus))
			return true, nil
		}
		at := addrTicks(c.mode)
		if at == 0 {
			return false, invalidTick("load:"+c.mnemonic, tcu)
		}
		if tcu <= at {
			computeAddr(c, bus, tcu)
			return false, nil
		}
		apply(c, bus.ReadByte(c.ADDR))
		return true, nil
	}
}

// storeInstruction builds an instrFunc that resolves its address, then
// writes whatever source returns to it on the final tick.
func storeInstruction(source func(c *Chip) uint8) instrFunc {
	return func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) {
		at := addrTicks(c.mode)
		if at == 0 {
			return false, invalidTick("store:"+c.mnemonic, tcu)
		}
		if tcu <= at {
			computeAddr(c, bus, tcu)
			return false, nil
		}
		bus.WriteByte(c.ADDR, source(c))
		return true, nil
	}
}

// rmwInstruction builds an instrFunc for the read-modify-write family. For
// Accumulator mode it applies directly to A in a single tick. For memory
// modes it resolves the address, reads the old value, writes it back
// unchanged (the RMW dummy write every 6502-family part performs), then
// writes apply's result. The dummy write and the final write are what make
// the RMW cycle counts come out two ticks longer than a plain load from the
// same mode.
func rmwInstruction(apply func(c *Chip, value uint8) uint8) instrFunc {
	return func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) {
		if c.mode == ModeAccumulator {
			c.A = apply(c, c.A)
			return true, nil
		}
		at := addrTicks(c.mode)
		if at == 0 {
			return false, invalidTick("rmw:"+c.mnemonic, tcu)
		}
		if tcu <= at {
			computeAddr(c, bus, tcu)
			return false, nil
		}
		switch tcu - at {
		case 1:
			c.ALU = bus.ReadByte(c.ADDR)
			return false, nil
		case 2:
			bus.WriteByte(c.ADDR, c.ALU)
			return false, nil
		case 3:
			newVal := apply(c, c.ALU)
			bus.WriteByte(c.ADDR, newVal)
			return true, nil
		}
		return false, invalidTick("rmw:"+c.mnemonic, tcu)
	}
}
