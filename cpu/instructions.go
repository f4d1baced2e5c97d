package cpu

import "github.com/anvilrun/m65c02/memory"

// instructions maps every mnemonic the decode table can produce to the
// instrFunc that executes it. Built once at init time; Tick looks a
// mnemonic up fresh on every call rather than caching the instrFunc on the
// Chip, keeping the dispatch table the single source of truth for "how".
var instructions map[string]instrFunc

func init() {
	instructions = map[string]instrFunc{
		"LDA": loadInstruction(func(c *Chip, v uint8) { c.A = v; c.zeroCheck(v); c.negativeCheck(v) }),
		"LDX": loadInstruction(func(c *Chip, v uint8) { c.X = v; c.zeroCheck(v); c.negativeCheck(v) }),
		"LDY": loadInstruction(func(c *Chip, v uint8) { c.Y = v; c.zeroCheck(v); c.negativeCheck(v) }),

		"STA": storeInstruction(func(c *Chip) uint8 { return c.A }),
		"STX": storeInstruction(func(c *Chip) uint8 { return c.X }),
		"STY": storeInstruction(func(c *Chip) uint8 { return c.Y }),
		"STZ": storeInstruction(func(c *Chip) uint8 { return 0 }),

		"ORA": loadInstruction(func(c *Chip, v uint8) { c.A |= v; c.zeroCheck(c.A); c.negativeCheck(c.A) }),
		"AND": loadInstruction(func(c *Chip, v uint8) { c.A &= v; c.zeroCheck(c.A); c.negativeCheck(c.A) }),
		"EOR": loadInstruction(func(c *Chip, v uint8) { c.A ^= v; c.zeroCheck(c.A); c.negativeCheck(c.A) }),

		"ADC": loadInstruction(adcApply),
		"SBC": loadInstruction(sbcApply),

		"CMP": loadInstruction(func(c *Chip, v uint8) { c.compare(c.A, v) }),
		"CPX": loadInstruction(func(c *Chip, v uint8) { c.compare(c.X, v) }),
		"CPY": loadInstruction(func(c *Chip, v uint8) { c.compare(c.Y, v) }),

		"BIT": loadInstruction(bitApply),

		"ASL": rmwInstruction(aslApply),
		"LSR": rmwInstruction(lsrApply),
		"ROL": rmwInstruction(rolApply),
		"ROR": rmwInstruction(rorApply),

		"INC": rmwInstruction(func(c *Chip, v uint8) uint8 {
			r := v + 1
			c.zeroCheck(r)
			c.negativeCheck(r)
			return r
		}),
		"DEC": rmwInstruction(func(c *Chip, v uint8) uint8 {
			r := v - 1
			c.zeroCheck(r)
			c.negativeCheck(r)
			return r
		}),

		"TRB": rmwInstruction(func(c *Chip, v uint8) uint8 {
			c.SetFlag(FlagZ, c.A&v == 0)
			return v &^ c.A
		}),
		"TSB": rmwInstruction(func(c *Chip, v uint8) uint8 {
			c.SetFlag(FlagZ, c.A&v == 0)
			return v | c.A
		}),

		"TAX": func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) { c.X = c.A; c.zeroCheck(c.X); c.negativeCheck(c.X); return true, nil },
		"TAY": func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) { c.Y = c.A; c.zeroCheck(c.Y); c.negativeCheck(c.Y); return true, nil },
		"TXA": func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) { c.A = c.X; c.zeroCheck(c.A); c.negativeCheck(c.A); return true, nil },
		"TYA": func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) { c.A = c.Y; c.zeroCheck(c.A); c.negativeCheck(c.A); return true, nil },
		"TSX": func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) { c.X = c.SP; c.zeroCheck(c.X); c.negativeCheck(c.X); return true, nil },
		"TXS": func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) { c.SP = c.X; return true, nil },

		"INX": func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) { c.X++; c.zeroCheck(c.X); c.negativeCheck(c.X); return true, nil },
		"INY": func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) { c.Y++; c.zeroCheck(c.Y); c.negativeCheck(c.Y); return true, nil },
		"DEX": func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) { c.X--; c.zeroCheck(c.X); c.negativeCheck(c.X); return true, nil },
		"DEY": func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) { c.Y--; c.zeroCheck(c.Y); c.negativeCheck(c.Y); return true, nil },

		"CLC": func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) { c.SetFlag(FlagC, false); return true, nil },
		"SEC": func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) { c.SetFlag(FlagC, true); return true, nil },
		"CLI": func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) { c.SetFlag(FlagI, false); return true, nil },
		"SEI": func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) { c.SetFlag(FlagI, true); return true, nil },
		"CLD": func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) { c.SetFlag(FlagD, false); return true, nil },
		"SED": func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) { c.SetFlag(FlagD, true); return true, nil },
		"CLV": func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) { c.SetFlag(FlagV, false); return true, nil },

		"NOP": func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) { return true, nil },

		"BPL": branch(func(c *Chip) bool { return !c.Flag(FlagN) }),
		"BMI": branch(func(c *Chip) bool { return c.Flag(FlagN) }),
		"BVC": branch(func(c *Chip) bool { return !c.Flag(FlagV) }),
		"BVS": branch(func(c *Chip) bool { return c.Flag(FlagV) }),
		"BCC": branch(func(c *Chip) bool { return !c.Flag(FlagC) }),
		"BCS": branch(func(c *Chip) bool { return c.Flag(FlagC) }),
		"BNE": branch(func(c *Chip) bool { return !c.Flag(FlagZ) }),
		"BEQ": branch(func(c *Chip) bool { return c.Flag(FlagZ) }),
		"BRA": branch(func(c *Chip) bool { return true }),

		"PHA": pushReg(func(c *Chip) uint8 { return c.A }),
		"PHX": pushReg(func(c *Chip) uint8 { return c.X }),
		"PHY": pushReg(func(c *Chip) uint8 { return c.Y }),
		"PHP": pushReg(func(c *Chip) uint8 { return c.PS | FlagB | flag5 }),

		"PLA": pullReg(func(c *Chip, v uint8) { c.A = v; c.zeroCheck(v); c.negativeCheck(v) }),
		"PLX": pullReg(func(c *Chip, v uint8) { c.X = v; c.zeroCheck(v); c.negativeCheck(v) }),
		"PLY": pullReg(func(c *Chip, v uint8) { c.Y = v; c.zeroCheck(v); c.negativeCheck(v) }),
		"PLP": pullReg(func(c *Chip, v uint8) { c.PS = v | flag5 }),

		"JMP": jmpInstruction,
		"JSR": jsrInstruction,
		"RTS": rtsInstruction,
		"RTI": rtiInstruction,
		"BRK": brkInstruction,
	}
}

func adcApply(c *Chip, v uint8) {
	sum := uint16(c.A) + uint16(v)
	if c.Flag(FlagC) {
		sum++
	}
	result := uint8(sum)
	c.overflowCheck(c.A, v, result)
	c.carryCheck(sum)
	c.A = result
	c.zeroCheck(c.A)
	c.negativeCheck(c.A)
}

func sbcApply(c *Chip, v uint8) {
	inv := ^v
	sum := uint16(c.A) + uint16(inv)
	if c.Flag(FlagC) {
		sum++
	}
	result := uint8(sum)
	c.overflowCheck(c.A, inv, result)
	c.carryCheck(sum)
	c.A = result
	c.zeroCheck(c.A)
	c.negativeCheck(c.A)
}

// compare implements CMP/CPX/CPY: a subtraction whose result only ever
// feeds flags, never a register.
func (c *Chip) compare(reg, v uint8) {
	result := reg - v
	c.SetFlag(FlagC, reg >= v)
	c.zeroCheck(result)
	c.negativeCheck(result)
}

// bitApply only sets Z in Immediate mode; the other addressing modes also
// copy the tested byte's bits 6 and 7 into V and N.
func bitApply(c *Chip, v uint8) {
	c.zeroCheck(c.A & v)
	if c.mode != ModeImmediate {
		c.SetFlag(FlagV, v&0x40 != 0)
		c.SetFlag(FlagN, v&0x80 != 0)
	}
}

func aslApply(c *Chip, v uint8) uint8 {
	c.SetFlag(FlagC, v&0x80 != 0)
	r := v << 1
	c.zeroCheck(r)
	c.negativeCheck(r)
	return r
}

func lsrApply(c *Chip, v uint8) uint8 {
	c.SetFlag(FlagC, v&0x01 != 0)
	r := v >> 1
	c.zeroCheck(r)
	c.negativeCheck(r)
	return r
}

func rolApply(c *Chip, v uint8) uint8 {
	var carryIn uint8
	if c.Flag(FlagC) {
		carryIn = 1
	}
	c.SetFlag(FlagC, v&0x80 != 0)
	r := (v << 1) | carryIn
	c.zeroCheck(r)
	c.negativeCheck(r)
	return r
}

func rorApply(c *Chip, v uint8) uint8 {
	var carryIn uint8
	if c.Flag(FlagC) {
		carryIn = 0x80
	}
	c.SetFlag(FlagC, v&0x01 != 0)
	r := (v >> 1) | carryIn
	c.zeroCheck(r)
	c.negativeCheck(r)
	return r
}

// branch builds a PcRelative instrFunc: read the signed offset, and if cond
// holds, add it to PC. Per the decode table PcRelative is always exactly
// 2 cycles regardless of outcome or page crossing.
func branch(cond func(c *Chip) bool) instrFunc {
	return func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) {
		offset := int8(fetchOperandByte(c, bus))
		if cond(c) {
			c.PC = uint16(int32(c.PC) + int32(offset))
		}
		return true, nil
	}
}

// pushReg builds a ModeStackPush instrFunc: one idle bus read, then the
// push itself.
func pushReg(get func(c *Chip) uint8) instrFunc {
	return func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) {
		switch tcu {
		case 1:
			bus.ReadByte(c.PC)
			return false, nil
		case 2:
			c.pushStack(bus, get(c))
			return true, nil
		}
		return false, invalidTick("push", tcu)
	}
}

// pullReg builds a ModeStackPull instrFunc: one idle bus read, one dummy
// read of the current top-of-stack byte (S unmoved), then the pull itself.
func pullReg(set func(c *Chip, v uint8)) instrFunc {
	return func(c *Chip, bus memory.Bus, tcu uint8) (bool, error) {
		switch tcu {
		case 1:
			bus.ReadByte(c.PC)
			return false, nil
		case 2:
			bus.ReadByte(0x0100 + uint16(c.SP))
			return false, nil
		case 3:
			set(c, c.pullStack(bus))
			return true, nil
		}
		return false, invalidTick("pull", tcu)
	}
}

// jmpInstruction covers all three JMP addressing modes: Absolute reuses the
// shared address-computation table; the two indirect forms read a pointer
// and then the target from memory. Both indirect reads increment the low
// byte of the pointer across the full 16 bits rather than wrapping within
// a page, the CMOS fix for the classic NMOS indirect-JMP page-wrap bug.
func jmpInstruction(c *Chip, bus memory.Bus, tcu uint8) (bool, error) {
	switch c.mode {
	case ModeAbsolute:
		at := addrTicks(c.mode)
		if tcu <= at {
			computeAddr(c, bus, tcu)
			return false, nil
		}
		c.PC = c.ADDR
		return true, nil

	case ModeAbsoluteIndirect:
		switch tcu {
		case 1:
			c.ALU = fetchOperandByte(c, bus)
		case 2:
			hi := fetchOperandByte(c, bus)
			c.ADDR = uint16(c.ALU) | uint16(hi)<<8
		case 3:
			// internal delay
		case 4:
			c.ALU = bus.ReadByte(c.ADDR)
		case 5:
			hi := bus.ReadByte(c.ADDR + 1)
			c.PC = uint16(c.ALU) | uint16(hi)<<8
			return true, nil
		default:
			return false, invalidTick("JMP", tcu)
		}
		return false, nil

	case ModeAbsoluteXIndexedIndirect:
		switch tcu {
		case 1:
			c.ALU = fetchOperandByte(c, bus)
		case 2:
			hi := fetchOperandByte(c, bus)
			c.ADDR = uint16(c.ALU) | uint16(hi)<<8
		case 3:
			c.ADDR += uint16(c.X)
		case 4:
			c.ALU = bus.ReadByte(c.ADDR)
		case 5:
			hi := bus.ReadByte(c.ADDR + 1)
			c.PC = uint16(c.ALU) | uint16(hi)<<8
			return true, nil
		default:
			return false, invalidTick("JMP", tcu)
		}
		return false, nil
	}
	return false, invalidTick("JMP", tcu)
}

// jsrInstruction pushes the address of JSR's last operand byte (what RTS
// expects to pull and increment) before jumping.
func jsrInstruction(c *Chip, bus memory.Bus, tcu uint8) (bool, error) {
	switch tcu {
	case 1:
		c.ALU = fetchOperandByte(c, bus)
	case 2:
		// internal delay
	case 3:
		c.pushStack(bus, uint8(c.PC>>8))
	case 4:
		c.pushStack(bus, uint8(c.PC&0xFF))
	case 5:
		hi := bus.ReadByte(c.PC)
		c.PC = uint16(c.ALU) | uint16(hi)<<8
		return true, nil
	default:
		return false, invalidTick("JSR", tcu)
	}
	return false, nil
}

// rtsInstruction reverses exactly the two pushes jsrInstruction made: a
// dummy read of the current top-of-stack byte (S unmoved), then the two
// real pulls.
func rtsInstruction(c *Chip, bus memory.Bus, tcu uint8) (bool, error) {
	switch tcu {
	case 1:
		bus.ReadByte(c.PC)
	case 2:
		bus.ReadByte(0x0100 + uint16(c.SP))
	case 3:
		c.ALU = c.pullStack(bus)
	case 4:
		hi := c.pullStack(bus)
		c.PC = uint16(c.ALU) | uint16(hi)<<8
	case 5:
		bus.ReadByte(c.PC)
		c.PC++
		return true, nil
	default:
		return false, invalidTick("RTS", tcu)
	}
	return false, nil
}

// rtiInstruction reverses exactly the three pushes brkInstruction made: a
// dummy read (S unmoved), then the three real pulls, P before PC.
func rtiInstruction(c *Chip, bus memory.Bus, tcu uint8) (bool, error) {
	switch tcu {
	case 1:
		bus.ReadByte(c.PC)
	case 2:
		bus.ReadByte(0x0100 + uint16(c.SP))
	case 3:
		c.PS = c.pullStack(bus) | flag5
	case 4:
		c.ALU = c.pullStack(bus)
	case 5:
		hi := c.pullStack(bus)
		c.PC = uint16(c.ALU) | uint16(hi)<<8
		return true, nil
	default:
		return false, invalidTick("RTI", tcu)
	}
	return false, nil
}

// brkInstruction implements the software interrupt: it reads and discards
// a signature byte, pushes PC and P (with B set), then loads PC from the
// IRQ/BRK vector. There is no separate NMI or external IRQ entry point in
// this chip; BRK is the only way into the vector.
func brkInstruction(c *Chip, bus memory.Bus, tcu uint8) (bool, error) {
	switch tcu {
	case 1:
		fetchOperandByte(c, bus)
	case 2:
		c.pushStack(bus, uint8(c.PC>>8))
	case 3:
		c.pushStack(bus, uint8(c.PC&0xFF))
	case 4:
		c.pushStack(bus, c.PS|FlagB|flag5)
	case 5:
		c.ALU = bus.ReadByte(IRQVector)
	case 6:
		hi := bus.ReadByte(IRQVector + 1)
		c.PC = uint16(c.ALU) | uint16(hi)<<8
		c.SetFlag(FlagI, true)
		return true, nil
	default:
		return false, invalidTick("BRK", tcu)
	}
	return false, nil
}
