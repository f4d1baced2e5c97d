package cpu

// AddrMode enumerates the addressing modes of the 65C02 instruction set.
// It is a closed, build-time-fixed enumeration rather than open dispatch --
// the Decode-Tables component of the core.
type AddrMode int

const (
	ModeUnimplemented AddrMode = iota
	ModeImplied
	ModeImmediate
	ModeAccumulator
	ModePcRelative
	ModeZeroPage
	ModeZeroPageXIndexed
	ModeZeroPageYIndexed
	ModeZeroPageRMW
	ModeZeroPageXIndexedRMW
	ModeZeroPageIndirect
	ModeZeroPageIndirectYIndexed
	ModeZeroPageXIndexedIndirect
	ModeAbsolute
	ModeAbsoluteRMW
	ModeAbsoluteXIndexed
	ModeAbsoluteXIndexedRMW
	ModeAbsoluteYIndexed
	ModeAbsoluteIndirect
	ModeAbsoluteXIndexedIndirect
	ModeStackPush
	ModeStackPull
	ModeSubroutineJump
	ModeSubroutineReturn
	ModeInterruptSetup
	ModeInterruptReturn
)

// cycles holds the base cycle count (including the fetch tick) for every
// addressing mode, per the Decode-Tables component.
var cycles = map[AddrMode]uint8{
	ModeImplied:                  2,
	ModeImmediate:                2,
	ModeAccumulator:              2,
	ModePcRelative:               2,
	ModeZeroPage:                 3,
	ModeStackPush:                3,
	ModeAbsolute:                 4,
	ModeAbsoluteXIndexed:         4,
	ModeAbsoluteYIndexed:         4,
	ModeZeroPageXIndexed:         4,
	ModeZeroPageYIndexed:         4,
	ModeStackPull:                4,
	ModeZeroPageRMW:              5,
	ModeZeroPageIndirect:         5,
	ModeZeroPageIndirectYIndexed: 5,
	ModeAbsoluteRMW:              6,
	ModeAbsoluteXIndexedRMW:      6,
	ModeAbsoluteIndirect:         6,
	ModeAbsoluteXIndexedIndirect: 6,
	ModeZeroPageXIndexedRMW:      6,
	ModeZeroPageXIndexedIndirect: 6,
	ModeInterruptReturn:          6,
	ModeSubroutineJump:           6,
	ModeSubroutineReturn:         6,
	ModeInterruptSetup:           7,
}

// opcodeEntry is one row of the opcode decode table: mnemonic plus
// addressing mode. The instruction body itself is wired in instructions.go's
// instructions map rather than stored here, mirroring how the core keeps
// decode (what) separate from execution (how).
type opcodeEntry struct {
	mnemonic string
	mode     AddrMode
}

// opcodes is the 256-entry (partial) opcode -> (mnemonic, addressing mode)
// table. Entries left zero-valued are undefined opcodes; decoding one is
// an emulator invariant violation (see errors.go).
var opcodes = [256]opcodeEntry{
	0x00: {"BRK", ModeInterruptSetup},
	0x01: {"ORA", ModeZeroPageXIndexedIndirect},
	0x04: {"TSB", ModeZeroPageRMW},
	0x05: {"ORA", ModeZeroPage},
	0x06: {"ASL", ModeZeroPageRMW},
	0x08: {"PHP", ModeStackPush},
	0x09: {"ORA", ModeImmediate},
	0x0A: {"ASL", ModeAccumulator},
	0x0C: {"TSB", ModeAbsoluteRMW},
	0x0D: {"ORA", ModeAbsolute},
	0x0E: {"ASL", ModeAbsoluteRMW},
	0x10: {"BPL", ModePcRelative},
	0x11: {"ORA", ModeZeroPageIndirectYIndexed},
	0x12: {"ORA", ModeZeroPageIndirect},
	0x14: {"TRB", ModeZeroPageRMW},
	0x15: {"ORA", ModeZeroPageXIndexed},
	0x16: {"ASL", ModeZeroPageXIndexedRMW},
	0x18: {"CLC", ModeImplied},
	0x19: {"ORA", ModeAbsoluteYIndexed},
	0x1A: {"INC", ModeAccumulator},
	0x1C: {"TRB", ModeAbsoluteRMW},
	0x1D: {"ORA", ModeAbsoluteXIndexed},
	0x1E: {"ASL", ModeAbsoluteXIndexedRMW},
	0x20: {"JSR", ModeSubroutineJump},
	0x21: {"AND", ModeZeroPageXIndexedIndirect},
	0x24: {"BIT", ModeZeroPage},
	0x25: {"AND", ModeZeroPage},
	0x26: {"ROL", ModeZeroPageRMW},
	0x28: {"PLP", ModeStackPull},
	0x29: {"AND", ModeImmediate},
	0x2A: {"ROL", ModeAccumulator},
	0x2C: {"BIT", ModeAbsolute},
	0x2D: {"AND", ModeAbsolute},
	0x2E: {"ROL", ModeAbsoluteRMW},
	0x30: {"BMI", ModePcRelative},
	0x31: {"AND", ModeZeroPageIndirectYIndexed},
	0x32: {"AND", ModeZeroPageIndirect},
	0x34: {"BIT", ModeZeroPageXIndexed},
	0x35: {"AND", ModeZeroPageXIndexed},
	0x36: {"ROL", ModeZeroPageXIndexedRMW},
	0x38: {"SEC", ModeImplied},
	0x39: {"AND", ModeAbsoluteYIndexed},
	0x3A: {"DEC", ModeAccumulator},
	0x3C: {"BIT", ModeAbsoluteXIndexed},
	0x3D: {"AND", ModeAbsoluteXIndexed},
	0x3E: {"ROL", ModeAbsoluteXIndexedRMW},
	0x40: {"RTI", ModeInterruptReturn},
	0x41: {"EOR", ModeZeroPageXIndexedIndirect},
	0x45: {"EOR", ModeZeroPage},
	0x46: {"LSR", ModeZeroPageRMW},
	0x48: {"PHA", ModeStackPush},
	0x49: {"EOR", ModeImmediate},
	0x4A: {"LSR", ModeAccumulator},
	0x4C: {"JMP", ModeAbsolute},
	0x4D: {"EOR", ModeAbsolute},
	0x4E: {"LSR", ModeAbsoluteRMW},
	0x50: {"BVC", ModePcRelative},
	0x51: {"EOR", ModeZeroPageIndirectYIndexed},
	0x52: {"EOR", ModeZeroPageIndirect},
	0x55: {"EOR", ModeZeroPageXIndexed},
	0x56: {"LSR", ModeZeroPageXIndexedRMW},
	0x58: {"CLI", ModeImplied},
	0x59: {"EOR", ModeAbsoluteYIndexed},
	0x5A: {"PHY", ModeStackPush},
	0x5D: {"EOR", ModeAbsoluteXIndexed},
	0x5E: {"LSR", ModeAbsoluteXIndexedRMW},
	0x60: {"RTS", ModeSubroutineReturn},
	0x61: {"ADC", ModeZeroPageXIndexedIndirect},
	0x65: {"ADC", ModeZeroPage},
	0x66: {"ROR", ModeZeroPageRMW},
	0x68: {"PLA", ModeStackPull},
	0x69: {"ADC", ModeImmediate},
	0x6A: {"ROR", ModeAccumulator},
	0x6C: {"JMP", ModeAbsoluteIndirect},
	0x6D: {"ADC", ModeAbsolute},
	0x6E: {"ROR", ModeAbsoluteRMW},
	0x70: {"BVS", ModePcRelative},
	0x71: {"ADC", ModeZeroPageIndirectYIndexed},
	0x72: {"ADC", ModeZeroPageIndirect},
	0x75: {"ADC", ModeZeroPageXIndexed},
	0x76: {"ROR", ModeZeroPageXIndexedRMW},
	0x78: {"SEI", ModeImplied},
	0x79: {"ADC", ModeAbsoluteYIndexed},
	0x7A: {"PLY", ModeStackPull},
	0x7C: {"JMP", ModeAbsoluteXIndexedIndirect},
	0x7D: {"ADC", ModeAbsoluteXIndexed},
	0x7E: {"ROR", ModeAbsoluteXIndexedRMW},
	0x80: {"BRA", ModePcRelative},
	0x81: {"STA", ModeZeroPageXIndexedIndirect},
	0x84: {"STY", ModeZeroPage},
	0x85: {"STA", ModeZeroPage},
	0x86: {"STX", ModeZeroPage},
	0x88: {"DEY", ModeImplied},
	0x89: {"BIT", ModeImmediate},
	0x8A: {"TXA", ModeImplied},
	0x8C: {"STY", ModeAbsolute},
	0x8D: {"STA", ModeAbsolute},
	0x8E: {"STX", ModeAbsolute},
	0x90: {"BCC", ModePcRelative},
	0x91: {"STA", ModeZeroPageIndirectYIndexed},
	0x92: {"STA", ModeZeroPageIndirect},
	0x94: {"STY", ModeZeroPageXIndexed},
	0x95: {"STA", ModeZeroPageXIndexed},
	0x96: {"STX", ModeZeroPageYIndexed},
	0x98: {"TYA", ModeImplied},
	0x99: {"STA", ModeAbsoluteYIndexed},
	0x9A: {"TXS", ModeImplied},
	0x9C: {"STZ", ModeAbsolute},
	0x9D: {"STA", ModeAbsoluteXIndexed},
	0x9E: {"STZ", ModeAbsoluteXIndexed},
	0xA0: {"LDY", ModeImmediate},
	0xA1: {"LDA", ModeZeroPageXIndexedIndirect},
	0xA2: {"LDX", ModeImmediate},
	0xA4: {"LDY", ModeZeroPage},
	0xA5: {"LDA", ModeZeroPage},
	0xA6: {"LDX", ModeZeroPage},
	0xA8: {"TAY", ModeImplied},
	0xA9: {"LDA", ModeImmediate},
	0xAA: {"TAX", ModeImplied},
	0xAC: {"LDY", ModeAbsolute},
	0xAD: {"LDA", ModeAbsolute},
	0xAE: {"LDX", ModeAbsolute},
	0xB0: {"BCS", ModePcRelative},
	0xB1: {"LDA", ModeZeroPageIndirectYIndexed},
	0xB2: {"LDA", ModeZeroPageIndirect},
	0xB4: {"LDY", ModeZeroPageXIndexed},
	0xB5: {"LDA", ModeZeroPageXIndexed},
	0xB6: {"LDX", ModeZeroPageYIndexed},
	0xB8: {"CLV", ModeImplied},
	0xB9: {"LDA", ModeAbsoluteYIndexed},
	0xBA: {"TSX", ModeImplied},
	0xBC: {"LDY", ModeAbsoluteXIndexed},
	0xBD: {"LDA", ModeAbsoluteXIndexed},
	0xBE: {"LDX", ModeAbsoluteYIndexed},
	0xC0: {"CPY", ModeImmediate},
	0xC1: {"CMP", ModeZeroPageXIndexedIndirect},
	0xC4: {"CPY", ModeZeroPage},
	0xC5: {"CMP", ModeZeroPage},
	0xC6: {"DEC", ModeZeroPageRMW},
	0xC8: {"INY", ModeImplied},
	0xC9: {"CMP", ModeImmediate},
	0xCA: {"DEX", ModeImplied},
	0xCC: {"CPY", ModeAbsolute},
	0xCD: {"CMP", ModeAbsolute},
	0xCE: {"DEC", ModeAbsoluteRMW},
	0xD0: {"BNE", ModePcRelative},
	0xD1: {"CMP", ModeZeroPageIndirectYIndexed},
	0xD2: {"CMP", ModeZeroPageIndirect},
	0xD5: {"CMP", ModeZeroPageXIndexed},
	0xD6: {"DEC", ModeZeroPageXIndexedRMW},
	0xD8: {"CLD", ModeImplied},
	0xD9: {"CMP", ModeAbsoluteYIndexed},
	0xDA: {"PHX", ModeStackPush},
	0xDD: {"CMP", ModeAbsoluteXIndexed},
	0xDE: {"DEC", ModeAbsoluteXIndexedRMW},
	0xE0: {"CPX", ModeImmediate},
	0xE1: {"SBC", ModeZeroPageXIndexedIndirect},
	0xE4: {"CPX", ModeZeroPage},
	0xE5: {"SBC", ModeZeroPage},
	0xE6: {"INC", ModeZeroPageRMW},
	0xE8: {"INX", ModeImplied},
	0xE9: {"SBC", ModeImmediate},
	0xEA: {"NOP", ModeImplied},
	0xEC: {"CPX", ModeAbsolute},
	0xED: {"SBC", ModeAbsolute},
	0xEE: {"INC", ModeAbsoluteRMW},
	0xF0: {"BEQ", ModePcRelative},
	0xF1: {"SBC", ModeZeroPageIndirectYIndexed},
	0xF2: {"SBC", ModeZeroPageIndirect},
	0xF5: {"SBC", ModeZeroPageXIndexed},
	0xF6: {"INC", ModeZeroPageXIndexedRMW},
	0xF8: {"SED", ModeImplied},
	0xF9: {"SBC", ModeAbsoluteYIndexed},
	0xFA: {"PLX", ModeStackPull},
	0xFD: {"SBC", ModeAbsoluteXIndexed},
	0xFE: {"INC", ModeAbsoluteXIndexedRMW},
}

// Lookup returns the mnemonic, addressing mode and total cycle count for
// opcode. ok is false for undefined opcodes or modes missing from the
// cycle table, matching the failure semantics of the decode tables.
func Lookup(opcode uint8) (mnemonic string, mode AddrMode, cycleCount uint8, ok bool) {
	e := opcodes[opcode]
	if e.mode == ModeUnimplemented {
		return "", ModeUnimplemented, 0, false
	}
	c, have := cycles[e.mode]
	if !have {
		return "", ModeUnimplemented, 0, false
	}
	return e.mnemonic, e.mode, c, true
}
