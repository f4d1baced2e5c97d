package disassembler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anvilrun/m65c02/disassembler"
	"github.com/anvilrun/m65c02/memory"
)

func TestStepImpliedTakesOneByte(t *testing.T) {
	bus := memory.NewFlat()
	bus.Load(0x8000, []uint8{0x18}) // CLC

	line, n := disassembler.Step(0x8000, bus)
	assert.Equal(t, 1, n)
	assert.Equal(t, "8000  CLC", line)
}

func TestStepImmediateTakesTwoBytes(t *testing.T) {
	bus := memory.NewFlat()
	bus.Load(0x8000, []uint8{0xA9, 0x42}) // LDA #$42

	line, n := disassembler.Step(0x8000, bus)
	assert.Equal(t, 2, n)
	assert.Equal(t, "8000  LDA $42", line)
}

func TestStepAbsoluteTakesThreeBytesAndPrintsBigEndian(t *testing.T) {
	bus := memory.NewFlat()
	bus.Load(0x8000, []uint8{0x8D, 0x00, 0x90}) // STA $9000

	line, n := disassembler.Step(0x8000, bus)
	assert.Equal(t, 3, n)
	assert.Equal(t, "8000  STA $9000", line)
}

func TestStepBranchPrintsResolvedTarget(t *testing.T) {
	bus := memory.NewFlat()
	bus.Load(0x8000, []uint8{0xD0, 0xFD}) // BNE -3

	line, n := disassembler.Step(0x8000, bus)
	assert.Equal(t, 2, n)
	assert.Equal(t, "8000  BNE $7FFF", line)
}

func TestStepUndefinedOpcodeStillAdvances(t *testing.T) {
	bus := memory.NewFlat()
	bus.Load(0x8000, []uint8{0x02})

	line, n := disassembler.Step(0x8000, bus)
	assert.Equal(t, 1, n)
	assert.Equal(t, "8000  .byte $02", line)
}

func TestStepWalksAFullProgram(t *testing.T) {
	bus := memory.NewFlat()
	bus.Load(0x8000, []uint8{0xA9, 0x42, 0x8D, 0x00, 0x90})

	pc := uint16(0x8000)
	var lines []string
	for i := 0; i < 2; i++ {
		line, n := disassembler.Step(pc, bus)
		lines = append(lines, line)
		pc += uint16(n)
	}
	assert.Equal(t, []string{"8000  LDA $42", "8002  STA $9000"}, lines)
	assert.Equal(t, uint16(0x8005), pc)
}
