package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvilrun/m65c02/cpu"
	"github.com/anvilrun/m65c02/memory"
)

func newModel(t *testing.T) model {
	bus := memory.NewFlat()
	bus.Load(0x8000, []uint8{0xA9, 0x42, 0xEA}) // LDA #$42; NOP
	bus.WriteWord(cpu.ResetVector, 0x8000)

	chip := cpu.New()
	chip.Reset(bus)
	require.NoError(t, chip.Tick(bus)) // post-reset fetch

	return model{chip: chip, bus: bus}
}

func TestUpdateStepsExactlyOneTickPerKey(t *testing.T) {
	m := newModel(t)
	before := m.chip.PC

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	got := next.(model)

	// One tick completes LDA #$42: it reads the operand and pipelines the
	// fetch of NOP, so PC moves by two. A second tick would move it to
	// 0x8004.
	assert.Equal(t, before+2, got.chip.PC)
}

func TestUpdateQuitsOnQ(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.NotNil(t, cmd)
}

func TestUpdateStopsAdvancingOnceHalted(t *testing.T) {
	m := newModel(t)
	m.bus.WriteByte(0x8003, 0x02) // undefined opcode after the NOP

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace}) // commits LDA, fetches NOP
	m = next.(model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace}) // executes NOP, fetches $02 -> halts
	m = next.(model)
	require.Error(t, m.err)

	tcu := m.chip.TCU
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	got := next.(model)
	assert.Equal(t, tcu, got.chip.TCU)
}

func TestViewRendersWithoutPanicking(t *testing.T) {
	m := newModel(t)
	assert.NotEmpty(t, m.View())
}
