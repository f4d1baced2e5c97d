// Package tui is an interactive single-step debugger for the cpu
// package's sequencer, built on bubbletea and lipgloss.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/anvilrun/m65c02/cpu"
	"github.com/anvilrun/m65c02/memory"
)

type model struct {
	chip *cpu.Chip
	bus  memory.Bus

	prevPC uint16
	err    error
}

// Init performs no initial command; the caller is responsible for having
// already called Reset on chip before Run starts the program.
func (m model) Init() tea.Cmd {
	return nil
}

// Update advances the chip by exactly one Tick per step key, matching
// the sub-cycle granularity of the sequencer rather than stepping whole
// instructions.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "j":
			if halted, _ := m.chip.Halted(); halted {
				return m, nil
			}
			m.prevPC = m.chip.PC
			if err := m.chip.Tick(m.bus); err != nil {
				m.err = err
			}
		}
	}
	return m, nil
}

const bytesPerRow = 16

// renderPage renders one 16-byte row of memory as a hex dump, bracketing
// the byte at the program counter.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04X | ", start)
	for i := uint16(0); i < bytesPerRow; i++ {
		addr := start + i
		b := m.bus.ReadByte(addr)
		if addr == m.chip.PC {
			s += fmt.Sprintf("[%02X] ", b)
		} else {
			s += fmt.Sprintf(" %02X  ", b)
		}
	}
	return s
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < bytesPerRow; b++ {
		header += fmt.Sprintf("  %01X  ", b)
	}

	base := m.chip.PC &^ (bytesPerRow - 1)
	rows := []string{header}
	for i := -2; i <= 2; i++ {
		rows = append(rows, m.renderPage(uint16(int(base)+i*bytesPerRow)))
	}
	return strings.Join(rows, "\n")
}

func (m model) status() string {
	var flags string
	for _, f := range []uint8{cpu.FlagN, cpu.FlagV, cpu.FlagB, cpu.FlagD, cpu.FlagI, cpu.FlagZ, cpu.FlagC} {
		if m.chip.Flag(f) {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04X (was %04X)
 A: %02X
 X: %02X
 Y: %02X
SP: %02X
N V B D I Z C
%s`,
		m.chip.PC, m.prevPC,
		m.chip.A, m.chip.X, m.chip.Y, m.chip.SP,
		flags,
	)
}

// View renders the debugger's UI: a memory page table around PC, the
// register/flag status block, and a structured dump of the instruction
// currently in flight.
func (m model) View() string {
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(struct {
			Mnemonic string
			Mode     cpu.AddrMode
			Cycles   uint8
		}{m.chip.Mnemonic(), m.chip.AddrMode(), m.chip.CycleCount()}),
	)
	if m.err != nil {
		body += fmt.Sprintf("\nhalted: %v\n", m.err)
	}
	return body
}

// Run starts the interactive debugger over chip and bus. chip must
// already have had Reset called on it; Run does not reset it itself.
func Run(chip *cpu.Chip, bus memory.Bus) error {
	m, err := tea.NewProgram(model{chip: chip, bus: bus}).Run()
	if err != nil {
		return err
	}
	if x, ok := m.(model); ok && x.err != nil {
		fmt.Println("halted:", x.err)
	}
	return nil
}
