package cpu

import "fmt"

// InvalidState represents an emulator invariant violation: an unknown
// opcode, an addressing mode missing from the cycle table, or an
// instruction that doesn't handle the addressing mode it was decoded
// with. These are bugs in the emulator itself, never faults in the
// emulated program, so they halt the Chip rather than being reported
// back through register/flag state.
type InvalidState struct {
	Reason string
}

// Error implements the error interface.
func (e InvalidState) Error() string {
	return fmt.Sprintf("invalid cpu state: %s", e.Reason)
}

func invalidTick(fn string, tcu uint8) error {
	return InvalidState{fmt.Sprintf("%s: invalid TCU %d", fn, tcu)}
}
