package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteReadWrite(t *testing.T) {
	tests := []struct {
		name string
		addr uint16
		val  uint8
	}{
		{"zero page", 0x0042, 0xAB},
		{"stack page", 0x01FF, 0x7F},
		{"top of space", 0xFFFF, 0x01},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := NewFlat()
			f.WriteByte(test.addr, test.val)
			assert.Equal(t, test.val, f.ReadByte(test.addr))
		})
	}
}

func TestWordReadWriteRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		addr uint16
		word uint16
	}{
		{"low word", 0x0000, 0x1234},
		{"reset vector", 0xFFFC, 0x8000},
		{"wraps at top of space", 0xFFFF, 0xBEEF},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := NewFlat()
			f.WriteWord(test.addr, test.word)
			assert.Equal(t, test.word, f.ReadWord(test.addr))
		})
	}
}

func TestWordIsLittleEndian(t *testing.T) {
	f := NewFlat()
	f.WriteWord(0x2000, 0xABCD)
	assert.Equal(t, uint8(0xCD), f.ReadByte(0x2000), "low byte at lower address")
	assert.Equal(t, uint8(0xAB), f.ReadByte(0x2001), "high byte at higher address")
}

func TestPowerOnZeroes(t *testing.T) {
	f := NewFlat()
	f.WriteByte(0x4242, 0xFF)
	f.PowerOn()
	assert.Equal(t, uint8(0x00), f.ReadByte(0x4242))
}

func TestLoadTruncatesAtTopOfSpace(t *testing.T) {
	f := NewFlat()
	prog := []uint8{0x01, 0x02, 0x03, 0x04}
	f.Load(0xFFFE, prog)
	assert.Equal(t, uint8(0x01), f.ReadByte(0xFFFE))
	assert.Equal(t, uint8(0x02), f.ReadByte(0xFFFF))
}
