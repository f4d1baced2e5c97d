package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleProducesExpectedBytes(t *testing.T) {
	listing := "8000 A9 42\n8002 8D 00 90\n"
	out, err := assemble(strings.NewReader(listing), 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xA9, 0x42, 0x8D, 0x00, 0x90}, out)
}

func TestAssembleZeroFillsUpToOffset(t *testing.T) {
	out, err := assemble(strings.NewReader("8000 EA\n"), 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0xEA}, out)
}

func TestAssembleSkipsBlankLinesAndComments(t *testing.T) {
	listing := "; a comment\n\n8000 EA\n; trailing\n"
	out, err := assemble(strings.NewReader(listing), 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xEA}, out)
}

func TestAssembleRejectsLineMissingBytes(t *testing.T) {
	_, err := assemble(strings.NewReader("8000\n"), 0)
	assert.Error(t, err)
}

func TestAssembleRejectsUnparseableByte(t *testing.T) {
	_, err := assemble(strings.NewReader("8000 ZZ\n"), 0)
	assert.Error(t, err)
}
