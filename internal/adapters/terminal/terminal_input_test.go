package terminal

import (
	"bufio"
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTerminalInput(input string) (*TerminalInput, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &TerminalInput{in: bufio.NewReader(strings.NewReader(input)), out: out}, out
}

func TestTerminalInput_ReadLinePrintsPromptAndTrimsNewline(t *testing.T) {
	sut, out := newTestTerminalInput("yes\r\nno\n")

	first, err := sut.ReadLine("Continue? ")
	require.NoError(t, err)
	second, err := sut.ReadLine("Again? ")
	require.NoError(t, err)

	assert.Equal(t, "yes", first)
	assert.Equal(t, "no", second)
	assert.Equal(t, "Continue? Again? ", out.String())
}

func TestTerminalInput_ReadLineAcceptsFinalLineWithoutNewline(t *testing.T) {
	sut, _ := newTestTerminalInput("y")

	line, err := sut.ReadLine("? ")

	require.NoError(t, err)
	assert.Equal(t, "y", line)
}

func TestTerminalInput_ReadLineFailsOnClosedInput(t *testing.T) {
	sut, _ := newTestTerminalInput("")

	_, err := sut.ReadLine("? ")

	assert.ErrorContains(t, err, "failed to read input")
}

func TestTerminalInput_RegularFileIsNotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer f.Close()
	sut := &TerminalInput{stdinF: f}

	assert.False(t, sut.IsTerminal())
	assert.False(t, (&TerminalInput{}).IsTerminal())
}
