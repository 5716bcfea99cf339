package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"devspace/internal/ports"

	"golang.org/x/term"
)

// Compile-time interface compliance check
var _ ports.TerminalInput = (*TerminalInput)(nil)

// TerminalInput reads prompts from stdin and checks for a terminal using golang.org/x/term.
type TerminalInput struct {
	in     *bufio.Reader
	out    io.Writer
	stdinF *os.File
}

func ProvideTerminalInput() *TerminalInput {
	return &TerminalInput{
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		stdinF: os.Stdin,
	}
}

func (t *TerminalInput) ReadLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *TerminalInput) IsTerminal() bool {
	return t.stdinF != nil && term.IsTerminal(int(t.stdinF.Fd()))
}
