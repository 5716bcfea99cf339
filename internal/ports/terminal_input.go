package ports

// TerminalInput reads answers from the user at the terminal.
type TerminalInput interface {
	// ReadLine prints prompt and returns the next line from stdin without its line ending.
	ReadLine(prompt string) (string, error)
	// IsTerminal returns true if stdin is connected to a terminal.
	IsTerminal() bool
}
