package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Symbols for CLI output (ASCII-compatible)
const (
	SymbolSuccess = "+"
	SymbolError   = "x"
	SymbolWarning = "!"
	SymbolInfo    = "*"
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// colorsEnabled reports whether f is a terminal and NO_COLOR is unset
// (https://no-color.org/).
func colorsEnabled(f *os.File) bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func styled(color, text string, useColor bool) string {
	if !useColor {
		return text
	}
	return color + text + reset
}

func printLine(w io.Writer, color, symbol, message string, useColor bool) {
	fmt.Fprintf(w, "%s %s\n", styled(color, symbol, useColor), styled(color, message, useColor))
}

// PrintSuccess prints a success message to stdout
func PrintSuccess(message string) {
	printLine(os.Stdout, green, SymbolSuccess, message, colorsEnabled(os.Stdout))
}

// PrintInfo prints an info message to stdout
func PrintInfo(message string) {
	printLine(os.Stdout, cyan, SymbolInfo, message, colorsEnabled(os.Stdout))
}

// PrintWarning prints a warning to stderr
func PrintWarning(message string) {
	printLine(os.Stderr, yellow, SymbolWarning, message, colorsEnabled(os.Stderr))
}

// PrintError prints an error to stderr
func PrintError(message string) {
	printLine(os.Stderr, red, SymbolError, message, colorsEnabled(os.Stderr))
}
