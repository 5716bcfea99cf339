package progress

import (
	"os"
	"strings"

	"golang.org/x/term"
)

type terminalCapabilities struct {
	supportsANSI  bool
	terminalWidth int
}

// detectCapabilities probes f for its width and ANSI support. On Windows this
// also switches the console into virtual terminal mode.
func detectCapabilities(f *os.File) terminalCapabilities {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}
	return terminalCapabilities{
		supportsANSI:  initTerminal(f),
		terminalWidth: width,
	}
}

// clearLine returns the sequence that blanks the current line and returns the cursor.
func clearLine(caps terminalCapabilities) string {
	if caps.supportsANSI {
		return "\033[2K\r"
	}
	return "\r" + strings.Repeat(" ", caps.terminalWidth) + "\r"
}

// truncateToWidth cuts s to width visible runes. Escape sequences are copied
// through without counting, and a reset is appended when text was cut.
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}

	var b strings.Builder
	visible := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			// final byte of a CSI sequence
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
		case visible >= width:
			b.WriteString("\033[0m")
			return b.String()
		default:
			visible++
		}
		b.WriteRune(r)
	}
	return b.String()
}
