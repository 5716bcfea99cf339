package progress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClearLine_WithANSISupport(t *testing.T) {
	caps := terminalCapabilities{supportsANSI: true, terminalWidth: 80}

	assert.Equal(t, "\033[2K\r", clearLine(caps))
}

func TestClearLine_PadsToTerminalWidthWithoutANSI(t *testing.T) {
	for _, width := range []int{40, 80, 200} {
		caps := terminalCapabilities{supportsANSI: false, terminalWidth: width}

		result := clearLine(caps)

		assert.Equal(t, "\r"+strings.Repeat(" ", width)+"\r", result)
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"cut plain text", "hello world", 5, "hello\033[0m"},
		{"empty input", "", 10, ""},
		{"zero width", "test", 0, ""},
		{"escape codes are free", "\033[1mhello\033[0m", 5, "\033[1mhello\033[0m"},
		{"cut inside styled text", "\033[1mhello world\033[0m", 5, "\033[1mhello\033[0m"},
		{"several sequences", "\033[1mbold\033[0m \033[2mdim\033[0m", 7, "\033[1mbold\033[0m \033[2mdi\033[0m"},
		{"styled symbol", "\033[32m+\033[0m test", 3, "\033[32m+\033[0m t\033[0m"},
		{"truecolor parameters", "\033[38;2;255;0;0mred text\033[0m", 3, "\033[38;2;255;0;0mred\033[0m"},
		{"multibyte runes count once", "ünïcödé", 3, "ünï\033[0m"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, truncateToWidth(tc.input, tc.width))
		})
	}
}
