//go:build windows

package progress

import (
	"os"

	"golang.org/x/sys/windows"
)

// initTerminal enables virtual terminal processing on the console behind f
// and reports whether ANSI sequences will be interpreted.
func initTerminal(f *os.File) bool {
	handle := windows.Handle(f.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
