package util

import (
	"io"
	"strconv"

	"golang.org/x/term"
)

const (
	ColorRed     = 31
	ColorMagenta = 35
)

// IsTerminal reports whether w is a file descriptor attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// Highlight wraps s in the ANSI sequence for color when enabled is true
func Highlight(s string, color int, enabled bool) string {
	if !enabled {
		return s
	}

	return "\x1b[" + strconv.Itoa(color) + "m" + s + "\x1b[0m"
}
