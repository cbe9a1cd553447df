// Package termio answers questions about the terminal the process is
// attached to: whether a file is a TTY and how many columns it has.
package termio

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is assumed when the output is not a terminal or its size
// cannot be determined.
const DefaultWidth = 80

// Width returns the column count of the terminal behind f, or DefaultWidth
// when f is not a terminal.
func Width(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
