package term

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal returns true if f refers to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

