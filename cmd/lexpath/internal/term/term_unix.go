//go:build !windows

package term

import (
	"fmt"
	"io"
)

// ClearLine returns the cursor to the start of the current line and erases it.
func ClearLine(w io.Writer) {
	fmt.Fprint(w, "\r\x1b[K")
}
