package term

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/sys/windows"
)

// ClearLine returns the cursor to the start of the current line and erases it.
func ClearLine(_ io.Writer) {
	stderr := windows.Handle(os.Stderr.Fd())

	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(stderr, &info); err != nil {
		return
	}

	coords := info.CursorPosition
	if coords.X > 0 {
		coords.X = 0
		if err := windows.SetConsoleCursorPosition(stderr, coords); err != nil {
			return
		}
	}

	if _, err := windows.Write(stderr, bytes.Repeat([]byte{' '}, int(info.Size.X))); err != nil {
		return
	}

	windows.SetConsoleCursorPosition(stderr, coords)
}
