// Package lines provides an io.Writer that splits its input into lines.
package lines

import (
	"bytes"
	"strings"
)

// A Writer calls a function for each complete line written to it. Line
// terminators ("\n" or "\r\n") are not included in the lines.
type Writer struct {
	emit func(line string)

	line strings.Builder
}

// NewWriter returns a Writer that calls emit for each line.
func NewWriter(emit func(line string)) *Writer {
	return &Writer{emit: emit}
}

func (l *Writer) Write(b []byte) (int, error) {
	w := 0
	for len(b) > 0 {
		newline := bytes.IndexByte(b, '\n')
		if newline == -1 {
			l.line.Write(b)
			w += len(b)
			break
		}
		if l.line.Len() == 0 {
			l.print(string(b[:newline]))
		} else {
			l.line.Write(b[:newline])
			l.print(l.line.String())
			l.line.Reset()
		}
		b = b[newline+1:]
		w += newline + 1
	}
	return w, nil
}

// Flush emits any buffered partial line.
func (l *Writer) Flush() error {
	if l.line.Len() != 0 {
		l.print(l.line.String())
		l.line.Reset()
	}
	return nil
}

func (l *Writer) print(line string) {
	l.emit(strings.TrimSuffix(line, "\r"))
}
