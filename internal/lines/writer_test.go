package lines

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter(t *testing.T) {
	cases := []struct {
		writes   []string
		expected []string
	}{
		{
			[]string{"a/b\nc/", "d", "/e\n", "f"},
			[]string{"a/b", "c/d/e", "f"},
		},
		{
			[]string{"/no/newline"},
			[]string{"/no/newline"},
		},
		{
			[]string{"a\n", "b\n", "c\n"},
			[]string{"a", "b", "c"},
		},
		{
			[]string{"C:\\a\r\nC:\\b\r", "\n"},
			[]string{`C:\a`, `C:\b`},
		},
		{
			[]string{"many\n\n\nblank lines"},
			[]string{"many", "", "", "blank lines"},
		},
	}
	for _, c := range cases {
		t.Run(strings.Join(c.expected, "|"), func(t *testing.T) {
			var lines []string

			w := NewWriter(func(line string) { lines = append(lines, line) })
			for _, s := range c.writes {
				n, err := w.Write([]byte(s))
				assert.NoError(t, err)
				assert.Equal(t, len(s), n)
			}
			assert.NoError(t, w.Flush())

			assert.Equal(t, c.expected, lines)
		})
	}
}
