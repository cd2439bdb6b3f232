package lexpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNamespacedPath(t *testing.T) {
	cases := []struct {
		dialect  Dialect
		input    string
		expected string
	}{
		{Win32, `C:\a\b`, `\\?\C:\a\b`},
		{Win32, "C:/a/../b", `\\?\C:\b`},
		{Win32, `\\srv\share\x`, `\\?\UNC\srv\share\x`},
		{Win32, `//srv/share`, `\\?\UNC\srv\share\`},
		{Win32, `\\?\C:\x`, `\\?\C:\x`},
		{Win32, `\\.\pipe\x`, `\\.\pipe\x`},
		{Win32, "a", "a"},
		{Win32, `\a`, `\a`},
		{Win32, "C:a", "C:a"},
		{Win32, "", ""},
		{Posix, "/a/../b", "/a/../b"},
		{Posix, `C:\a`, `C:\a`},
	}
	for _, c := range cases {
		t.Run(c.dialect.Name()+":"+c.input, func(t *testing.T) {
			assert.Equal(t, c.expected, c.dialect.ToNamespacedPath(c.input))
		})
	}
}
