package lexpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	cases := []struct {
		dialect  Dialect
		pattern  string
		input    string
		expected bool
	}{
		{Posix, "*.go", "main.go", true},
		{Posix, "*.go", "cmd/main.go", false},
		{Posix, "**/*.go", "cmd/main.go", true},
		{Posix, "**/*.go", "main.go", true},
		{Posix, "cmd/**", "cmd/a/b", true},
		{Posix, "a?c", "abc", true},
		{Posix, "a?c", "a/c", false},
		{Posix, `\*`, "*", true},
		{Posix, `\*`, "x", false},
		{Posix, "[ab].txt", "b.txt", true},
		{Posix, "[ab].txt", "c.txt", false},
		{Posix, "[*]", "*", true},
		{Posix, "[*]", "a", false},
		{Posix, "[?]x", "?x", true},
		{Posix, "[?]x", "ax", false},
		{Posix, "[*?]", "?", true},
		{Posix, "[!ab].txt", "c.txt", true},
		{Posix, "[!ab].txt", "a.txt", false},
		{Posix, "[^a]", "b", true},
		{Posix, "[^a]", "^", true},
		{Posix, "a[!x]b", "a/b", false},
		{Posix, "[a-c]", "b", true},
		{Posix, `[a\-c]`, "b", false},
		{Posix, `[a\-c]`, "-", true},
		{Posix, `[\]]`, "]", true},
		{Posix, "[]a]", "]", true},
		{Posix, "[.]", "x", false},
		{Win32, "[A-C].txt", "b.TXT", true},
		{Win32, "[!a]", "A", false},
		{Posix, "./src/*.ts", "src/app.ts", true},
		{Posix, "src/*.ts", "src/../src/app.ts", true},
		{Posix, "a+b(c)", "a+b(c)", true},
		{Posix, "*.GO", "main.go", false},
		{Win32, "C:/src/*.TS", `c:\src\app.ts`, true},
		{Win32, `src\**\*.go`, "src/a/b/c.go", true},
		{Win32, `*.go`, `a\b.go`, false},
	}
	for _, c := range cases {
		t.Run(c.pattern+"|"+c.input, func(t *testing.T) {
			actual, err := c.dialect.Match(c.pattern, c.input)
			require.NoError(t, err)
			assert.Equal(t, c.expected, actual)
		})
	}
}

func TestMatchInvalidPattern(t *testing.T) {
	for _, pattern := range []string{`a\`, `\x`, "[", "[ab", "[]", "[!]", `[\x]`, "[z-a]"} {
		t.Run(pattern, func(t *testing.T) {
			_, err := Posix.Match(pattern, "a")
			var invalid *InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "match", invalid.Op)
		})
	}
}
