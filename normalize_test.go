package lexpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// corpus holds inputs exercised by the property tests of both dialects.
var corpus = []string{
	"", ".", "..", "/", "//", "///a", "a", "a/", "a//b", "./a", "a/.", "a/..", "a/../..",
	"../../a", "/../a", "/a/b/../../..", "docs/../src/./app//utils", "/home/user/docs/report.pdf",
	".bashrc", "a/.bashrc", "archive.tar.gz", "dir.d/", "dir.d/.", "...", "a/...", "a.", "a\x00b",
	`a\b`, `a\b\..\c`, `C:`, `C:.`, `C:..`, `C:a\..\..`, `C:\`, `c:/x/y/`, `C:\a\..\..\b`,
	`\a\b`, `\\server`, `\\server\share`, `\\server\share\`, `\\server\share\a\..\..`,
	`//server/share/a/b.txt`, `\\?\C:\a`, `\\.\pipe\name`, `C:foo.txt`, `C:\a.b\c`,
	"./C:", `.\C:\`, `.\C:.\ab`, "x/../C:", "./a:", `C:\x\..\D:`,
}

func TestNormalizePosix(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", "."},
		{".", "."},
		{"./", "."},
		{"/", "/"},
		{"//", "/"},
		{"docs/../src/./app//utils", "src/app/utils"},
		{"/a/b/../c/", "/a/c"},
		{"/../a", "/a"},
		{"../../a", "../../a"},
		{"a/../../b", "../b"},
		{"a/..", "."},
		{`a\b`, `a\b`},
		{"a/b/c", "a/b/c"},
		{"a\x00/b", "a\x00/b"},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			assert.Equal(t, c.expected, Posix.Normalize(c.input))
		})
	}
}

func TestNormalizeWin32(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", "."},
		{`C:\a\..\b`, `C:\b`},
		{"C:/a//b/", `C:\a\b`},
		{"C:", "C:."},
		{"C:..", "C:.."},
		{`C:..\a`, `C:..\a`},
		{`C:a\..\..`, `C:..`},
		{`c:\`, `c:\`},
		{`C:\..\..`, `C:\`},
		{`\\server\share`, `\\server\share\`},
		{`\\server\share\..\..\x`, `\\server\share\x`},
		{"//server/share/a", `\\server\share\a`},
		{`\\server`, `\\server\`},
		{`\\\a`, `\a`},
		{`\a\..\..\b`, `\b`},
		{"a/b", `a\b`},
		{`a\b`, `a\b`},
		{"./C:", `.\C:`},
		{`.\C:\`, `.\C:`},
		{`.\C:.\ab`, `.\C:.\ab`},
		{"x/../C:", `.\C:`},
		{"./a:b", `.\a:b`},
		{`C:\x\..\D:`, `C:\D:`},
		{"x/C:", `x\C:`},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			assert.Equal(t, c.expected, Win32.Normalize(c.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, d := range []Dialect{Posix, Win32} {
		for _, p := range corpus {
			once := d.Normalize(p)
			assert.Equal(t, once, d.Normalize(once), "%v: %q", d, p)
		}
	}
}

func TestJoin(t *testing.T) {
	cases := []struct {
		dialect  Dialect
		elem     []string
		expected string
	}{
		{Posix, []string{"users", "docs", "file.txt"}, "users/docs/file.txt"},
		{Posix, nil, "."},
		{Posix, []string{"", ""}, "."},
		{Posix, []string{"/a", "../b"}, "/b"},
		{Posix, []string{"a", "", "b"}, "a/b"},
		{Posix, []string{"/", "x"}, "/x"},
		{Posix, []string{"a/", "/b/"}, "a/b"},
		{Win32, []string{"C:", "foo"}, `C:\foo`},
		{Win32, []string{`\\server`, "share", "x"}, `\\server\share\x`},
		{Win32, []string{"a", "/b"}, `a\b`},
		{Win32, []string{"a", "..", "C:"}, `.\C:`},
		{Win32, nil, "."},
	}
	for _, c := range cases {
		t.Run(c.expected, func(t *testing.T) {
			assert.Equal(t, c.expected, c.dialect.Join(c.elem...))
		})
	}
}

func TestIsAbsolute(t *testing.T) {
	cases := []struct {
		dialect  Dialect
		input    string
		expected bool
	}{
		{Posix, "/a", true},
		{Posix, "a/b", false},
		{Posix, "", false},
		{Posix, `C:\a`, false},
		{Win32, `C:\a`, true},
		{Win32, "C:/a", true},
		{Win32, "C:a", false},
		{Win32, "C:", false},
		{Win32, `\a`, true},
		{Win32, `\\server\share`, true},
		{Win32, "a", false},
		{Win32, "", false},
	}
	for _, c := range cases {
		t.Run(c.dialect.Name()+":"+c.input, func(t *testing.T) {
			assert.Equal(t, c.expected, c.dialect.IsAbsolute(c.input))
		})
	}
}

func TestSegments(t *testing.T) {
	root, segments := Posix.Segments("/a/./b/../c")
	assert.Equal(t, "/", root)
	assert.Equal(t, []string{"a", "c"}, segments)

	root, segments = Posix.Segments(".")
	assert.Equal(t, "", root)
	assert.Empty(t, segments)

	root, segments = Win32.Segments("x/../C:/y")
	assert.Equal(t, "", root)
	assert.Equal(t, []string{".", "C:", "y"}, segments)

	root, segments = Win32.Segments(`//srv/share/x/y`)
	assert.Equal(t, `\\srv\share\`, root)
	assert.Equal(t, []string{"x", "y"}, segments)
}

func TestEqual(t *testing.T) {
	assert.True(t, Win32.Equal(`C:\A\b`, "c:/a/B/"))
	assert.False(t, Posix.Equal("a/b", "a/B"))
	assert.True(t, Posix.Equal("a/./b/", "a/b"))
}
