package lexpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		dialect  Dialect
		cwd      string
		elem     []string
		expected string
	}{
		{Posix, "/home/user", []string{"docs", "file.txt"}, "/home/user/docs/file.txt"},
		{Posix, "/home/user", []string{"/a", "b", "/c", "d"}, "/c/d"},
		{Posix, "", []string{"/a", "b"}, "/a/b"},
		{Posix, "/x", nil, "/x"},
		{Posix, "/x", []string{"", ""}, "/x"},
		{Posix, "/x/y", []string{"..", "..", "..", "z"}, "/z"},
		{Posix, "/x", []string{"a/", "./b/"}, "/x/a/b"},
		{Win32, `C:\cwd`, []string{"a"}, `C:\cwd\a`},
		{Win32, `C:\cwd`, []string{`\b`}, `C:\b`},
		{Win32, "", []string{`\b`}, `\b`},
		{Win32, `C:\cwd`, []string{"D:x"}, `D:\x`},
		{Win32, `C:\cwd`, []string{"c:x"}, `c:\cwd\x`},
		{Win32, `C:\cwd`, []string{`C:\a`, "D:b"}, `D:\b`},
		{Win32, `C:\cwd`, []string{`D:\a`, "C:b"}, `C:\cwd\b`},
		{Win32, "", []string{`\\srv\share\a`, `..\b`}, `\\srv\share\b`},
		{Win32, "", []string{`C:\a`, `\\srv\share\x`}, `\\srv\share\x`},
		{Win32, `\\srv\share\cwd`, []string{`\x`}, `\\srv\share\x`},
		{Win32, `C:/cwd/`, []string{"a/b"}, `C:\cwd\a\b`},
		{Win32, `D:\cwd`, []string{"./C:x"}, `D:\cwd\C:x`},
		{Win32, `D:\cwd`, []string{Win32.Normalize("./C:x")}, `D:\cwd\C:x`},
	}
	for _, c := range cases {
		t.Run(c.expected, func(t *testing.T) {
			actual, err := c.dialect.Resolve(c.cwd, c.elem...)
			require.NoError(t, err)
			assert.Equal(t, c.expected, actual)
			assert.True(t, c.dialect.IsAbsolute(actual))
		})
	}
}

func TestResolveInvalidInput(t *testing.T) {
	cases := []struct {
		dialect Dialect
		cwd     string
		elem    []string
	}{
		{Posix, "", []string{"a"}},
		{Posix, "", nil},
		{Posix, "relative", []string{"a"}},
		{Win32, "", []string{"C:a"}},
		{Win32, "C:cwd", []string{"a"}},
	}
	for _, c := range cases {
		t.Run(c.cwd, func(t *testing.T) {
			_, err := c.dialect.Resolve(c.cwd, c.elem...)
			var invalid *InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "resolve", invalid.Op)
		})
	}
}

func TestRelative(t *testing.T) {
	cases := []struct {
		dialect  Dialect
		cwd      string
		from     string
		to       string
		expected string
	}{
		{Posix, "", "/data/docs", "/data/images/photo.jpg", "../images/photo.jpg"},
		{Posix, "", "/a/b/c", "/a", "../.."},
		{Posix, "", "/", "/a/b", "a/b"},
		{Posix, "", "/a/b", "/a/b/", "."},
		{Posix, "/home", "docs", "docs/x", "x"},
		{Posix, "/home", "docs", "/home", ".."},
		{Posix, "", "/a/B", "/a/b", "../b"},
		{Win32, "", `C:\orandea\test\aaa`, `c:\orandea\impl\bbb`, `..\..\impl\bbb`},
		{Win32, "", `\\srv\share\a`, `\\SRV\Share\a\b`, "b"},
		{Win32, `C:\cwd`, "x", `C:\cwd\x\Y`, "Y"},
		{Win32, "", `C:\a`, `C:\a`, "."},
	}
	for _, c := range cases {
		t.Run(c.from+"->"+c.to, func(t *testing.T) {
			actual, err := c.dialect.Relative(c.cwd, c.from, c.to)
			require.NoError(t, err)
			assert.Equal(t, c.expected, actual)
		})
	}
}

func TestRelativeSelf(t *testing.T) {
	for _, p := range []string{"/", "/a", "/a/b/c", "/x/../y"} {
		actual, err := Posix.Relative("", p, p)
		require.NoError(t, err)
		assert.Equal(t, ".", actual)
	}
	for _, p := range []string{`C:\`, `C:\a`, `\\srv\share\x`} {
		actual, err := Win32.Relative("", p, p)
		require.NoError(t, err)
		assert.Equal(t, ".", actual)
	}
}

func TestRelativeIncompatibleRoots(t *testing.T) {
	_, err := Win32.Relative("", `C:\a`, `D:\b`)
	var roots *IncompatibleRootsError
	require.ErrorAs(t, err, &roots)
	assert.Equal(t, `C:\a`, roots.From)
	assert.Equal(t, `D:\b`, roots.To)

	_, err = Win32.Relative("", `\\srv\one\a`, `\\srv\two\a`)
	require.ErrorAs(t, err, &roots)
}

func TestRelativeNeedsWorkingDirectory(t *testing.T) {
	_, err := Posix.Relative("", "a", "/b")
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}
