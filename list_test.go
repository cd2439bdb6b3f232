package lexpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	cases := []struct {
		dialect  Dialect
		input    string
		expected []string
	}{
		{Posix, "", []string{}},
		{Posix, "/bin:/usr/bin", []string{"/bin", "/usr/bin"}},
		{Posix, "/bin::", []string{"/bin", "", ""}},
		{Win32, `C:\a;"C:\b;c";D:\`, []string{`C:\a`, `C:\b;c`, `D:\`}},
		{Win32, `C:\a`, []string{`C:\a`}},
		{Win32, "", []string{}},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			assert.Equal(t, c.expected, c.dialect.SplitList(c.input))
		})
	}
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "/a:/b", Posix.JoinList("/a", "/b"))
	assert.Equal(t, "", Posix.JoinList())
	assert.Equal(t, `C:\a;"C:\b;c"`, Win32.JoinList(`C:\a`, `C:\b;c`))

	list := []string{`C:\a`, `C:\b;c`, `D:\`}
	assert.Equal(t, list, Win32.SplitList(Win32.JoinList(list...)))
}
