// Package lexpath manipulates path strings for the POSIX and Windows path
// dialects without touching the filesystem.
//
// Every operation is a pure function of its arguments: the working directory
// is always passed in by the caller, and each dialect is an immutable value.
// Posix and Win32 are always available regardless of the host; Default returns
// the one matching the host operating system, and the package-level functions
// are bound to it.
package lexpath

import (
	"runtime"
	"strings"

	"github.com/pgavlin/lexpath/internal/segment"
)

// A Dialect is a set of path syntax rules: the separator written to output,
// the separators accepted on input, the list delimiter, and how roots are
// recognized.
//
// Dialect values are immutable. The only dialects are Posix and Win32.
type Dialect struct {
	name  string
	seps  segment.Separators
	delim byte
	win   bool
}

var (
	// Posix is the dialect of Unix-like systems: '/' separates components,
	// ':' separates list entries, and a path is absolute iff it begins with '/'.
	Posix = Dialect{
		name:  "posix",
		seps:  segment.Separators{Canonical: '/', Alternate: '/'},
		delim: ':',
	}

	// Win32 is the dialect of Windows: both '\' and '/' separate components
	// ('\' is written), ';' separates list entries, and roots may carry a
	// drive letter ("C:\") or a UNC share ("\\server\share\").
	Win32 = Dialect{
		name:  "win32",
		seps:  segment.Separators{Canonical: '\\', Alternate: '/'},
		delim: ';',
		win:   true,
	}
)

var host = hostDialect(runtime.GOOS)

func hostDialect(goos string) Dialect {
	if goos == "windows" {
		return Win32
	}
	return Posix
}

// Default returns the dialect of the host operating system.
func Default() Dialect {
	return host
}

// DialectByName returns the dialect with the given name. "posix" and "win32"
// (or "windows") name the two dialects; "host" and the empty string name the
// host dialect.
func DialectByName(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "", "host":
		return host, nil
	case "posix":
		return Posix, nil
	case "win32", "windows":
		return Win32, nil
	default:
		return Dialect{}, invalidInput("dialect", "unknown dialect %q", name)
	}
}

// Name returns the dialect's name.
func (d Dialect) Name() string {
	return d.name
}

func (d Dialect) String() string {
	return d.name
}

// Separator returns the separator the dialect writes between components.
func (d Dialect) Separator() byte {
	return d.seps.Canonical
}

// Delimiter returns the byte that separates entries in a search-path list.
func (d Dialect) Delimiter() byte {
	return d.delim
}

// IsSeparator returns true if c separates path components in the dialect.
func (d Dialect) IsSeparator(c byte) bool {
	return d.seps.Is(c)
}

// A volume describes the root of a path.
type volume struct {
	// root is the canonical root text: "/", "\", "C:\", "C:", or "\\server\share\".
	root string
	// device is the drive ("C:") or UNC share ("\\server\share") naming the
	// volume, if any.
	device string
	// absolute is true if the root anchors the path.
	absolute bool
}

// unc returns true if the volume is a UNC share.
func (v volume) unc() bool {
	return len(v.device) > 2 && v.device[0] == '\\'
}

// join attaches a cleaned tail to the volume's root.
func (v volume) join(tail string) string {
	switch {
	case tail != "":
		return v.root + tail
	case v.root == "":
		return "."
	case !v.absolute:
		// drive-relative with nothing left, e.g. "C:."
		return v.root + "."
	default:
		return v.root
	}
}

// splitRoot returns the volume of p and the remainder of p that follows its
// root. The remainder is always a suffix of p.
func (d Dialect) splitRoot(p string) (volume, string) {
	if !d.win {
		if len(p) > 0 && p[0] == '/' {
			return volume{root: "/", absolute: true}, p[1:]
		}
		return volume{}, p
	}

	n := len(p)
	switch {
	case n == 0:
		return volume{}, p
	case d.seps.Is(p[0]):
		if n >= 2 && d.seps.Is(p[1]) {
			// \\server\share
			i := 2
			for i < n && !d.seps.Is(p[i]) {
				i++
			}
			if i > 2 {
				server := p[2:i]
				j := i
				for j < n && d.seps.Is(p[j]) {
					j++
				}
				k := j
				for k < n && !d.seps.Is(p[k]) {
					k++
				}

				device := `\\` + server
				if k > j {
					device += `\` + p[j:k]
				}
				return volume{root: device + `\`, device: device, absolute: true}, p[k:]
			}
		}
		return volume{root: `\`, absolute: true}, p[1:]
	case n >= 2 && p[1] == ':' && isDriveLetter(p[0]):
		device := p[:2]
		if n >= 3 && d.seps.Is(p[2]) {
			return volume{root: device + `\`, device: device, absolute: true}, p[3:]
		}
		return volume{root: device, device: device}, p[2:]
	default:
		return volume{}, p
	}
}

func isDriveLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// equal compares two path fragments, folding case under Win32.
func (d Dialect) equal(a, b string) bool {
	if d.win {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// clean splits p into its volume and its cleaned tail.
//
// Under Win32, a relative tail whose first element looks like a drive ("C:")
// is prefixed with ".\" so that it is not read back as a drive-relative root.
func (d Dialect) clean(p string) (volume, string) {
	v, rest := d.splitRoot(p)
	tail := segment.Clean(rest, v.absolute, d.seps)
	if d.win && v.root == "" && len(tail) >= 2 && tail[1] == ':' && isDriveLetter(tail[0]) {
		tail = `.\` + tail
	}
	return v, tail
}
