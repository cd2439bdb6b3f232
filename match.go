package lexpath

import (
	"regexp"
	"strings"
)

// Match reports whether the normalized form of p matches the glob pattern.
//
//	*   matches any run of non-separator bytes
//	**  matches any run of bytes, including separators; "**/" may match nothing
//	?   matches a single non-separator byte
//	[ ] delimits a character class; a leading '!' or '^' negates it
//
// Inside a class '*' and '?' are literal, a ']' in first position is literal,
// and a negated class never matches a separator. Under Posix, '\' escapes the
// next '*', '?', '[', ']', '-', or '\'. Under Win32 '\' is a separator, so
// there are no escapes, and matching ignores case. The
// pattern is normalized before it is compiled. A malformed pattern yields an
// *InvalidInputError.
func (d Dialect) Match(pattern, p string) (bool, error) {
	re, err := d.compileGlob(d.Normalize(pattern))
	if err != nil {
		return false, err
	}
	return re.MatchString(d.Normalize(p)), nil
}

func (d Dialect) compileGlob(g string) (*regexp.Regexp, error) {
	sep := regexp.QuoteMeta(string(d.seps.Canonical))

	var pattern strings.Builder
	if d.win {
		pattern.WriteString("(?i)")
	}
	pattern.WriteRune('^')
	for i := 0; i < len(g); {
		switch b := g[i]; {
		case b == '[':
			n, err := d.compileClass(&pattern, g, i, sep)
			if err != nil {
				return nil, err
			}
			i = n
		case b == '\\' && !d.win:
			if i == len(g)-1 {
				return nil, invalidInput("match", "invalid escape sequence in %q", g)
			}

			switch c := g[i+1]; c {
			case '\\', '*', '?', '[', ']', '-':
				pattern.WriteByte(b)
				pattern.WriteByte(c)
				i++
			default:
				return nil, invalidInput("match", "invalid escape sequence in %q", g)
			}
		case d.seps.Is(b):
			pattern.WriteString(sep)
		case b == '*':
			if i < len(g)-1 && g[i+1] == '*' {
				i++
				if i < len(g)-1 && d.seps.Is(g[i+1]) {
					pattern.WriteString("(?:.*" + sep + ")?")
					i++
				} else {
					pattern.WriteString(".*")
				}
			} else {
				pattern.WriteString("[^" + sep + "]*")
			}
		case b == '?':
			pattern.WriteString("[^" + sep + "]")
		case strings.IndexByte(".+()|{}^$", b) != -1:
			pattern.WriteByte('\\')
			pattern.WriteByte(b)
		default:
			pattern.WriteByte(b)
		}
		i++
	}
	pattern.WriteRune('$')

	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, invalidInput("match", "invalid pattern %q: %v", g, err)
	}
	return re, nil
}

// compileClass writes the character class that starts at g[start] and returns
// the index of its closing ']'.
func (d Dialect) compileClass(pattern *strings.Builder, g string, start int, sep string) (int, error) {
	i := start + 1
	negated := i < len(g) && (g[i] == '!' || g[i] == '^')
	pattern.WriteByte('[')
	if negated {
		pattern.WriteByte('^')
		i++
	}

	for first := true; i < len(g); i, first = i+1, false {
		switch b := g[i]; {
		case b == ']' && !first:
			if negated {
				pattern.WriteString(sep)
			}
			pattern.WriteByte(']')
			return i, nil
		case b == '-' && !first:
			pattern.WriteByte('-')
		case b == '\\' && !d.win:
			if i == len(g)-1 || strings.IndexByte(`\*?[]-`, g[i+1]) == -1 {
				return 0, invalidInput("match", "invalid escape sequence in %q", g)
			}
			i++
			pattern.WriteByte('\\')
			pattern.WriteByte(g[i])
		default:
			pattern.WriteString(regexp.QuoteMeta(g[i : i+1]))
		}
	}
	return 0, invalidInput("match", "unterminated character class in %q", g)
}
