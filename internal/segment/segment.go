// Package segment tokenizes and lexically cleans the part of a path that
// follows its root. It knows nothing about drives, UNC shares or leading
// slashes; callers strip the root first and pass the remainder.
package segment

// Separators describes the bytes that separate path components. Canonical is
// the separator written to output; Alternate is also accepted on input. A
// dialect with a single separator sets both to the same byte.
type Separators struct {
	Canonical byte
	Alternate byte
}

// Is returns true if c separates path components.
func (s Separators) Is(c byte) bool {
	return c == s.Canonical || c == s.Alternate
}

// A lazybuf is a lazily constructed path buffer.
// It supports append, reading previously appended bytes,
// and retrieving the final string. It does not allocate a buffer
// to hold the output until that output diverges from s.
type lazybuf struct {
	s   string
	buf []byte
	w   int
}

func (b *lazybuf) index(i int) byte {
	if b.buf != nil {
		return b.buf[i]
	}
	return b.s[i]
}

func (b *lazybuf) append(c byte) {
	if b.buf == nil {
		if b.w < len(b.s) && b.s[b.w] == c {
			b.w++
			return
		}
		b.buf = make([]byte, len(b.s))
		copy(b.buf, b.s[:b.w])
	}
	b.buf[b.w] = c
	b.w++
}

func (b *lazybuf) string() string {
	if b.buf == nil {
		return b.s[:b.w]
	}
	return string(b.buf[:b.w])
}

// Clean returns the shortest path equivalent to p by purely lexical
// processing. Runs of separators collapse to one canonical separator, "."
// elements are removed and ".." elements remove the preceding element.
//
// If rooted is true, p is taken to follow an absolute root and ".." elements
// that would climb above it are discarded. Otherwise they are kept at the front
// of the result, since they cannot be resolved without the filesystem.
//
// The result never begins or ends with a separator and is empty if nothing
// remains. Clean does not allocate unless the result differs from p.
func Clean(p string, rooted bool, seps Separators) string {
	n := len(p)

	// Invariants:
	//	reading from p; r is index of next byte to process.
	//	writing to buf; w is index of next byte to write.
	//	dotdot is index in buf where .. must stop, either because
	//		it is the start of the buffer or it is a leading ../../.. prefix.
	out := lazybuf{s: p}
	r, dotdot := 0, 0
	for r < n {
		switch {
		case seps.Is(p[r]):
			// empty path element
			r++
		case p[r] == '.' && (r+1 == n || seps.Is(p[r+1])):
			// . element
			r++
		case p[r] == '.' && p[r+1] == '.' && (r+2 == n || seps.Is(p[r+2])):
			// .. element: remove to last separator
			r += 2
			switch {
			case out.w > dotdot:
				// can backtrack
				out.w--
				for out.w > dotdot && out.index(out.w) != seps.Canonical {
					out.w--
				}
			case !rooted:
				// cannot backtrack, but not rooted, so append .. element.
				if out.w > 0 {
					out.append(seps.Canonical)
				}
				out.append('.')
				out.append('.')
				dotdot = out.w
			}
		default:
			// real path element.
			// add separator if needed
			if out.w != 0 {
				out.append(seps.Canonical)
			}
			// copy element
			for ; r < n && !seps.Is(p[r]); r++ {
				out.append(p[r])
			}
		}
	}

	return out.string()
}

// Split splits p into its non-empty components. Runs of separators are treated
// as a single separator; "." and ".." elements are returned as-is.
func Split(p string, seps Separators) []string {
	var components []string

	i := 0
	for i < len(p) {
		switch {
		case seps.Is(p[i]):
			i++
		default:
			start := i
			for ; i < len(p) && !seps.Is(p[i]); i++ {
			}
			components = append(components, p[start:i])
		}
	}

	return components
}

// CommonPrefix returns the number of leading components shared by a and b
// according to eq.
func CommonPrefix(a, b []string, eq func(x, y string) bool) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if !eq(a[i], b[i]) {
			return i
		}
	}
	return n
}
