package lexpath

import (
	"strings"

	"github.com/pgavlin/lexpath/internal/segment"
)

// Normalize returns the shortest path equivalent to p by purely lexical
// processing:
//
//  1. Runs of separators collapse to one (Win32 writes '\').
//  2. "." elements are removed.
//  3. ".." elements remove the preceding element. At an absolute root they are
//     dropped; at the front of a relative path they are kept.
//  4. Trailing separators are removed unless only the root remains.
//
// The empty path normalizes to ".". A UNC share ("\\server\share\") is part of
// the root and is never removed by "..". Under Win32, a relative result whose
// first element looks like a drive ("C:") keeps a leading ".\" so that it
// normalizes to itself.
func (d Dialect) Normalize(p string) string {
	if p == "" {
		return "."
	}

	v, tail := d.clean(p)
	if len(p) == len(v.root)+len(tail) && strings.HasPrefix(p, v.root) && strings.HasSuffix(p, tail) && tail != "" {
		return p
	}
	return v.join(tail)
}

// Join joins any number of path elements into a single path, separating them
// with the dialect's separator, and normalizes the result. Empty elements are
// ignored; if there are no non-empty elements, Join returns ".".
func (d Dialect) Join(elem ...string) string {
	size := 0
	for _, e := range elem {
		size += len(e)
	}
	if size == 0 {
		return "."
	}

	buf := make([]byte, 0, size+len(elem)-1)
	for _, e := range elem {
		if e == "" {
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, d.seps.Canonical)
		}
		buf = append(buf, e...)
	}
	return d.Normalize(string(buf))
}

// IsAbsolute returns true if p has a root that anchors it: a leading separator,
// a drive followed by a separator, or a UNC share. A bare drive ("C:a") is not
// absolute.
func (d Dialect) IsAbsolute(p string) bool {
	v, _ := d.splitRoot(p)
	return v.absolute
}

// Segments returns the root of p and the components that follow it after
// normalization. A relative path that normalizes to "." has no components.
func (d Dialect) Segments(p string) (root string, segments []string) {
	v, tail := d.clean(p)
	return v.root, segment.Split(tail, d.seps)
}

// Equal returns true if a and b normalize to the same path. Win32 comparisons
// ignore case.
func (d Dialect) Equal(a, b string) bool {
	return d.equal(d.Normalize(a), d.Normalize(b))
}
