package lexpath

import (
	"strings"

	"github.com/pgavlin/lexpath/internal/segment"
)

// Resolve resolves a sequence of path elements into an absolute path.
//
// Elements are processed from right to left, prepending each to the result,
// until an absolute element has been seen. If no element is absolute, cwd is
// used as the base. The result is normalized.
//
// Under Win32, an element on a drive or share only combines with elements on
// the same volume: elements on other volumes are skipped, and a rooted element
// without a drive ("\a") takes its drive from the elements to its left or from
// cwd. If cwd is on a different volume than the result, the root of the
// result's volume is used instead.
//
// Resolve fails with an *InvalidInputError if cwd is needed but is empty or
// not absolute.
func (d Dialect) Resolve(cwd string, elem ...string) (string, error) {
	var (
		device   string
		tail     string
		absolute bool
	)
	for i := len(elem) - 1; i >= -1; i-- {
		var p string
		if i >= 0 {
			p = elem[i]
			if p == "" {
				continue
			}
		} else {
			if absolute && cwd == "" {
				// A rooted Win32 path with no drive to borrow.
				break
			}
			if cwd == "" {
				return "", invalidInput("resolve", "no absolute path element and no working directory")
			}
			cv, _ := d.splitRoot(cwd)
			if !cv.absolute {
				return "", invalidInput("resolve", "working directory %q is not absolute", cwd)
			}
			p = cwd
			if device != "" && !d.equal(cv.device, device) {
				p = device + string(d.seps.Canonical)
			}
		}

		v, rest := d.splitRoot(p)
		if v.device != "" {
			switch {
			case device == "":
				device = v.device
			case !d.equal(v.device, device):
				// Not the volume we are resolving against.
				continue
			}
		}

		if !absolute {
			if tail == "" {
				tail = rest
			} else if rest != "" {
				tail = rest + string(d.seps.Canonical) + tail
			}
			absolute = v.absolute
		}

		// Once anchored, keep scanning only to find the volume of a rooted
		// Win32 path.
		if absolute && (device != "" || !d.win) {
			break
		}
	}

	root := string(d.seps.Canonical)
	if device != "" {
		root = device + root
	}
	return d.Normalize(root + tail), nil
}

// Relative returns a path that, when joined to from, is lexically equivalent to
// to. Both arguments are first resolved against cwd with Resolve.
//
// If from and to resolve under different roots, Relative fails with an
// *IncompatibleRootsError. Win32 comparisons ignore case; the components of to
// are emitted as given.
func (d Dialect) Relative(cwd, from, to string) (string, error) {
	from, err := d.Resolve(cwd, from)
	if err != nil {
		return "", err
	}
	to, err = d.Resolve(cwd, to)
	if err != nil {
		return "", err
	}

	fv, ftail := d.splitRoot(from)
	tv, ttail := d.splitRoot(to)
	if !d.equal(fv.root, tv.root) {
		return "", &IncompatibleRootsError{From: from, To: to}
	}

	fs, ts := segment.Split(ftail, d.seps), segment.Split(ttail, d.seps)
	common := segment.CommonPrefix(fs, ts, d.equal)

	parts := make([]string, 0, len(fs)-common+len(ts)-common)
	for range fs[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, ts[common:]...)
	if len(parts) == 0 {
		return ".", nil
	}
	return strings.Join(parts, string(d.seps.Canonical)), nil
}
