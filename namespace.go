package lexpath

import "strings"

// ToNamespacedPath returns the Win32 long-path form of p: an absolute drive
// path "C:\a" becomes "\\?\C:\a" and a UNC path "\\server\share\a" becomes
// "\\?\UNC\server\share\a". Paths that are already namespaced, relative, or
// rooted without a drive are returned unchanged. Under Posix it returns p.
func (d Dialect) ToNamespacedPath(p string) string {
	if !d.win || p == "" {
		return p
	}
	if len(p) >= 4 && d.seps.Is(p[0]) && d.seps.Is(p[1]) && (p[2] == '?' || p[2] == '.') && d.seps.Is(p[3]) {
		return p
	}

	v, _ := d.splitRoot(p)
	if !v.absolute || v.device == "" {
		return p
	}

	normalized := d.Normalize(p)
	if v.unc() {
		return `\\?\UNC\` + strings.TrimPrefix(normalized, `\\`)
	}
	return `\\?\` + normalized
}
