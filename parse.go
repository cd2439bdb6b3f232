package lexpath

import "strings"

// A ParsedPath is the structural decomposition of a path.
//
// For a path p with a non-empty Base, Format(Parse(p)) == Normalize(p).
type ParsedPath struct {
	// Root is the path's root: "/", "\", "C:\", "C:", "\\server\share\", or
	// empty for a relative path.
	Root string `json:"root" yaml:"root"`
	// Dir is the directory portion of the path, excluding Base.
	Dir string `json:"dir" yaml:"dir"`
	// Base is the final component of the path.
	Base string `json:"base" yaml:"base"`
	// Ext is the extension of Base, including its leading '.'.
	Ext string `json:"ext" yaml:"ext"`
	// Name is Base without Ext.
	Name string `json:"name" yaml:"name"`
}

// Parse decomposes the normalized form of p. The empty path parses to the zero
// ParsedPath. A path that is only a root has Dir == Root and an empty Base; a
// single relative component has an empty Dir.
func (d Dialect) Parse(p string) ParsedPath {
	if p == "" {
		return ParsedPath{}
	}

	v, tail := d.clean(p)
	if tail == "" && !v.absolute {
		tail = "."
	}

	parsed := ParsedPath{Root: v.root}
	if i := strings.LastIndexByte(tail, d.seps.Canonical); i >= 0 {
		parsed.Dir, parsed.Base = v.root+tail[:i], tail[i+1:]
	} else {
		parsed.Dir, parsed.Base = v.root, tail
	}
	parsed.Ext = extension(parsed.Base)
	parsed.Name = parsed.Base[:len(parsed.Base)-len(parsed.Ext)]
	return parsed
}

// Format is the inverse of Parse. Base takes precedence over Name and Ext. If
// Dir is set, the result is Dir followed by the separator and Base (no
// separator is added when Dir is the root itself); otherwise it is Root
// followed by Base. Format does not normalize its result.
func (d Dialect) Format(p ParsedPath) string {
	base := p.Base
	if base == "" {
		base = p.Name + p.Ext
	}

	switch {
	case p.Dir != "":
		if p.Dir == p.Root {
			return p.Dir + base
		}
		return p.Dir + string(d.seps.Canonical) + base
	case p.Root != "":
		return p.Root + base
	default:
		return base
	}
}

// Basename returns the last component of the normalized form of p. If suffix is
// non-empty and the component ends with it, it is removed. The empty path has
// an empty base name, as does a path that is only a root.
func (d Dialect) Basename(p, suffix string) string {
	if p == "" {
		return ""
	}

	v, tail := d.clean(p)
	if tail == "" && !v.absolute {
		tail = "."
	}

	base := tail
	if i := strings.LastIndexByte(tail, d.seps.Canonical); i >= 0 {
		base = tail[i+1:]
	}
	if suffix != "" && strings.HasSuffix(base, suffix) {
		base = base[:len(base)-len(suffix)]
	}
	return base
}

// Dirname returns all but the last component of the normalized form of p. A
// path that is only a root, or a root and one component, has the root as its
// directory; a single relative component has the directory ".".
func (d Dialect) Dirname(p string) string {
	if p == "" {
		return "."
	}

	v, tail := d.clean(p)
	i := strings.LastIndexByte(tail, d.seps.Canonical)
	switch {
	case i >= 0:
		return v.root + tail[:i]
	case v.root != "":
		return v.root
	default:
		return "."
	}
}

// Extname returns the extension of the last component of p: the suffix
// starting at its final '.'. The extension is empty if the component has no
// '.', if its only '.' is the leading one, or if it consists only of dots.
func (d Dialect) Extname(p string) string {
	end := len(p)
	for end > 0 && d.seps.Is(p[end-1]) {
		end--
	}
	start := end
	for start > 0 && !d.seps.Is(p[start-1]) {
		start--
	}

	last := p[start:end]
	switch {
	case last == "." || last == "..":
		// The component names a directory relative to its predecessors.
		return extension(d.Basename(p, ""))
	case d.win && (start < 3 || d.seps.Is(p[0]) && d.seps.Is(p[1])):
		// The component may be part of a drive or share.
		return extension(d.Basename(p, ""))
	default:
		return extension(last)
	}
}

// Split splits p immediately following its final separator, separating it into
// a directory and file name component. If there is no separator after the root,
// dir is the root (possibly empty) and file is the remainder. p is not
// normalized, so dir+file == p.
func (d Dialect) Split(p string) (dir, file string) {
	_, rest := d.splitRoot(p)
	rootLen := len(p) - len(rest)

	i := len(rest) - 1
	for i >= 0 && !d.seps.Is(rest[i]) {
		i--
	}
	return p[:rootLen+i+1], rest[i+1:]
}

// SplitExt splits p into a stem and an extension such that stem+ext == p. The
// extension follows the same rules as Extname but is taken from p as given,
// without normalization.
func (d Dialect) SplitExt(p string) (stem, ext string) {
	_, file := d.Split(p)
	ext = extension(file)
	return p[:len(p)-len(ext)], ext
}

// extension returns the extension of a single path component.
func extension(base string) string {
	i := strings.LastIndexByte(base, '.')
	if i <= 0 || strings.Trim(base, ".") == "" {
		return ""
	}
	return base[i:]
}
