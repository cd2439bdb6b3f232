package lexpath

import "strings"

// SplitList splits a search-path list, such as the value of PATH, on the
// dialect's delimiter. Under Win32, a delimiter inside double quotes does not
// split and the quotes are removed. An empty list yields an empty slice.
func (d Dialect) SplitList(list string) []string {
	if list == "" {
		return []string{}
	}
	if !d.win {
		return strings.Split(list, string(d.delim))
	}

	var (
		entries []string
		entry   strings.Builder
		quoted  bool
	)
	for i := 0; i < len(list); i++ {
		switch c := list[i]; {
		case c == '"':
			quoted = !quoted
		case c == d.delim && !quoted:
			entries = append(entries, entry.String())
			entry.Reset()
		default:
			entry.WriteByte(c)
		}
	}
	return append(entries, entry.String())
}

// JoinList joins paths into a search-path list using the dialect's delimiter.
// Under Win32, entries containing the delimiter are quoted.
func (d Dialect) JoinList(paths ...string) string {
	var b strings.Builder
	for i, p := range paths {
		if i > 0 {
			b.WriteByte(d.delim)
		}
		if d.win && strings.IndexByte(p, d.delim) != -1 {
			b.WriteByte('"')
			b.WriteString(p)
			b.WriteByte('"')
		} else {
			b.WriteString(p)
		}
	}
	return b.String()
}
