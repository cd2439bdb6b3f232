package lexpath

// The functions below apply the host dialect. See the Dialect methods of the
// same name.

func Separator() byte { return host.Separator() }
func Delimiter() byte { return host.Delimiter() }

func Normalize(p string) string             { return host.Normalize(p) }
func Join(elem ...string) string            { return host.Join(elem...) }
func IsAbsolute(p string) bool              { return host.IsAbsolute(p) }
func Parse(p string) ParsedPath             { return host.Parse(p) }
func Format(p ParsedPath) string            { return host.Format(p) }
func Basename(p, suffix string) string      { return host.Basename(p, suffix) }
func Dirname(p string) string               { return host.Dirname(p) }
func Extname(p string) string               { return host.Extname(p) }
func ToNamespacedPath(p string) string      { return host.ToNamespacedPath(p) }
func Split(p string) (dir, file string)     { return host.Split(p) }
func SplitExt(p string) (stem, ext string)  { return host.SplitExt(p) }
func SplitList(list string) []string        { return host.SplitList(list) }
func JoinList(paths ...string) string       { return host.JoinList(paths...) }
func Equal(a, b string) bool                { return host.Equal(a, b) }
func Match(pattern, p string) (bool, error) { return host.Match(pattern, p) }

func Segments(p string) (root string, segments []string) {
	return host.Segments(p)
}

func Resolve(cwd string, elem ...string) (string, error) {
	return host.Resolve(cwd, elem...)
}

func Relative(cwd, from, to string) (string, error) {
	return host.Relative(cwd, from, to)
}
