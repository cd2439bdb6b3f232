package path

import (
	"github.com/pgavlin/lexpath"
	"github.com/pgavlin/starlark-go/starlark"
	"github.com/pgavlin/starlark-go/starlarkstruct"
)

// def path():
//     """
//     The path module manipulates path strings without touching the
//     filesystem. The top-level functions use the host's path dialect;
//     path.posix and path.win32 provide the same functions for a specific
//     dialect regardless of the host.
//     """
//
//     @attribute
//     def sep():
//         """
//         The dialect's path separator.
//         """
//
//     @attribute
//     def delimiter():
//         """
//         The dialect's search-path list delimiter.
//         """
//
//     @attribute
//     def posix():
//         """
//         The path module for the POSIX dialect.
//         """
//
//     @attribute
//     def win32():
//         """
//         The path module for the Windows dialect.
//         """
//
//starlark:module
var Module = NewModule(lexpath.Default())

// NewModule returns a path module whose top-level functions use the given
// dialect.
func NewModule(d lexpath.Dialect) *starlarkstruct.Module {
	return newModule("path", d, starlark.StringDict{
		"posix": newModule("path.posix", lexpath.Posix, nil),
		"win32": newModule("path.win32", lexpath.Win32, nil),
	})
}

func newModule(name string, d lexpath.Dialect, extra starlark.StringDict) *starlarkstruct.Module {
	b := builtins{d}

	members := starlark.StringDict{
		"sep":       starlark.String(string(rune(d.Separator()))),
		"delimiter": starlark.String(string(rune(d.Delimiter()))),
	}
	for fname, fn := range map[string]func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error){
		"normalize":          b.normalize,
		"join":               b.join,
		"resolve":            b.resolve,
		"relative":           b.relative,
		"parse":              b.parse,
		"format":             b.format,
		"basename":           b.basename,
		"dirname":            b.dirname,
		"extname":            b.extname,
		"is_abs":             b.isAbs,
		"to_namespaced_path": b.toNamespacedPath,
		"split":              b.split,
		"splitext":           b.splitext,
		"split_list":         b.splitList,
		"join_list":          b.joinList,
		"match":              b.match,
	} {
		members[fname] = starlark.NewBuiltin(name+"."+fname, fn)
	}
	for k, v := range extra {
		members[k] = v
	}

	return &starlarkstruct.Module{Name: name, Members: members}
}
