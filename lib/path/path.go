package path

import (
	"fmt"
	"slices"

	"github.com/pgavlin/lexpath"
	"github.com/pgavlin/lexpath/util"
	fxs "github.com/pgavlin/fx/v2/slices"
	"github.com/pgavlin/starlark-go/starlark"
)

type builtins struct {
	d lexpath.Dialect
}

// unpackPath unpacks the single required path argument shared by most builtins.
func unpackPath(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (string, error) {
	var path string
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "path", &path); err != nil {
		return "", err
	}
	return path, nil
}

// unpackCwd returns the cwd keyword argument, defaulting to the thread's
// working directory.
func unpackCwd(thread *starlark.Thread, fn *starlark.Builtin, kwargs []starlark.Tuple) (string, error) {
	var cwd starlark.Value
	if err := starlark.UnpackArgs(fn.Name(), nil, kwargs, "cwd?", &cwd); err != nil {
		return "", err
	}
	return cwdOrDefault(thread, fn, cwd)
}

// cwdOrDefault accepts a string or None for cwd. None and an omitted argument
// both mean the thread's working directory.
func cwdOrDefault(thread *starlark.Thread, fn *starlark.Builtin, cwd starlark.Value) (string, error) {
	switch cwd := cwd.(type) {
	case nil, starlark.NoneType:
		return util.Getwd(thread), nil
	case starlark.String:
		return string(cwd), nil
	default:
		return "", fmt.Errorf("%v: cwd must be a string or None, not %s", fn.Name(), cwd.Type())
	}
}

// starlark
//
//	def normalize(path):
//	    """
//	    Returns the shortest path equivalent to path: repeated separators are
//	    collapsed, "." elements removed, and ".." elements resolved lexically.
//	    The empty path normalizes to ".".
//	    """
func (b builtins) normalize(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	path, err := unpackPath(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	return starlark.String(b.d.Normalize(path)), nil
}

// starlark
//
//	def join(*components):
//	    """
//	    Joins any number of path elements into a single normalized path.
//	    Empty elements are ignored.
//	    """
func (b builtins) join(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) != 0 {
		return nil, fmt.Errorf("%v: unexpected keyword args", fn.Name())
	}

	var components util.StringList
	if err := components.Unpack(args); err != nil {
		return nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}
	return starlark.String(b.d.Join(components...)), nil
}

// starlark
//
//	def resolve(*components, cwd=None):
//	    """
//	    Resolves a sequence of path elements into an absolute path. Elements
//	    are prepended right to left until an absolute path is formed; if none
//	    is, cwd (or the current working directory) is used as the base.
//	    """
func (b builtins) resolve(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	cwd, err := unpackCwd(thread, fn, kwargs)
	if err != nil {
		return nil, err
	}

	var components util.StringList
	if err := components.Unpack(args); err != nil {
		return nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}

	resolved, err := b.d.Resolve(cwd, components...)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}
	return starlark.String(resolved), nil
}

// starlark
//
//	def relative(from, to, cwd=None):
//	    """
//	    Returns the relative path from from to to. Both are first resolved
//	    against cwd (or the current working directory). Fails if the paths
//	    are on different roots.
//	    """
func (b builtins) relative(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var from, to string
	var cwdArg starlark.Value
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "from", &from, "to", &to, "cwd?", &cwdArg); err != nil {
		return nil, err
	}
	cwd, err := cwdOrDefault(thread, fn, cwdArg)
	if err != nil {
		return nil, err
	}

	rel, err := b.d.Relative(cwd, from, to)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}
	return starlark.String(rel), nil
}

// starlark
//
//	def parse(path):
//	    """
//	    Decomposes path into a parsed_path with the attributes root, dir,
//	    base, ext, and name.
//	    """
func (b builtins) parse(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	path, err := unpackPath(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	return &ParsedPath{ParsedPath: b.d.Parse(path)}, nil
}

// starlark
//
//	def format(path_object=None, root="", dir="", base="", name="", ext=""):
//	    """
//	    Returns the path described by a parsed_path, a dict with the same
//	    keys, or keyword arguments. Keyword arguments override the fields of
//	    path_object. base takes precedence over name and ext.
//	    """
func (b builtins) format(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var p lexpath.ParsedPath
	if len(args) > 1 {
		return nil, fmt.Errorf("%v: got %d arguments, want at most 1", fn.Name(), len(args))
	}
	if len(args) == 1 {
		switch obj := args[0].(type) {
		case *ParsedPath:
			p = obj.ParsedPath
		case *starlark.Dict:
			fields, err := parsedPathFromDict(obj)
			if err != nil {
				return nil, fmt.Errorf("%v: %w", fn.Name(), err)
			}
			p = fields
		default:
			return nil, fmt.Errorf("%v: path_object must be a parsed_path or a dict, not %s", fn.Name(), obj.Type())
		}
	}

	if err := starlark.UnpackArgs(fn.Name(), nil, kwargs,
		"root?", &p.Root, "dir?", &p.Dir, "base?", &p.Base, "name?", &p.Name, "ext?", &p.Ext); err != nil {
		return nil, err
	}
	return starlark.String(b.d.Format(p)), nil
}

func parsedPathFromDict(d *starlark.Dict) (lexpath.ParsedPath, error) {
	var p lexpath.ParsedPath
	fields := map[string]*string{"root": &p.Root, "dir": &p.Dir, "base": &p.Base, "name": &p.Name, "ext": &p.Ext}
	for _, item := range d.Items() {
		key, ok := starlark.AsString(item[0])
		if !ok {
			return p, fmt.Errorf("path_object keys must be strings, not %s", item[0].Type())
		}
		field, ok := fields[key]
		if !ok {
			return p, fmt.Errorf("unexpected path_object key %q", key)
		}
		value, ok := starlark.AsString(item[1])
		if !ok {
			return p, fmt.Errorf("path_object[%q] must be a string, not %s", key, item[1].Type())
		}
		*field = value
	}
	return p, nil
}

// starlark
//
//	def basename(path, suffix=""):
//	    """
//	    Returns the last element of the normalized path. If suffix is given
//	    and the element ends with it, the suffix is removed.
//	    """
func (b builtins) basename(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var path, suffix string
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "path", &path, "suffix?", &suffix); err != nil {
		return nil, err
	}
	return starlark.String(b.d.Basename(path, suffix)), nil
}

// starlark
//
//	def dirname(path):
//	    """
//	    Returns all but the last element of the normalized path. The
//	    directory of a root is the root; the directory of a single relative
//	    element is ".".
//	    """
func (b builtins) dirname(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	path, err := unpackPath(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	return starlark.String(b.d.Dirname(path)), nil
}

// starlark
//
//	def extname(path):
//	    """
//	    Returns the extension of the last element of path, from its final
//	    "." to its end. Leading dots do not start an extension.
//	    """
func (b builtins) extname(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	path, err := unpackPath(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	return starlark.String(b.d.Extname(path)), nil
}

// starlark
//
//	def is_abs(path):
//	    """
//	    Returns True if path is absolute.
//	    """
func (b builtins) isAbs(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	path, err := unpackPath(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	return starlark.Bool(b.d.IsAbsolute(path)), nil
}

// starlark
//
//	def to_namespaced_path(path):
//	    """
//	    Returns the Windows long-path form of an absolute path. Under POSIX,
//	    returns path unchanged.
//	    """
func (b builtins) toNamespacedPath(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	path, err := unpackPath(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	return starlark.String(b.d.ToNamespacedPath(path)), nil
}

// starlark
//
//	def split(path):
//	    """
//	    Splits path immediately following the final separator, separating it
//	    into a directory and file name component.
//	    """
func (b builtins) split(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	path, err := unpackPath(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	dir, file := b.d.Split(path)
	return starlark.Tuple{starlark.String(dir), starlark.String(file)}, nil
}

// starlark
//
//	def splitext(path):
//	    """
//	    Splits path into a pair (root, ext) such that root + ext == path.
//	    Leading periods on the basename are ignored; splitext('.cshrc')
//	    returns ('.cshrc', '').
//	    """
func (b builtins) splitext(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	path, err := unpackPath(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	stem, ext := b.d.SplitExt(path)
	return starlark.Tuple{starlark.String(stem), starlark.String(ext)}, nil
}

// starlark
//
//	def split_list(list):
//	    """
//	    Splits a search-path list on the dialect's delimiter.
//	    """
func (b builtins) splitList(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var list string
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "list", &list); err != nil {
		return nil, err
	}
	return util.StringList(b.d.SplitList(list)).List(), nil
}

// starlark
//
//	def join_list(*paths):
//	    """
//	    Joins paths into a search-path list using the dialect's delimiter.
//	    """
func (b builtins) joinList(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) != 0 {
		return nil, fmt.Errorf("%v: unexpected keyword args", fn.Name())
	}

	paths, err := asStrings(fn, args)
	if err != nil {
		return nil, err
	}
	return starlark.String(b.d.JoinList(paths...)), nil
}

// starlark
//
//	def match(pattern, path):
//	    """
//	    Returns True if the normalized path matches the glob pattern. "*"
//	    matches within an element, "**" matches across elements, and "?"
//	    matches a single character.
//	    """
func (b builtins) match(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var pattern, path string
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "pattern", &pattern, "path", &path); err != nil {
		return nil, err
	}

	matched, err := b.d.Match(pattern, path)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}
	return starlark.Bool(matched), nil
}

func asStrings(fn *starlark.Builtin, args starlark.Tuple) ([]string, error) {
	var bad starlark.Value
	strs := slices.Collect(fxs.Map(args, func(v starlark.Value) string {
		s, ok := starlark.AsString(v)
		if !ok && bad == nil {
			bad = v
		}
		return s
	}))
	if bad != nil {
		return nil, fmt.Errorf("%v: expected strings, got %s", fn.Name(), bad.Type())
	}
	return strs, nil
}
