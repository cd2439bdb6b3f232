package path

import (
	"fmt"

	"github.com/pgavlin/lexpath"
	"github.com/pgavlin/starlark-go/starlark"
	"github.com/pgavlin/starlark-go/syntax"
)

// ParsedPath is the Starlark representation of a lexpath.ParsedPath.
type ParsedPath struct {
	lexpath.ParsedPath
}

func (p *ParsedPath) String() string {
	return fmt.Sprintf("parsed_path(root = %q, dir = %q, base = %q, ext = %q, name = %q)", p.Root, p.Dir, p.Base, p.Ext, p.Name)
}

// starlark.Value
func (p *ParsedPath) Type() string {
	return "parsed_path"
}

func (p *ParsedPath) Freeze() {} // immutable

func (p *ParsedPath) Truth() starlark.Bool {
	return p.ParsedPath != lexpath.ParsedPath{}
}

func (p *ParsedPath) Hash() (uint32, error) {
	return starlark.String(p.String()).Hash()
}

// starlark.Comparable
func (p *ParsedPath) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	other := y.(*ParsedPath)
	switch op {
	case syntax.EQL:
		return p.ParsedPath == other.ParsedPath, nil
	case syntax.NEQ:
		return p.ParsedPath != other.ParsedPath, nil
	default:
		return false, fmt.Errorf("%s %s %s not implemented", p.Type(), op, y.Type())
	}
}

// starlark.HasAttrs
func (p *ParsedPath) Attr(name string) (starlark.Value, error) {
	switch name {
	case "root":
		return starlark.String(p.Root), nil
	case "dir":
		return starlark.String(p.Dir), nil
	case "base":
		return starlark.String(p.Base), nil
	case "ext":
		return starlark.String(p.Ext), nil
	case "name":
		return starlark.String(p.Name), nil
	default:
		return nil, nil
	}
}

func (p *ParsedPath) AttrNames() []string {
	return []string{"root", "dir", "base", "ext", "name"}
}
