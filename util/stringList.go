package util

import (
	"errors"

	"github.com/pgavlin/starlark-go/starlark"
)

type StringList []string

func (l StringList) List() *starlark.List {
	vs := make([]starlark.Value, len(l))
	for i, s := range l {
		vs[i] = starlark.String(s)
	}
	return starlark.NewList(vs)
}

func (l *StringList) Unpack(v starlark.Value) error {
	seq, ok := v.(starlark.Sequence)
	if !ok {
		return errors.New("expected a sequence of strings")
	}

	strings := make([]string, 0, seq.Len())
	for v := range All(seq) {
		s, ok := starlark.AsString(v)
		if !ok {
			return errors.New("expected a sequence of strings")
		}
		strings = append(strings, s)
	}
	*l = strings
	return nil
}
