package util

import (
	"github.com/pgavlin/starlark-go/starlark"
)

// Chdir sets the working directory that path builtins resolve against.
func Chdir(thread *starlark.Thread, wd string) {
	thread.SetLocal("wd", wd)
}

// Getwd returns the working directory set by Chdir, or the empty string if the
// host did not set one.
func Getwd(thread *starlark.Thread) string {
	wd, _ := thread.Local("wd").(string)
	return wd
}
