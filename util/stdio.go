package util

import (
	"fmt"
	"io"
	"os"

	"github.com/pgavlin/starlark-go/starlark"
)

type stdio struct {
	stdout io.Writer
	stderr io.Writer
}

// SetStdio sets the writers that a thread's print output and diagnostics go to.
func SetStdio(thread *starlark.Thread, stdout, stderr io.Writer) {
	thread.SetLocal("stdio", stdio{stdout: stdout, stderr: stderr})
}

// Stdio returns the writers set by SetStdio. A thread without them, or with a
// nil writer, uses the process's standard output and error.
func Stdio(thread *starlark.Thread) (stdout, stderr io.Writer) {
	s, _ := thread.Local("stdio").(stdio)
	stdout, stderr = s.stdout, s.stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return stdout, stderr
}

// Print writes msg and a newline to the thread's standard output. It is
// suitable for use as a thread's Print function.
func Print(thread *starlark.Thread, msg string) {
	stdout, _ := Stdio(thread)
	fmt.Fprintln(stdout, msg)
}
