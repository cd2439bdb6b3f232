package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/pgavlin/starlark-go/starlark"
)

func main() {
	if err := newRootCommand(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	msg := err.Error()
	if serr := (*starlark.EvalError)(nil); errors.As(err, &serr) {
		msg = serr.Backtrace()
	}
	colorRed.Fprintln(w, strings.TrimSuffix(msg, "\n"))
}
