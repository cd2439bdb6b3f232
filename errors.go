package lexpath

import "fmt"

// An InvalidInputError is returned when a required argument is missing or
// cannot be interpreted, e.g. when Resolve finds no absolute element and no
// working directory was supplied.
type InvalidInputError struct {
	// Op names the operation that failed.
	Op string
	// Reason describes what was wrong with the input.
	Reason string
}

func invalidInput(op, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%v: %v", e.Op, e.Reason)
}

// An IncompatibleRootsError is returned by Relative when its arguments resolve
// under different roots, e.g. different drives. No relative path can span them.
type IncompatibleRootsError struct {
	// From and To hold the resolved arguments.
	From string
	To   string
}

func (e *IncompatibleRootsError) Error() string {
	return fmt.Sprintf("relative: %q and %q do not share a root", e.From, e.To)
}
