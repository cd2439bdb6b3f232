package util

import "fmt"

// Must panics if err is non-nil. It is meant for errors that indicate a
// programming mistake, such as registering flags that do not exist.
func Must(err error) {
	if err != nil {
		panic(fmt.Errorf("unexpected error: %w", err))
	}
}
