package util

import (
	"context"
	"iter"

	"github.com/pgavlin/starlark-go/starlark"
)

// SetContext cancels thread with the cause of ctx once ctx is done. The returned
// function must be called once the thread has finished executing.
func SetContext(ctx context.Context, thread *starlark.Thread) (done func()) {
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	return func() { stop() }
}

func All[T starlark.Iterable](v T) iter.Seq[starlark.Value] {
	return func(yield func(starlark.Value) bool) {
		it := v.Iterate()
		defer it.Done()
		var e starlark.Value
		for it.Next(&e) {
			if !yield(e) {
				return
			}
		}
	}
}
