package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/pgavlin/lexpath/lib/path"
	"github.com/pgavlin/lexpath/util"
	"github.com/pgavlin/starlark-go/starlark"
	"github.com/rjeczalik/notify"
	"github.com/spf13/cobra"
)

func (a *app) newEvalCommand() *cobra.Command {
	var (
		timeout time.Duration
		watch   bool
	)

	cmd := &cobra.Command{
		Use:   "eval <script>",
		Short: "Run a Starlark script with the path module",
		Long: `Run a Starlark script with the path module.

The module is predeclared as "path" and uses the selected dialect; path.posix
and path.win32 are always available. resolve and relative use the working
directory given by --cwd.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !watch {
				return a.eval(cmd.Context(), args[0], timeout)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.watch(ctx, args[0], timeout)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 0, "cancel the script after the given duration")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-run the script each time it changes")

	return cmd
}

func (a *app) eval(ctx context.Context, script string, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, timeout, fmt.Errorf("timed out after %v", timeout))
		defer cancel()
	}

	thread := &starlark.Thread{Name: script, Print: util.Print}
	util.SetStdio(thread, a.stdout, a.stderr)
	util.Chdir(thread, a.cwd)

	done := util.SetContext(ctx, thread)
	defer done()

	slog.Debug("evaluating", "script", script, "dialect", a.dialect.Name())
	_, err := starlark.ExecFile(thread, script, nil, starlark.StringDict{
		"path": path.NewModule(a.dialect.Dialect),
	})
	return err
}

func (a *app) watch(ctx context.Context, script string, timeout time.Duration) error {
	abs, err := filepath.Abs(script)
	if err != nil {
		return err
	}
	// Events carry resolved paths.
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	// Editors often replace files rather than writing them in place, so watch
	// the containing directory.
	events := make(chan notify.EventInfo, 100)
	if err := notify.Watch(filepath.Dir(abs), events, notify.All); err != nil {
		return err
	}
	defer notify.Stop(events)

	run := func() {
		if err := a.eval(ctx, script, timeout); err != nil {
			printError(a.stderr, err)
		}
	}
	run()

	dirty := false
	rate := time.NewTicker(500 * time.Millisecond)
	defer rate.Stop()
	for {
		select {
		case event := <-events:
			if event.Path() == abs {
				slog.Debug("script changed", "path", abs, "event", event.Event())
				dirty = true
			}
		case <-rate.C:
			if dirty {
				dirty = false
				run()
			}
		case <-ctx.Done():
			return nil
		}
	}
}
