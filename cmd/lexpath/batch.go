package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-multierror"
	"github.com/pgavlin/lexpath/cmd/lexpath/internal/term"
	"github.com/pgavlin/lexpath/internal/lines"
	fxs "github.com/pgavlin/fx/v2/slices"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type batchResult struct {
	line  int
	value any
	err   error
	ran   bool
}

func (a *app) newBatchCommand() *cobra.Command {
	var (
		jobs      int
		keepGoing bool
	)

	cmd := &cobra.Command{
		Use:   "batch <operation> [<arg>...]",
		Short: "Apply an operation to each line of standard input",
		Long: `Apply an operation to each line of standard input.

Each line is appended to the given arguments and the operation is run on the
result. Lines are processed concurrently; results are written in input order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := lookupOperation(args[0])
			if !ok {
				return fmt.Errorf("unknown operation %q", args[0])
			}
			if err := op.args(cmd, append(slices.Clip(args[1:]), "")); err != nil {
				return fmt.Errorf("%v does not accept a path from each line: %w", op.name, err)
			}
			if jobs < 1 {
				return errors.New("--jobs must be at least 1")
			}
			return a.batch(cmd.Context(), op, args[1:], jobs, keepGoing)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "the maximum number of lines to process concurrently")
	flags.BoolVarP(&keepGoing, "keep-going", "k", false, "continue past lines that fail")
	flags.StringVar(&a.suffix, "suffix", "", "a suffix to remove (basename only)")
	flags.SetInterspersed(false)

	return cmd
}

func (a *app) batch(ctx context.Context, op *operation, fixed []string, jobs int, keepGoing bool) error {
	var inputs []string
	w := lines.NewWriter(func(line string) { inputs = append(inputs, line) })
	if _, err := io.Copy(w, a.stdin); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	slog.Debug("batch started", "operation", op.name, "lines", len(inputs), "jobs", jobs)

	progress := newProgress(a.stderr, len(inputs))
	results := make([]batchResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, line := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			v, err := op.run(a, append(slices.Clip(fixed), line))
			results[i] = batchResult{line: i + 1, value: v, err: err, ran: true}
			progress.step()
			if err != nil && !keepGoing {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			return nil
		})
	}
	err := g.Wait()
	progress.done()

	// Without --keep-going, only the results that precede the first failure are written.
	var merr *multierror.Error
	completed := results
	for i, r := range results {
		if !r.ran || r.err != nil && !keepGoing {
			completed = results[:i]
			break
		}
		if r.err != nil {
			merr = multierror.Append(merr, fmt.Errorf("line %d: %w", r.line, r.err))
		}
	}
	succeeded := slices.Collect(fxs.Filter(completed, func(r batchResult) bool { return r.err == nil }))
	if werr := a.writeBatch(succeeded); werr != nil {
		return werr
	}

	failed := len(slices.Collect(fxs.Filter(results, func(r batchResult) bool { return r.err != nil })))
	slog.Info("batch complete",
		"operation", op.name,
		"succeeded", humanize.Comma(int64(len(succeeded))),
		"failed", humanize.Comma(int64(failed)))

	if err != nil {
		return err
	}
	return merr.ErrorOrNil()
}

func (a *app) writeBatch(results []batchResult) error {
	values := slices.AppendSeq(make([]any, 0, len(results)), fxs.Map(results, func(r batchResult) any { return r.value }))
	if a.output != outputText {
		return a.print(values)
	}
	for _, v := range values {
		if err := a.print(v); err != nil {
			return err
		}
	}
	return nil
}

// progress renders a line count on a terminal.
type progress struct {
	w       io.Writer
	total   string
	enabled bool

	count atomic.Int64
	m     sync.Mutex
}

func newProgress(w io.Writer, total int) *progress {
	return &progress{w: w, total: humanize.Comma(int64(total)), enabled: isTerminal(w)}
}

func (p *progress) step() {
	n := p.count.Add(1)
	if !p.enabled {
		return
	}

	p.m.Lock()
	defer p.m.Unlock()
	term.ClearLine(p.w)
	fmt.Fprintf(p.w, "%s/%s", humanize.Comma(n), p.total)
}

func (p *progress) done() {
	if p.enabled {
		term.ClearLine(p.w)
	}
}
