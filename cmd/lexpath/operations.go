package main

import "github.com/spf13/cobra"

// An operation is a path operation exposed as a subcommand and through batch.
type operation struct {
	name  string
	usage string
	short string
	args  cobra.PositionalArgs
	flags func(a *app, cmd *cobra.Command)
	run   func(a *app, args []string) (any, error)
}

type segments struct {
	Root     string   `json:"root" yaml:"root"`
	Segments []string `json:"segments" yaml:"segments"`
}

var operations = []*operation{
	{
		name:  "normalize",
		usage: "normalize <path>",
		short: "Normalize a path",
		args:  cobra.ExactArgs(1),
		run: func(a *app, args []string) (any, error) {
			return a.dialect.Normalize(args[0]), nil
		},
	},
	{
		name:  "join",
		usage: "join [<path>...]",
		short: "Join path elements and normalize the result",
		args:  cobra.ArbitraryArgs,
		run: func(a *app, args []string) (any, error) {
			return a.dialect.Join(args...), nil
		},
	},
	{
		name:  "resolve",
		usage: "resolve [<path>...]",
		short: "Resolve path elements into an absolute path",
		args:  cobra.ArbitraryArgs,
		run: func(a *app, args []string) (any, error) {
			return a.dialect.Resolve(a.cwd, args...)
		},
	},
	{
		name:  "relative",
		usage: "relative <from> <to>",
		short: "Compute the relative path from one path to another",
		args:  cobra.ExactArgs(2),
		run: func(a *app, args []string) (any, error) {
			return a.dialect.Relative(a.cwd, args[0], args[1])
		},
	},
	{
		name:  "parse",
		usage: "parse <path>",
		short: "Decompose a path into its root, dir, base, name, and ext",
		args:  cobra.ExactArgs(1),
		run: func(a *app, args []string) (any, error) {
			return a.dialect.Parse(args[0]), nil
		},
	},
	{
		name:  "format",
		usage: "format",
		short: "Build a path from its parts",
		args:  cobra.NoArgs,
		flags: func(a *app, cmd *cobra.Command) {
			flags := cmd.Flags()
			flags.StringVar(&a.parsed.Root, "root", "", "the path's root")
			flags.StringVar(&a.parsed.Dir, "dir", "", "the path's directory")
			flags.StringVar(&a.parsed.Base, "base", "", "the path's final element (overrides --name and --ext)")
			flags.StringVar(&a.parsed.Name, "name", "", "the final element's name")
			flags.StringVar(&a.parsed.Ext, "ext", "", "the final element's extension")
		},
		run: func(a *app, _ []string) (any, error) {
			return a.dialect.Format(a.parsed), nil
		},
	},
	{
		name:  "basename",
		usage: "basename <path>",
		short: "Print the last element of a path",
		args:  cobra.ExactArgs(1),
		flags: func(a *app, cmd *cobra.Command) {
			cmd.Flags().StringVar(&a.suffix, "suffix", "", "a suffix to remove from the result")
		},
		run: func(a *app, args []string) (any, error) {
			return a.dialect.Basename(args[0], a.suffix), nil
		},
	},
	{
		name:  "dirname",
		usage: "dirname <path>",
		short: "Print all but the last element of a path",
		args:  cobra.ExactArgs(1),
		run: func(a *app, args []string) (any, error) {
			return a.dialect.Dirname(args[0]), nil
		},
	},
	{
		name:  "extname",
		usage: "extname <path>",
		short: "Print the extension of a path",
		args:  cobra.ExactArgs(1),
		run: func(a *app, args []string) (any, error) {
			return a.dialect.Extname(args[0]), nil
		},
	},
	{
		name:  "is-abs",
		usage: "is-abs <path>",
		short: "Report whether a path is absolute",
		args:  cobra.ExactArgs(1),
		run: func(a *app, args []string) (any, error) {
			return a.dialect.IsAbsolute(args[0]), nil
		},
	},
	{
		name:  "namespace",
		usage: "namespace <path>",
		short: "Print the Windows long-path form of a path",
		args:  cobra.ExactArgs(1),
		run: func(a *app, args []string) (any, error) {
			return a.dialect.ToNamespacedPath(args[0]), nil
		},
	},
	{
		name:  "segments",
		usage: "segments <path>",
		short: "Print the root and elements of a normalized path",
		args:  cobra.ExactArgs(1),
		run: func(a *app, args []string) (any, error) {
			root, elems := a.dialect.Segments(args[0])
			if elems == nil {
				elems = []string{}
			}
			return segments{Root: root, Segments: elems}, nil
		},
	},
	{
		name:  "match",
		usage: "match <pattern> <path>",
		short: "Report whether a path matches a glob pattern",
		args:  cobra.ExactArgs(2),
		run: func(a *app, args []string) (any, error) {
			return a.dialect.Match(args[0], args[1])
		},
	},
	{
		name:  "split-list",
		usage: "split-list <list>",
		short: "Split a search-path list on the dialect's delimiter",
		args:  cobra.ExactArgs(1),
		run: func(a *app, args []string) (any, error) {
			return a.dialect.SplitList(args[0]), nil
		},
	},
}

func lookupOperation(name string) (*operation, bool) {
	for _, op := range operations {
		if op.name == name {
			return op, true
		}
	}
	return nil, false
}

func (a *app) newOperationCommand(op *operation) *cobra.Command {
	cmd := &cobra.Command{
		Use:   op.usage,
		Short: op.short,
		Args:  op.args,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := op.run(a, args)
			if err != nil {
				return err
			}
			return a.print(v)
		},
	}
	if op.flags != nil {
		op.flags(a, cmd)
	}
	return cmd
}

