package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/pgavlin/lexpath"
	"github.com/pgavlin/lexpath/cmd/lexpath/internal/term"
	"github.com/pgavlin/lexpath/internal/config"
	"github.com/pgavlin/lexpath/internal/log"
	"github.com/pgavlin/lexpath/util"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var version = "development"

// app holds the settings shared by every command.
type app struct {
	configPath string
	dialect    dialectFlag
	cwd        string
	output     outputFlag
	logLevel   string
	logFormat  string
	noColor    bool

	config *config.Config

	// Operation-specific flags.
	suffix string
	parsed lexpath.ParsedPath

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type dialectFlag struct {
	lexpath.Dialect
}

var _ pflag.Value = (*dialectFlag)(nil)

func (f *dialectFlag) String() string {
	if f.Dialect == (lexpath.Dialect{}) {
		return "host"
	}
	return f.Name()
}

func (f *dialectFlag) Set(v string) error {
	d, err := lexpath.DialectByName(v)
	if err != nil {
		return err
	}
	f.Dialect = d
	return nil
}

func (f *dialectFlag) Type() string {
	return "posix|win32|host"
}

type outputFlag string

const (
	outputText outputFlag = "text"
	outputJSON outputFlag = "json"
	outputYAML outputFlag = "yaml"
)

var _ pflag.Value = (*outputFlag)(nil)

func (f *outputFlag) String() string {
	return string(*f)
}

func (f *outputFlag) Set(v string) error {
	switch o := outputFlag(v); o {
	case outputText, outputJSON, outputYAML:
		*f = o
		return nil
	default:
		return fmt.Errorf("unknown output format %q", v)
	}
}

func (f *outputFlag) Type() string {
	return "text|json|yaml"
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{output: outputText, stdin: stdin, stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Version:       version,
		Use:           "lexpath",
		Short:         "lexpath manipulates POSIX and Windows paths without touching the filesystem.",
		Long:          `Lexical path manipulation for POSIX and Windows paths.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Flags())
		},
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.VarP(&a.dialect, "dialect", "D", "the path dialect to use")
	flags.StringVar(&a.cwd, "cwd", "", "the working directory for resolve and relative (defaults to the process's working directory)")
	flags.VarP(&a.output, "output", "o", "the output format")
	flags.StringVar(&a.configPath, "config", "", "the configuration file to load (defaults to ./"+config.FileName+" or ~/"+config.FileName+")")
	flags.StringVar(&a.logLevel, "log-level", "", "the log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "the log format (text, logfmt, json)")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	util.Must(rootCmd.MarkPersistentFlagFilename("config", "toml"))

	for _, op := range operations {
		rootCmd.AddCommand(a.newOperationCommand(op))
	}
	rootCmd.AddCommand(a.newBatchCommand())
	rootCmd.AddCommand(a.newEvalCommand())
	rootCmd.AddCommand(a.newConfigCommand())

	return rootCmd
}

// init applies the configuration file beneath any explicitly-set flags and
// configures logging and color.
func (a *app) init(flags *pflag.FlagSet) error {
	path, err := config.Find(a.configPath)
	if err != nil {
		return err
	}
	a.config = &config.Config{}
	if path != "" {
		if a.config, err = config.LoadConfigFile(path); err != nil {
			return err
		}
	}

	var errs []error
	if !flags.Changed("dialect") {
		errs = append(errs, a.dialect.Set(a.config.Dialect))
	}
	if !flags.Changed("output") && a.config.Output != "" {
		errs = append(errs, a.output.Set(a.config.Output))
	}
	if !flags.Changed("log-level") {
		a.logLevel = a.config.LogLevel
	}
	if !flags.Changed("log-format") {
		a.logFormat = a.config.LogFormat
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	h, err := log.NewHandler(a.stderr, a.logLevel, a.logFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(h))

	color.NoColor = a.noColor || a.config.Color != nil && !*a.config.Color || !isTerminal(a.stdout)

	if !flags.Changed("cwd") {
		a.cwd = a.config.Cwd
		// The process's working directory is only meaningful in the host dialect.
		if a.cwd == "" && a.dialect.Dialect == lexpath.Default() {
			if a.cwd, err = os.Getwd(); err != nil {
				return err
			}
		}
	}

	slog.Debug("configured", "config", path, "dialect", a.dialect.Name(), "cwd", a.cwd, "output", a.output)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f)
}
