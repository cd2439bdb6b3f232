package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pgavlin/lexpath/internal/config"
	"github.com/spf13/cobra"
)

// effectiveConfig returns the configuration after flags have been applied.
func (a *app) effectiveConfig(includeCwd bool) *config.Config {
	c := &config.Config{
		Dialect:   a.dialect.Name(),
		Output:    string(a.output),
		LogLevel:  a.logLevel,
		LogFormat: a.logFormat,
		Color:     a.config.Color,
	}
	if includeCwd {
		c.Cwd = a.cwd
	}
	if a.noColor {
		noColor := false
		c.Color = &noColor
	}
	return c
}

func (a *app) newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create configuration files",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := a.effectiveConfig(true)
			if a.output == outputText {
				return config.Write(a.stdout, c)
			}
			return a.print(c)
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [<path>]",
		Short: "Write a configuration file with the current settings",
		Long: `Write a configuration file with the current settings.

The file is written to ./` + config.FileName + ` unless a path is given. The
working directory is only recorded if it was set explicitly.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileName
			if len(args) == 1 {
				path = args[0]
			}

			if !force {
				_, err := os.Stat(path)
				switch {
				case err == nil:
					return fmt.Errorf("%v already exists (use --force to overwrite it)", path)
				case !errors.Is(err, os.ErrNotExist):
					return err
				}
			}

			includeCwd := cmd.Flags().Changed("cwd") || a.config.Cwd != ""
			if err := config.WriteConfigFile(path, a.effectiveConfig(includeCwd)); err != nil {
				return err
			}
			slog.Info("wrote configuration", "path", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(initCmd)
	return configCmd
}
