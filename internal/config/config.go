package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/pgavlin/lexpath"
)

// FileName is the name of the configuration file searched for by Find.
const FileName = ".lexpath.toml"

var (
	outputs    = []string{"text", "json", "yaml"}
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "logfmt", "json"}
)

type Config struct {
	Dialect string `toml:"dialect,omitempty" json:"dialect,omitempty" yaml:"dialect,omitempty"`
	Cwd     string `toml:"cwd,omitempty" json:"cwd,omitempty" yaml:"cwd,omitempty"`
	Output  string `toml:"output,omitempty" json:"output,omitempty" yaml:"output,omitempty"`

	LogLevel  string `toml:"log-level,omitempty" json:"log-level,omitempty" yaml:"log-level,omitempty"`
	LogFormat string `toml:"log-format,omitempty" json:"log-format,omitempty" yaml:"log-format,omitempty"`

	Color *bool `toml:"color,omitempty" json:"color,omitempty" yaml:"color,omitempty"`
}

// PathDialect returns the dialect named by the configuration. An empty name
// selects the host dialect.
func (c *Config) PathDialect() (lexpath.Dialect, error) {
	if c.Dialect == "" {
		return lexpath.Default(), nil
	}
	return lexpath.DialectByName(c.Dialect)
}

// Find returns the path of the configuration file to load. If explicit is
// non-empty it is returned as-is. Otherwise the working directory and then the
// user's home directory are searched. Find returns the empty string if no
// configuration file exists.
func Find(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	candidates := []string{FileName}
	if home, err := homedir.Dir(); err == nil {
		candidates = append(candidates, filepath.Join(home, FileName))
	}
	for _, path := range candidates {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			return path, nil
		case !errors.Is(err, os.ErrNotExist):
			return "", err
		}
	}
	return "", nil
}

func LoadConfigFile(path string) (*Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := LoadConfigBytes(contents)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return c, nil
}

func LoadConfigBytes(contents []byte) (*Config, error) {
	var c Config
	if err := toml.Unmarshal(contents, &c); err != nil {
		return nil, err
	}

	var errs []error
	d, err := c.PathDialect()
	if err != nil {
		errs = append(errs, err)
	}
	if c.Cwd != "" && err == nil && !d.IsAbsolute(c.Cwd) {
		errs = append(errs, fmt.Errorf("cwd %q is not an absolute %v path", c.Cwd, d))
	}
	errs = append(errs, checkOneOf("output", c.Output, outputs))
	errs = append(errs, checkOneOf("log-level", c.LogLevel, logLevels))
	errs = append(errs, checkOneOf("log-format", c.LogFormat, logFormats))
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &c, nil
}

func checkOneOf(key, value string, valid []string) error {
	if value == "" || slices.Contains(valid, value) {
		return nil
	}
	return fmt.Errorf("invalid %v %q: must be one of %v", key, value, strings.Join(valid, ", "))
}

func WriteConfigFile(path string, c *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Write(f, c); err != nil {
		return err
	}
	return f.Close()
}

// Write writes c to w in TOML format.
func Write(w io.Writer, c *Config) error {
	var err error
	has := false
	print := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
		has = true
	}
	printSection := func(format string, args ...any) {
		if has && err == nil {
			_, err = fmt.Fprintln(w)
		}
		print(format, args...)
	}

	if c.Dialect != "" {
		print("dialect = %v\n", encodeValue(c.Dialect))
	}
	if c.Cwd != "" {
		print("cwd = %v\n", encodeValue(c.Cwd))
	}
	if c.Output != "" {
		print("output = %v\n", encodeValue(c.Output))
	}
	if c.Color != nil {
		print("color = %v\n", encodeValue(*c.Color))
	}

	section := printSection
	if c.LogLevel != "" {
		section("log-level = %v\n", encodeValue(c.LogLevel))
		section = print
	}
	if c.LogFormat != "" {
		section("log-format = %v\n", encodeValue(c.LogFormat))
	}

	return err
}

func encodeValue(v any) string {
	var b strings.Builder
	err := toml.NewEncoder(&b).Encode(v)
	if err != nil {
		return "<invalid>"
	}
	return b.String()
}
