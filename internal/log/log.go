// Package log builds the slog handler used by the command-line tools.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

const (
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
	JSONFormat   = "json"
)

var ErrUnknownFormat = errors.New("unknown log format")

// NewHandler creates a [slog.Handler] that writes to w at the given level and
// in the given format. Empty strings select the "info" level and the "text"
// format.
func NewHandler(w io.Writer, level, format string) (slog.Handler, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := charmlog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, err
	}

	var formatter charmlog.Formatter
	switch strings.ToLower(format) {
	case TextFormat, "":
		formatter = charmlog.TextFormatter
	case LogfmtFormat:
		formatter = charmlog.LogfmtFormatter
	case JSONFormat:
		formatter = charmlog.JSONFormatter
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		Formatter:       formatter,
		ReportTimestamp: formatter != charmlog.TextFormatter,
	}), nil
}
