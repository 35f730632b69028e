// Package logging builds the zerolog logger used across the partslist tools.
//
// Loggers are constructed once per run and passed down explicitly; nothing
// in this module reads a package-level logger.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Supported output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New returns a logger writing to w.
//
// Level values: "debug", "info", "warn", "error", "disabled" (default: "warn")
// Format values: "console", "json" (default: "console")
//
// Console output is meant for people at a terminal; json for scripts that
// collect the log stream.
func New(w io.Writer, level, format string) zerolog.Logger {
	if strings.ToLower(format) != FormatJSON {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// ParseLevel converts a level name to a zerolog.Level. Unknown names map
// to warn so that a normal run only prints the report.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}
