// Package logging maps the --verbosity flag onto a log/slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// VerbosityLevel defines the logging verbosity.
type VerbosityLevel int

const (
	Verbose VerbosityLevel = iota
	Info
	Warning
	Error
	Off
)

var verbosityNames = map[string]VerbosityLevel{
	"verbose": Verbose,
	"info":    Info,
	"warning": Warning,
	"error":   Error,
	"off":     Off,
}

// ParseVerbosity converts a level name such as "Warning" into a VerbosityLevel.
func ParseVerbosity(name string) (VerbosityLevel, error) {
	level, ok := verbosityNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Off, fmt.Errorf("unknown verbosity level %q (want Verbose, Info, Warning, Error or Off)", name)
	}

	return level, nil
}

func (v VerbosityLevel) String() string {
	switch v {
	case Verbose:
		return "Verbose"
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	default:
		return "Off"
	}
}

func (v VerbosityLevel) slogLevel() slog.Level {
	switch v {
	case Verbose:
		return slog.LevelDebug
	case Info:
		return slog.LevelInfo
	case Warning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// NewLogger returns a text logger writing to w. Off discards everything.
func NewLogger(w io.Writer, level VerbosityLevel) *slog.Logger {
	if level >= Off {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level.slogLevel()}))
}
