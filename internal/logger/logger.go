// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

const (
	defaultTimeFormat = "2006/01/02 15:04:05"

	// LevelTrace is used for logging raw external commands before they run.
	LevelTrace = slog.Level(-8)
)

var (
	// DefaultLogger is the logger used by the package-level logging functions.
	DefaultLogger *slog.Logger

	isDebugMode bool

	// LevelNames maps the custom levels to their printable labels.
	LevelNames = map[slog.Leveler]string{
		LevelTrace: "TRACE",
	}
)

// Options control verbosity and output modes of the logger.
type Options struct {
	// Verbosity is the number of -v occurrences: 1 enables debug, 2 or more trace.
	Verbosity int

	// Quiet raises the level floor so only warnings and errors are emitted.
	Quiet bool
}

func init() {
	// Avoid a nil logger before Setup runs, so early calls and tests work.
	DefaultLogger = slog.New(newHandler(os.Stderr, createHandlerOptions(new(slog.LevelVar))))
}

// Setup configures the default logger according to the given options.
func Setup(opts Options) {
	logLevel := new(slog.LevelVar)
	switch {
	case opts.Quiet:
		logLevel.Set(slog.LevelWarn)
	case opts.Verbosity == 1:
		logLevel.Set(slog.LevelDebug)
	case opts.Verbosity > 1:
		logLevel.Set(LevelTrace)
	}

	DefaultLogger = slog.New(newHandler(os.Stderr, createHandlerOptions(logLevel)))
	slog.SetDefault(DefaultLogger)

	if opts.Verbosity > 0 && !opts.Quiet {
		DefaultLogger.Debug("Enable verbose logging")
		isDebugMode = true
	}
}

func createHandlerOptions(logLevel *slog.LevelVar) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				t := a.Value.Time()
				a.Value = slog.StringValue(t.Format(defaultTimeFormat))
				return a
			}
			if a.Key == slog.LevelKey {
				level := a.Value.Any().(slog.Level)
				levelLabel, exists := LevelNames[level]
				if !exists {
					levelLabel = level.String()
				}
				a.Value = slog.StringValue(levelLabel)
				return a
			}
			return a
		},
	}
}

// IsDebugMode method checks if the debug mode is enabled.
func IsDebugMode() bool {
	return isDebugMode
}

// Trace method logs message with "trace" level.
func Trace(a ...interface{}) {
	DefaultLogger.Log(context.Background(), LevelTrace, fmt.Sprint(a...))
}

// Tracef method logs message with "trace" level and formats it.
func Tracef(format string, a ...interface{}) {
	DefaultLogger.Log(context.Background(), LevelTrace, fmt.Sprintf(format, a...))
}

// Debug method logs message with "debug" level.
func Debug(a ...interface{}) {
	DefaultLogger.Debug(fmt.Sprint(a...))
}

// Debugf method logs message with "debug" level and formats it.
func Debugf(format string, a ...interface{}) {
	DefaultLogger.Debug(fmt.Sprintf(format, a...))
}

// Info method logs message with "info" level.
func Info(a ...interface{}) {
	DefaultLogger.Info(fmt.Sprint(a...))
}

// Infof method logs message with "info" level and formats it.
func Infof(format string, a ...interface{}) {
	DefaultLogger.Info(fmt.Sprintf(format, a...))
}

// Warn method logs message with "warn" level.
func Warn(a ...interface{}) {
	DefaultLogger.Warn(fmt.Sprint(a...))
}

// Warnf method logs message with "warn" level and formats it.
func Warnf(format string, a ...interface{}) {
	DefaultLogger.Warn(fmt.Sprintf(format, a...))
}

// Error method logs message with "error" level.
func Error(a ...interface{}) {
	DefaultLogger.Error(fmt.Sprint(a...))
}

// Errorf method logs message with "error" level and formats it.
func Errorf(format string, a ...interface{}) {
	DefaultLogger.Error(fmt.Sprintf(format, a...))
}
