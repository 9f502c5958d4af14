package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the process logger from the global flags.
// A log file always wins. Without one, fullscreen frontends discard logs so
// they do not corrupt the alternate screen, and other commands use stderr.
// The returned close func is never nil.
func newLogger(levelName, path string, fullscreen bool) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, nil, fmt.Errorf("log: %w", err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() error { return nil }
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log: failed to open %s: %w", path, err)
		}
		out = f
		closeFn = f.Close
	case fullscreen:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          "flappy",
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}

// mustLogger is newLogger for command handlers: errors are fatal.
func mustLogger(fullscreen bool) (*log.Logger, func() error) {
	logger, closeFn, err := newLogger(flagLogLevel, flagLogFile, fullscreen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closeFn
}
