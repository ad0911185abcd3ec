package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the command logger. Output goes to path when set and to
// fallback otherwise. The returned close function must be called on exit.
func newLogger(path, level string, fallback io.Writer) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	out, closeFn := fallback, func() error { return nil }
	if path != "" {
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

// withLogger runs fn with a command logger and closes the log before
// returning, so the caller can exit right away. When logging to a file a
// failure of fn is recorded there as well.
func withLogger(path, level string, fallback io.Writer, fn func(*log.Logger) error) error {
	logger, closeLog, err := newLogger(path, level, fallback)
	if err != nil {
		return err
	}

	runErr := fn(logger)
	if runErr != nil && path != "" {
		logger.Error("command failed", "error", runErr)
	}
	if closeErr := closeLog(); closeErr != nil && runErr == nil {
		return fmt.Errorf("cannot close log file: %w", closeErr)
	}
	return runErr
}
