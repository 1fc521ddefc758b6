package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// logger receives library progress. It discards everything until
// initLogger enables it with --verbose.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func initLogger() error {
	if !verbose || quiet {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return nil
}
