package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
)

// newLogger builds a tint-backed slog logger writing to w.
func newLogger(w io.Writer, level string, noColor bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	return slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: "15:04:05",
			NoColor:    noColor,
		}),
	), nil
}
