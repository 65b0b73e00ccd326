package app

import (
	"io"
	"log/slog"
)

// logLevels maps the accepted --log-level values, already vetted by
// NewConfig, onto slog levels.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds the application's isolated logger from a validated
// Config. The global slog default is never touched, so embedders and tests
// each get their own instance.
func newLogger(cfg *Config, logW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevels[cfg.LogLevel]}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(logW, opts)
	} else {
		handler = slog.NewTextHandler(logW, opts)
	}
	return slog.New(handler)
}
