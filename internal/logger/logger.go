package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/polkiloo/pawshope/internal/config"
)

const serviceName = "pawshope"

// New returns the process logger writing JSON to stdout.
func New(cfg *config.Config) *slog.Logger {
	return newLogger(os.Stdout, cfg)
}

// Development builds log debug records with source locations; production sticks to info.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg != nil && cfg.Development() {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}

	attrs := []slog.Attr{slog.String("service", serviceName)}
	if cfg != nil && cfg.PayPalMode != "" {
		attrs = append(attrs, slog.String("paypal_mode", cfg.PayPalMode))
	}
	return slog.New(slog.NewJSONHandler(w, opts).WithAttrs(attrs))
}
