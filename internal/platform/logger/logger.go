// Package logger builds the application's slog logger and carries request-scoped
// loggers through a context.Context.
package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/SscSPs/finance_engine/internal/platform/config"
	"github.com/google/uuid"
)

// contextKey is the key used to store the logger in a context.
// Using a custom type prevents collisions.
type contextKey string

const loggerKey = contextKey("logger")

// New creates a logger writing to w with the level and format from cfg.
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithRequestLogger derives a logger tagged with a fresh request ID from base and
// stores it in ctx. The request ID is returned for correlation by the caller.
func WithRequestLogger(ctx context.Context, base *slog.Logger, operation string) (context.Context, string) {
	requestID := uuid.NewString()
	requestLogger := base.With(
		slog.String("request_id", requestID),
		slog.String("operation", operation),
	)
	return WithLogger(ctx, requestLogger), requestID
}

// FromContext retrieves the request-scoped logger from ctx.
// It returns the default logger if none is found.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}
