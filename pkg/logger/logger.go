package logger

import (
	"io"
	"log/slog"
	"os"
)

type Option func(*slog.HandlerOptions)

// WithLevel overrides the level picked from env.
func WithLevel(level slog.Level) Option {
	return func(o *slog.HandlerOptions) { o.Level = level }
}

// Init installs the default logger: readable text at debug level when env is
// "local", JSON at info level otherwise.
func Init(env string, opts ...Option) *slog.Logger {
	return InitWithWriter(env, os.Stdout, opts...)
}

func InitWithWriter(env string, w io.Writer, opts ...Option) *slog.Logger {
	l := New(env, w, opts...)
	slog.SetDefault(l)
	return l
}

func New(env string, w io.Writer, opts ...Option) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if env == "local" {
		handlerOpts.Level = slog.LevelDebug
	}
	for _, opt := range opts {
		opt(handlerOpts)
	}

	var handler slog.Handler
	if env == "local" {
		handler = slog.NewTextHandler(w, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(w, handlerOpts)
	}
	return slog.New(handler)
}
