package main

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"

	"toyrobot/internal/config"
)

func newLogger(output io.Writer, cfg config.Config) *slog.Logger {
	if cfg.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: cfg.LogLevel}))
	}
	handler := tint.NewHandler(output, &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: "2006-01-02 15:04:05.000Z07:00",
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Value.Kind() == slog.KindAny {
				if _, ok := a.Value.Any().(error); ok {
					return tint.Attr(9, a)
				}
			}
			return a
		},
	})
	return slog.New(handler)
}
