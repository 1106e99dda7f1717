package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New は構造化ロガーを返す。LOG_LEVEL/LOG_FORMATで調整できる。
func New(service string) zerolog.Logger {
	level := zerolog.InfoLevel
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if l, err := zerolog.ParseLevel(v); err == nil {
			level = l
		}
	}

	var out io.Writer = os.Stdout
	if os.Getenv("LOG_FORMAT") == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	zerolog.TimeFieldFormat = time.RFC3339

	return zerolog.New(out).
		With().
		Timestamp().
		Str("service", service).
		Logger().
		Level(level)
}
