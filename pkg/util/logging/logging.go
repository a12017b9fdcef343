package logging

import (
	"log/slog"
	"os"
	"strings"
)

var logLevelMapping = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Init настраивает глобальный slog-логгер.
// Уровень берётся из конфига, переменная окружения LOG_LEVEL важнее
func Init(level string, clockKind string) {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}

	logLevel, ok := logLevelMapping[strings.ToLower(level)]
	if !ok {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})).With("clock", clockKind)
	slog.SetDefault(logger)
}
