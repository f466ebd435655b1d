package telemetry

import (
	"fmt"
	"log/slog"
	"os"
)

// LevelFatal — уровень выше slog.LevelError для сообщений,
// после которых процесс завершается.
const LevelFatal = slog.LevelError + 4

// ParseLevel преобразует значение флага --log-level в slog.Level.
// Допустимые значения: fatal, error, warn, info, debug.
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "fatal":
		return LevelFatal, nil
	case "error":
		return slog.LevelError, nil
	case "warn":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	default:
		return 0, fmt.Errorf("unknown log level %q (expected fatal, error, warn, info or debug)", s)
	}
}

// Setup инициализирует глобальный логгер.
//
// Формат вывода:
//   - text (по умолчанию) — человекочитаемый формат для терминала
//   - json при jsonOutput — для machine-readable сборочных логов
func Setup(level slog.Level, jsonOutput bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// WithTask возвращает логгер с добавленным именем задачи.
func WithTask(logger *slog.Logger, task string) *slog.Logger {
	return logger.With("task", task)
}
