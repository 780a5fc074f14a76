package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/SscSPs/daily_journal_app/internal/platform/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// setupLogger installs a JSON slog logger as the default. With LOG_FILE set,
// records also go to a rotated file.
func setupLogger(cfg *config.Config) *slog.Logger {
	var writer io.Writer = os.Stdout
	if cfg.LogFile != "" {
		writer = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB, // megabytes
			MaxBackups: 3,
			MaxAge:     28, //days
			Compress:   true,
		})
	}

	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)
	return logger
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
