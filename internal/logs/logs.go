package logs

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

const logFile = "kustodian.log"

// FileLogger returns a JSON logger appending to kustodian.log in the
// current directory.
func FileLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug,
	}

	f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return ConsoleLogger()
	}

	return slog.New(slog.NewJSONHandler(f, opts))
}

func ConsoleLogger() *slog.Logger {
	w := os.Stderr

	// create a new logger
	logger := slog.New(tint.NewHandler(w, nil))

	// set global logger with custom options
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		}),
	))
	return logger
}
