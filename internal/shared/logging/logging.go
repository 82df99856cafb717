package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/reshetovitsme/slack-translate-relay/internal/shared/config"
	slogmulti "github.com/samber/slog-multi"
)

// Setup installs the default logger: progress lines on stdout and errors as
// JSON on stderr.
func Setup(appEnv config.AppEnv, level string) *slog.Logger {
	logger := New(os.Stdout, os.Stderr, appEnv, ParseLevel(level))
	slog.SetDefault(logger)
	return logger
}

// New builds the fan-out logger used by Setup.
func New(out, errOut io.Writer, appEnv config.AppEnv, level slog.Level) *slog.Logger {
	var progressHandler slog.Handler
	if appEnv == config.AppEnvLocal {
		progressHandler = tint.NewHandler(out, &tint.Options{
			Level:      level,
			TimeFormat: time.DateTime,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == "error" && a.Value.Kind() == slog.KindAny {
					if err, ok := a.Value.Any().(error); ok {
						return tint.Err(err)
					}
				}
				return a
			},
		})
	} else {
		progressHandler = slog.NewTextHandler(out, &slog.HandlerOptions{
			Level: level,
		})
	}

	jsonHandler := slog.NewJSONHandler(errOut, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	return slog.New(slogmulti.Fanout(progressHandler, jsonHandler))
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
