package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sort"
)

type StdoutLogger struct {
	logger *slog.Logger
}

func initStdoutLogger(serviceName string) (Logger, error) {
	return newStdoutLogger(os.Stdout, serviceName), nil
}

func newStdoutLogger(w io.Writer, serviceName string) *StdoutLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	handlerWithAttrs := handler.WithAttrs([]slog.Attr{
		slog.String("service", serviceName),
	})

	return &StdoutLogger{
		logger: slog.New(handlerWithAttrs),
	}
}

var stdoutLevels = map[LogLevel]slog.Level{
	LogLevelDebug: slog.LevelDebug,
	LogLevelInfo:  slog.LevelInfo,
	LogLevelWarn:  slog.LevelWarn,
	LogLevelError: slog.LevelError,
	LogLevelFatal: slog.LevelError + 4,
}

func (l *StdoutLogger) Log(ctx context.Context, entry LogEntry) {
	level, ok := stdoutLevels[entry.Level]
	if !ok {
		level = slog.LevelInfo
	}

	// response bodies make local output unreadable
	keys := make([]string, 0, len(entry.Attributes))
	for key := range entry.Attributes {
		if key == "http.response_body" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys)+1)
	for _, key := range keys {
		attrs = append(attrs, slog.Any(key, entry.Attributes[key]))
	}
	if entry.Error != nil {
		attrs = append(attrs, slog.String("error", entry.Error.Error()))
	}

	l.logger.LogAttrs(ctx, level, entry.Message, attrs...)
}

func (l *StdoutLogger) Shutdown(context.Context) error {
	return nil
}
