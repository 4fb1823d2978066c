package logger

import (
	"context"
	"os"
	"time"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
	LogLevelFatal LogLevel = "FATAL"
)

type attributes = map[string]any

type LogEntry struct {
	Level      LogLevel
	Message    string
	Attributes attributes
	Error      error
	Timestamp  time.Time
}

type Logger interface {
	Log(ctx context.Context, entry LogEntry)
	Shutdown(ctx context.Context) error
}

var (
	globalLogger Logger = &noopLogger{}
	exit                = os.Exit
)

type contextKey struct{}

// WithAttributes returns a context whose attributes are added to every entry logged with
// it. Attributes given at the call site win over context ones.
func WithAttributes(ctx context.Context, attrs attributes) context.Context {
	merged := make(attributes, len(attrs))
	for key, value := range contextAttributes(ctx) {
		merged[key] = value
	}
	for key, value := range attrs {
		merged[key] = value
	}
	return context.WithValue(ctx, contextKey{}, merged)
}

func contextAttributes(ctx context.Context) attributes {
	if ctx == nil {
		return nil
	}
	attrs, _ := ctx.Value(contextKey{}).(attributes)
	return attrs
}

func newLogEntry(ctx context.Context, level LogLevel, message string, err error, attrs attributes) LogEntry {
	return LogEntry{
		Level:      level,
		Message:    message,
		Attributes: withContextAttributes(ctx, attrs),
		Error:      err,
		Timestamp:  time.Now(),
	}
}

func withContextAttributes(ctx context.Context, attrs attributes) attributes {
	scoped := contextAttributes(ctx)
	if len(scoped) == 0 {
		return attrs
	}
	merged := make(attributes, len(scoped)+len(attrs))
	for key, value := range scoped {
		merged[key] = value
	}
	for key, value := range attrs {
		merged[key] = value
	}
	return merged
}

func Debug(ctx context.Context, message string, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(ctx, LogLevelDebug, message, nil, attrs))
}

func Info(ctx context.Context, message string, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(ctx, LogLevelInfo, message, nil, attrs))
}

func Warn(ctx context.Context, message string, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(ctx, LogLevelWarn, message, nil, attrs))
}

func Error(ctx context.Context, message string, err error, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(ctx, LogLevelError, message, err, attrs))
}

// Fatal logs the entry, flushes the logger and exits the process.
func Fatal(ctx context.Context, message string, err error, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(ctx, LogLevelFatal, message, err, attrs))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = globalLogger.Shutdown(shutdownCtx)
	exit(1)
}

func Log(ctx context.Context, entry LogEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	entry.Attributes = withContextAttributes(ctx, entry.Attributes)
	globalLogger.Log(ctx, entry)
}

func Shutdown(ctx context.Context) error {
	return globalLogger.Shutdown(ctx)
}

func Initialize(collectorEndpoint, serviceName string, isProduction bool) error {
	var (
		l   Logger
		err error
	)

	if isProduction {
		l, err = initializeOtelLogger(collectorEndpoint, serviceName)
	} else {
		l, err = initStdoutLogger(serviceName)
	}

	if err != nil {
		return err
	}

	globalLogger = l
	return nil
}

type noopLogger struct{}

func (n *noopLogger) Log(context.Context, LogEntry)  {}
func (n *noopLogger) Shutdown(context.Context) error { return nil }
