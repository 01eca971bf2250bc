// Package log provides structured JSON logging with request-ID propagation
// through context.Context. It is a thin layer over logrus.
package log

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus entry carrying base fields.
type Logger struct {
	entry *logrus.Entry
}

// New creates a logger writing line-delimited JSON to w at the given level.
// An unknown level string falls back to info.
func New(level string, w io.Writer) *Logger {
	l := logrus.New()
	if w == nil {
		w = os.Stdout
	}
	l.SetOutput(w)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	l.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "msg",
		},
	})

	return &Logger{entry: logrus.NewEntry(l)}
}

// With returns a child logger with additional base fields.
func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{entry: l.entry.WithFields(toFields(keysAndValues))}
}

// toFields converts alternating key/value arguments into logrus fields.
// Non-string keys and a trailing unpaired key are ignored.
func toFields(keysAndValues []any) logrus.Fields {
	fields := make(logrus.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = keysAndValues[i+1]
		}
	}
	return fields
}

// forCtx returns an entry enriched with the request ID and fields stored in ctx.
func (l *Logger) forCtx(ctx context.Context) *logrus.Entry {
	entry := l.entry
	if ctx == nil {
		return entry
	}
	if id := RequestIDFromContext(ctx); id != "" {
		entry = entry.WithField("request_id", id)
	}
	if fields := FieldsFromContext(ctx); len(fields) > 0 {
		entry = entry.WithFields(logrus.Fields(fields))
	}
	return entry
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.entry.WithFields(toFields(keysAndValues)).Debug(msg)
}

// Info logs at info level.
func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.entry.WithFields(toFields(keysAndValues)).Info(msg)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.entry.WithFields(toFields(keysAndValues)).Warn(msg)
}

// Error logs at error level.
func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.entry.WithFields(toFields(keysAndValues)).Error(msg)
}

// DebugCtx logs at debug level with context-derived fields.
func (l *Logger) DebugCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.forCtx(ctx).WithFields(toFields(keysAndValues)).Debug(msg)
}

// InfoCtx logs at info level with context-derived fields.
func (l *Logger) InfoCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.forCtx(ctx).WithFields(toFields(keysAndValues)).Info(msg)
}

// WarnCtx logs at warn level with context-derived fields.
func (l *Logger) WarnCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.forCtx(ctx).WithFields(toFields(keysAndValues)).Warn(msg)
}

// ErrorCtx logs at error level with context-derived fields.
func (l *Logger) ErrorCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.forCtx(ctx).WithFields(toFields(keysAndValues)).Error(msg)
}

// --- Global Logger ---

var (
	globalLogger *Logger
	globalMu     sync.RWMutex
)

// SetDefault sets the global default logger.
func SetDefault(l *Logger) {
	globalMu.Lock()
	globalLogger = l
	globalMu.Unlock()
}

// Default returns the global logger, creating a discard logger if not set.
func Default() *Logger {
	globalMu.RLock()
	l := globalLogger
	globalMu.RUnlock()

	if l == nil {
		return New("info", io.Discard)
	}
	return l
}

// GlobalDebug logs at debug level using the global logger.
func GlobalDebug(msg string, keysAndValues ...any) {
	Default().Debug(msg, keysAndValues...)
}

// GlobalInfo logs at info level using the global logger.
func GlobalInfo(msg string, keysAndValues ...any) {
	Default().Info(msg, keysAndValues...)
}

// GlobalWarn logs at warn level using the global logger.
func GlobalWarn(msg string, keysAndValues ...any) {
	Default().Warn(msg, keysAndValues...)
}

// GlobalError logs at error level using the global logger.
func GlobalError(msg string, keysAndValues ...any) {
	Default().Error(msg, keysAndValues...)
}

// GlobalDebugCtx logs at debug level with context using the global logger.
func GlobalDebugCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().DebugCtx(ctx, msg, keysAndValues...)
}

// GlobalInfoCtx logs at info level with context using the global logger.
func GlobalInfoCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().InfoCtx(ctx, msg, keysAndValues...)
}

// GlobalWarnCtx logs at warn level with context using the global logger.
func GlobalWarnCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().WarnCtx(ctx, msg, keysAndValues...)
}

// GlobalErrorCtx logs at error level with context using the global logger.
func GlobalErrorCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().ErrorCtx(ctx, msg, keysAndValues...)
}
