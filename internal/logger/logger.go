package logger

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

var defaultOutput = os.Stdout

var defaultLogger = &logrus.Logger{
	Out:       defaultOutput,
	Formatter: new(logrus.JSONFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.InfoLevel,
}

type requestIDKey struct{}

// Fields is an alias to keep callers free of the logrus import.
type Fields = logrus.Fields

// SetLevel parses and applies the given level name, leaving the level as is on failure.
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	defaultLogger.SetLevel(lvl)
	return nil
}

// Logger returns the underlying logger, e.g. to be used as a writer.
func Logger() *logrus.Logger {
	return defaultLogger
}

// WithFields returns an entry carrying the given structured fields.
func WithFields(fields Fields) *logrus.Entry {
	return defaultLogger.WithFields(fields)
}

// ContextWithRequestID returns a copy of ctx carrying the request id.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// FromContext returns an entry tagged with the request id of ctx.
func FromContext(ctx context.Context) *logrus.Entry {
	return defaultLogger.WithField("request_id", RequestID(ctx))
}

// Info logs message at Info level.
func Info(msg string) {
	defaultLogger.Infoln(msg)
}

// Error logs errors at Error level.
func Error(err error) {
	defaultLogger.Errorln(err)
}

// Fatal logs errors at Fatal level.
func Fatal(err error) {
	defaultLogger.Fatalln(err)
}
