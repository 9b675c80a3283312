// Package obslog is the structured logging surface shared by pkg/actor,
// pkg/inject, and every example component: a small interface over
// github.com/go-logr/logr, backed by github.com/go-logr/stdr so default
// output needs no extra wiring, with room to swap in any other logr sink.
package obslog

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// Logger is the logging surface the rest of this module depends on.
// Debug/Info are non-error levels distinguished by verbosity (logr's V()),
// Warn and Error always surface regardless of verbosity configuration.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(err error, msg string, keysAndValues ...interface{})

	WithFields(keysAndValues ...interface{}) Logger
	WithContext(ctx context.Context) Logger
}

const (
	levelDebug = 1
	levelInfo  = 0
	levelWarn  = 0
)

type logrLogger struct {
	l logr.Logger
}

// New returns a Logger writing to stderr via the standard library's log
// package, through stdr's logr.LogSink adapter.
func New() Logger {
	stdr.SetVerbosity(1)
	return &logrLogger{l: stdr.New(nil)}
}

// NewFromLogr wraps an existing logr.Logger, e.g. one built by stdr over an
// io.Writer-backed *log.Logger, for tests that want to capture output.
func NewFromLogr(l logr.Logger) Logger {
	return &logrLogger{l: l}
}

func (g *logrLogger) Debug(msg string, keysAndValues ...interface{}) {
	g.l.V(levelDebug).Info(msg, keysAndValues...)
}

func (g *logrLogger) Info(msg string, keysAndValues ...interface{}) {
	g.l.V(levelInfo).Info(msg, keysAndValues...)
}

func (g *logrLogger) Warn(msg string, keysAndValues ...interface{}) {
	g.l.V(levelWarn).Info("WARN: "+msg, keysAndValues...)
}

func (g *logrLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	g.l.Error(err, msg, keysAndValues...)
}

func (g *logrLogger) WithFields(keysAndValues ...interface{}) Logger {
	return &logrLogger{l: g.l.WithValues(keysAndValues...)}
}

type requestIDKey struct{}

// WithRequestID attaches a request/correlation id to ctx for WithContext
// to pick up.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func (g *logrLogger) WithContext(ctx context.Context) Logger {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return g.WithFields("request_id", id)
	}
	return g
}

// Discard returns a Logger that drops everything, for tests that don't
// care about log output.
func Discard() Logger {
	return &logrLogger{l: logr.Discard()}
}
