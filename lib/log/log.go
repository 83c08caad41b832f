// Package log carries a slog.Logger in a context.Context.
//
// Library code logs through the context it was given. Without a logger
// in the context it falls back to a stderr logger that only reports
// warnings and errors, unless $DEBUG is set.
package log

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"testing"
	"time"

	"cdr.dev/slog"
	"cdr.dev/slog/sloggers/sloghuman"
	"cdr.dev/slog/sloggers/slogtest"

	"oss.terrastruct.com/textgraph/lib/env"
)

var _default = slog.Make(sloghuman.Sink(os.Stderr)).Named("textgraph").Leveled(slog.LevelWarn)

type loggerKey struct{}

func from(ctx context.Context) slog.Logger {
	l, ok := ctx.Value(loggerKey{}).(slog.Logger)
	if ok {
		return l
	}
	if env.Debug() {
		l = _default.Leveled(slog.LevelDebug)
		l.Debug(ctx, "no logger in context, see lib/log.With", slog.F("stack", string(debug.Stack())))
		return l
	}
	return _default
}

func With(ctx context.Context, l slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// WithTB logs to t. Errors logged through it fail the test unless opts
// says otherwise.
func WithTB(ctx context.Context, t testing.TB, opts *slogtest.Options) context.Context {
	l := slogtest.Make(t, opts)
	if env.Debug() {
		l = l.Leveled(slog.LevelDebug)
	}
	return With(ctx, l)
}

// Human logs human readable lines to w.
func Human(ctx context.Context, w io.Writer) context.Context {
	l := slog.Make(sloghuman.Sink(w))
	if env.Debug() {
		l = l.Leveled(slog.LevelDebug)
	}
	return With(ctx, l)
}

func Debug(ctx context.Context, msg string, fields ...slog.Field) {
	slog.Helper()
	from(ctx).Debug(ctx, msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...slog.Field) {
	slog.Helper()
	from(ctx).Info(ctx, msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...slog.Field) {
	slog.Helper()
	from(ctx).Warn(ctx, msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...slog.Field) {
	slog.Helper()
	from(ctx).Error(ctx, msg, fields...)
}

func Named(ctx context.Context, name string) context.Context {
	return With(ctx, from(ctx).Named(name))
}

func Leveled(ctx context.Context, level slog.Level) context.Context {
	return With(ctx, from(ctx).Leveled(level))
}

func Sync(ctx context.Context) {
	from(ctx).Sync()
}

// WithTimeout is context.WithTimeout with $TEXTGRAPH_TIMEOUT taking
// precedence over timeout. A non-positive timeout means none.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if seconds, ok := env.Timeout(); ok {
		timeout = time.Duration(seconds) * time.Second
	}
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
