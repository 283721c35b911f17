package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError attaches slog key-value pairs to err. A handler built by
// NewHandler logs those pairs next to the error wherever it ends up being
// logged, even after further wrapping with fmt.Errorf("%w").
//
// Example:
//
//	return AnnotateError(ErrUnknownToken, "token", tok, "position", pos)
//
// Returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	attrs := make([]slog.Attr, 0, r.NumAttrs())

	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)

		return true
	})

	return &slogError{err: err, attrs: attrs}
}

// Attrs returns the attributes attached to the outermost annotated error in
// err's chain, or nil if there are none.
func Attrs(err error) []slog.Attr {
	var se *slogError
	if !errors.As(err, &se) {
		return nil
	}

	return se.attrs
}

type slogError struct {
	err   error
	attrs []slog.Attr
}

func (s *slogError) Error() string {
	return s.err.Error()
}

func (s *slogError) Unwrap() error {
	return s.err
}

var _ error = (*slogError)(nil)

// slogErrorLogger decorates a handler: any error-valued attribute whose chain
// holds an annotated error has the annotation appended to the record.
type slogErrorLogger struct {
	inner slog.Handler
}

var _ slog.Handler = (*slogErrorLogger)(nil)

func (s *slogErrorLogger) Enabled(ctx context.Context, level slog.Level) bool {
	return s.inner.Enabled(ctx, level)
}

func (s *slogErrorLogger) Handle(ctx context.Context, record slog.Record) error {
	var extra []slog.Attr

	record.Attrs(func(attr slog.Attr) bool {
		if err, ok := attr.Value.Any().(error); ok {
			extra = append(extra, Attrs(err)...)
		}

		return true
	})

	if len(extra) == 0 {
		return s.inner.Handle(ctx, record)
	}

	r := record.Clone()
	r.AddAttrs(extra...)

	return s.inner.Handle(ctx, r)
}

func (s *slogErrorLogger) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithAttrs(attrs)}
}

func (s *slogErrorLogger) WithGroup(name string) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithGroup(name)}
}
