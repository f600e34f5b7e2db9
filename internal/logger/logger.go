package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

type Logger struct {
	*slog.Logger
}

func New() *Logger {
	return NewWithWriter(os.Stdout, slog.LevelInfo)
}

func NewWithWriter(w io.Writer, level slog.Level) *Logger {
	log := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))

	return &Logger{Logger: log}
}

// discardLevel is above every level slog defines, so nothing is enabled.
const discardLevel = slog.LevelError + 64

// Discard drops every record. Used while a full-screen UI owns the terminal
// and whenever no logger was put on the context.
func Discard() *Logger {
	return NewWithWriter(io.Discard, discardLevel)
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

type loggerContextKey string

const contextKeyValue loggerContextKey = "context-logger"

func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKeyValue, l)
}

// FromContext returns the logger stored by NewContext. Without one it returns
// a discarding logger so library callers never write to the game's output.
func FromContext(ctx context.Context) *Logger {
	if l := ctx.Value(contextKeyValue); l != nil {
		return l.(*Logger)
	}

	return Discard()
}
