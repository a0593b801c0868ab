// Package logger wraps zerolog behind the small interface the rest of the
// portal logs through.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Interface -.
type Interface interface {
	Debug(message interface{}, args ...interface{})
	Info(message string, args ...interface{})
	Warn(message string, args ...interface{})
	Error(message interface{}, args ...interface{})
	Fatal(message interface{}, args ...interface{})
}

// Logger -.
type Logger struct {
	logger *zerolog.Logger
}

var _ Interface = (*Logger)(nil)

// New returns a JSON logger writing to stdout at the given level.
func New(level string) *Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter -.
func NewWithWriter(level string, w io.Writer) *Logger {
	var l zerolog.Level

	switch strings.ToLower(level) {
	case "error":
		l = zerolog.ErrorLevel
	case "warn":
		l = zerolog.WarnLevel
	case "info":
		l = zerolog.InfoLevel
	case "debug":
		l = zerolog.DebugLevel
	default:
		l = zerolog.InfoLevel
	}

	logger := zerolog.New(w).Level(l).With().Timestamp().Logger()

	return &Logger{logger: &logger}
}

// Debug -.
func (l *Logger) Debug(message interface{}, args ...interface{}) {
	l.msg(l.logger.Debug(), message, args...)
}

// Info logs message with args read as key/value pairs.
func (l *Logger) Info(message string, args ...interface{}) {
	l.msg(l.logger.Info(), message, args...)
}

// Warn -.
func (l *Logger) Warn(message string, args ...interface{}) {
	l.msg(l.logger.Warn(), message, args...)
}

// Error -.
func (l *Logger) Error(message interface{}, args ...interface{}) {
	l.msg(l.logger.Error(), message, args...)
}

// Fatal logs and exits the process.
func (l *Logger) Fatal(message interface{}, args ...interface{}) {
	l.msg(l.logger.Error(), message, args...)

	os.Exit(1)
}

// msg attaches args to the event. A single arg is the calling scope
// ("http - v1 - getNotes"), anything longer is a key/value list.
func (l *Logger) msg(e *zerolog.Event, message interface{}, args ...interface{}) {
	switch len(args) {
	case 0:
	case 1:
		e = e.Str("scope", fmt.Sprint(args[0]))
	default:
		e = e.Fields(args)
	}

	switch m := message.(type) {
	case error:
		e.Msg(m.Error())
	case string:
		e.Msg(m)
	default:
		e.Msg(fmt.Sprintf("message %v has unknown type %T", message, m))
	}
}
