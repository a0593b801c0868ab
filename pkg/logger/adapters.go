package logger

import (
	"bytes"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-retryablehttp"
)

type adapterLevel int

const (
	adapterLevelInfo adapterLevel = iota
	adapterLevelWarn
	adapterLevelError
)

// writerAdapter implements io.Writer and forwards messages to our logger.
type writerAdapter struct {
	l     Interface
	level adapterLevel
}

func (w writerAdapter) Write(p []byte) (n int, err error) {
	msg := bytes.TrimRight(p, "\r\n")

	switch w.level {
	case adapterLevelInfo:
		w.l.Info(string(msg))
	case adapterLevelWarn:
		w.l.Warn(string(msg))
	case adapterLevelError:
		w.l.Error(string(msg))
	}

	return len(p), nil
}

// SetupStdLog routes the standard library log output through our JSON logger.
func SetupStdLog(l Interface) {
	log.SetFlags(0)
	log.SetOutput(writerAdapter{l: l, level: adapterLevelWarn})
}

// SetupGin routes Gin's logs through our JSON logger.
func SetupGin(l Interface) {
	gin.DefaultWriter = writerAdapter{l: l, level: adapterLevelInfo}
	gin.DefaultErrorWriter = writerAdapter{l: l, level: adapterLevelError}
}

// leveledAdapter satisfies retryablehttp.LeveledLogger.
type leveledAdapter struct {
	l Interface
}

func (a leveledAdapter) Error(msg string, keysAndValues ...interface{}) {
	a.l.Error(msg, keysAndValues...)
}

func (a leveledAdapter) Warn(msg string, keysAndValues ...interface{}) {
	a.l.Warn(msg, keysAndValues...)
}

func (a leveledAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.l.Info(msg, keysAndValues...)
}

func (a leveledAdapter) Debug(msg string, keysAndValues ...interface{}) {
	a.l.Debug(msg, keysAndValues...)
}

// RetryableHTTP routes go-retryablehttp's attempt logging through our logger.
func RetryableHTTP(l Interface) retryablehttp.LeveledLogger {
	return leveledAdapter{l: l}
}
