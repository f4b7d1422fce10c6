package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus so callers share one configured instance.
type Logger struct {
	*logrus.Logger
}

// NewLogger creates a logger writing to stderr. Unknown levels fall back to
// warn and any format other than "json" uses the text formatter.
func NewLogger(level, format string) *Logger {
	return NewLoggerWithOutput(os.Stderr, level, format)
}

// NewLoggerWithOutput is NewLogger with an explicit destination.
func NewLoggerWithOutput(out io.Writer, level, format string) *Logger {
	log := logrus.New()
	log.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	log.SetLevel(lvl)

	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	return &Logger{Logger: log}
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *Logger {
	return NewLoggerWithOutput(io.Discard, "panic", "text")
}
