package utils

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NopLogger returns a logger that discards everything written to it.
func NopLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// LoggerOrNop returns l, or a discarding logger if l is nil.
func LoggerOrNop(l *logrus.Logger) *logrus.Logger {
	if l == nil {
		return NopLogger()
	}
	return l
}
