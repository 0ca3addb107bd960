// Package logger provides prefixed, colored component loggers.
package logger

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const colorReset = "\033[0m"

var ErrNilWriter = errors.New("logger output writer is nil")

// Logger writes lines of the form "<color>[PREFIX] [LEVEL]<reset> message".
type Logger struct {
	base *logrus.Logger
}

// New creates a logger that tags every line with prefix in the given color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&prefixFormatter{
		prefix: prefix,
		color:  color,
	})

	return &Logger{base: l}, nil
}

// SetLevel changes the minimum level written, e.g. "debug", "info", "warn".
func (l *Logger) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.base.SetLevel(lvl)
	return nil
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.base.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.base.Info(msg)
}

// Warn logs a warning.
func (l *Logger) Warn(msg string) {
	l.base.Warn(msg)
}

// Error logs an error.
func (l *Logger) Error(msg string) {
	l.base.Error(msg)
}

type prefixFormatter struct {
	prefix string
	color  string
}

// Format implements logrus.Formatter.
func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	level := strings.ToUpper(e.Level.String())
	return []byte(fmt.Sprintf("%s %s[%s] [%s]%s %s\n",
		e.Time.Format("2006/01/02 15:04:05"), f.color, f.prefix, level, colorReset, e.Message)), nil
}
