// ABOUTME: Logger implementation backed by logrus
// ABOUTME: Provides structured, levelled logging in text or JSON format

package logrusadapter

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options configures the logger
type Options struct {
	// Level is a logrus level name (debug, info, warn, error)
	Level string

	// Format is "json" or "text"
	Format string

	// Output defaults to os.Stdout
	Output io.Writer
}

// Logger implements the Logger interface using logrus
type Logger struct {
	entry *logrus.Logger
}

// NewLogger creates a logrus-backed logger. Unknown levels fall back to info.
func NewLogger(opts Options) *Logger {
	l := logrus.New()

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}
	l.SetOutput(output)

	if strings.EqualFold(opts.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	return &Logger{entry: l}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}

// Level returns the active level name
func (l *Logger) Level() string {
	return l.entry.GetLevel().String()
}
