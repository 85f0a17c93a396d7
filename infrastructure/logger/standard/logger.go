// ABOUTME: Standard logger implementation backed by logrus
// ABOUTME: Provides structured, leveled logging with text or JSON output

package standard

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// RotationConfig controls the rotating log file
type RotationConfig struct {
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// StandardLogger implements the Logger interface using logrus
type StandardLogger struct {
	log *logrus.Logger
}

// NewStandardLogger creates a logger writing to stderr.
// level is a logrus level name ("debug", "info", ...); format is "text" or "json".
func NewStandardLogger(level, format string) *StandardLogger {
	return NewStandardLoggerWithOutput(os.Stderr, level, format)
}

// NewRotatingLogger creates a logger writing to a size-rotated, compressed file
func NewRotatingLogger(rotation RotationConfig, level, format string) *StandardLogger {
	return NewStandardLoggerWithOutput(&lumberjack.Logger{
		Filename:   rotation.Filename,
		MaxSize:    rotation.MaxSizeMB,
		MaxBackups: rotation.MaxBackups,
		MaxAge:     rotation.MaxAgeDays,
		Compress:   true,
	}, level, format)
}

// NewStandardLoggerWithOutput creates a logger writing to out
func NewStandardLoggerWithOutput(out io.Writer, level, format string) *StandardLogger {
	log := logrus.New()
	log.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &StandardLogger{log: log}
}

// Debug logs a debug message
func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	l.entry(fields).Debug(msg)
}

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	l.entry(fields).Info(msg)
}

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	l.entry(fields).Warn(msg)
}

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	l.entry(fields).Error(msg)
}

func (l *StandardLogger) entry(fields map[string]interface{}) *logrus.Entry {
	if len(fields) == 0 {
		return logrus.NewEntry(l.log)
	}
	return l.log.WithFields(logrus.Fields(fields))
}

// QuietLogger discards everything
type QuietLogger struct{}

func (QuietLogger) Debug(msg string, fields map[string]interface{}) {}
func (QuietLogger) Info(msg string, fields map[string]interface{})  {}
func (QuietLogger) Warn(msg string, fields map[string]interface{})  {}
func (QuietLogger) Error(msg string, fields map[string]interface{}) {}
