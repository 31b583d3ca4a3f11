// Package logger provides structured stderr logging for ding.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultLevel keeps stderr quiet so a shell widget only sees real problems
const DefaultLevel = "warn"

// Logger writes leveled, key=value lines through logrus
type Logger struct {
	log *logrus.Logger
}

// Entry collects fields for one line. Entries below the logger's level
// drop their fields and never reach logrus.
type Entry struct {
	log    *logrus.Logger
	level  logrus.Level
	fields logrus.Fields
}

// New creates a logger writing to output, or stderr when output is nil.
// An unknown or empty level falls back to DefaultLevel.
func New(level string, output io.Writer) *Logger {
	if output == nil {
		output = os.Stderr
	}

	log := logrus.New()
	log.SetOutput(output)
	log.SetLevel(ParseLevel(level))
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})

	return &Logger{log: log}
}

// ParseLevel parses a level name case-insensitively, falling back to DefaultLevel
func ParseLevel(level string) logrus.Level {
	if lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil {
		return lvl
	}
	return logrus.WarnLevel
}

// DebugEnabled reports whether debug entries are written.
// Use it to skip building expensive fields.
func (l *Logger) DebugEnabled() bool {
	return l.log.IsLevelEnabled(logrus.DebugLevel)
}

func (l *Logger) at(level logrus.Level) *Entry {
	e := &Entry{log: l.log, level: level}
	if l.log.IsLevelEnabled(level) {
		e.fields = logrus.Fields{}
	}
	return e
}

func (l *Logger) Debug() *Entry { return l.at(logrus.DebugLevel) }
func (l *Logger) Info() *Entry  { return l.at(logrus.InfoLevel) }
func (l *Logger) Warn() *Entry  { return l.at(logrus.WarnLevel) }
func (l *Logger) Error() *Entry { return l.at(logrus.ErrorLevel) }

func (e *Entry) with(key string, value any) *Entry {
	if e.fields != nil {
		e.fields[key] = value
	}
	return e
}

func (e *Entry) Str(key, value string) *Entry { return e.with(key, value) }

// Strs joins values with commas
func (e *Entry) Strs(key string, values []string) *Entry {
	return e.with(key, strings.Join(values, ","))
}

func (e *Entry) Int(key string, value int) *Entry   { return e.with(key, value) }
func (e *Entry) Bool(key string, value bool) *Entry { return e.with(key, value) }

// Err sets the error field; a nil error adds nothing
func (e *Entry) Err(err error) *Entry {
	if err == nil {
		return e
	}
	return e.with(logrus.ErrorKey, err)
}

// Dur records duration in milliseconds with microsecond precision
func (e *Entry) Dur(key string, duration time.Duration) *Entry {
	return e.with(key, float64(duration.Microseconds())/1000.0)
}

// Msg writes the line
func (e *Entry) Msg(msg string) {
	if e.fields == nil {
		return
	}
	e.log.WithFields(e.fields).Log(e.level, msg)
}
