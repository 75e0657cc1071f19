// Package log provides category-aware logging for the wire-protocol client.
package log

import (
	"io"
	"regexp"

	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus logger and tags every entry with a category, the
// component and operation that produced it (e.g. "Session:Execute"). An
// optional category filter suppresses entries whose category doesn't match.
type Logger struct {
	*logrus.Logger
	categoryFilter *regexp.Regexp
}

// New returns a Logger writing to out at the given level.
func New(out io.Writer, level logrus.Level, categoryFilter *regexp.Regexp) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	return &Logger{
		Logger:         l,
		categoryFilter: categoryFilter,
	}
}

// NewNullLogger returns a Logger that discards everything. Useful in tests.
func NewNullLogger() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{Logger: l}
}

func (l *Logger) Debugf(category, msg string, args ...any) {
	l.logf(logrus.DebugLevel, category, msg, args...)
}

func (l *Logger) Infof(category, msg string, args ...any) {
	l.logf(logrus.InfoLevel, category, msg, args...)
}

func (l *Logger) Warnf(category, msg string, args ...any) {
	l.logf(logrus.WarnLevel, category, msg, args...)
}

func (l *Logger) Errorf(category, msg string, args ...any) {
	l.logf(logrus.ErrorLevel, category, msg, args...)
}

func (l *Logger) logf(level logrus.Level, category, msg string, args ...any) {
	if l.categoryFilter != nil && !l.categoryFilter.MatchString(category) {
		return
	}
	l.WithField("category", category).Logf(level, msg, args...)
}

// SetLevel sets the logger level from a level string.
func (l *Logger) SetLevel(level string) error {
	pl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.Logger.SetLevel(pl)
	return nil
}

// DebugMode returns true if the logger level is set to Debug or higher.
func (l *Logger) DebugMode() bool {
	return l.Logger.GetLevel() >= logrus.DebugLevel
}
