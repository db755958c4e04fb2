package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/grader"
)

// Ensure LoggingLoader implements grader.Loader.
var _ grader.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with debug logging.
type LoggingLoader struct {
	next   grader.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next grader.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Exists delegates to the wrapped loader.
func (l *LoggingLoader) Exists(path string) error {
	return l.next.Exists(path)
}

// LoadChecks delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) LoadChecks(path string) (checks grader.Checks, err error) {
	defer func(begin time.Time) {
		l.logger.Info("load checks",
			"path", path,
			"count", len(checks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadChecks(path)
}

// LoadHTML delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) LoadHTML(path string) (html string, err error) {
	defer func(begin time.Time) {
		l.logger.Info("load html",
			"path", path,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadHTML(path)
}
