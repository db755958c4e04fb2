package slog

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/grader"
)

// Ensure LoggingParser implements grader.Parser.
var _ grader.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging. Each parse is logged with
// a content fingerprint so runs against the same page can be correlated.
type LoggingParser struct {
	next   grader.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next grader.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(html string) (doc grader.Document, err error) {
	defer func(begin time.Time) {
		p.logger.Info("parse",
			"bytes", len(html),
			"hash", fmt.Sprintf("%016x", xxhash.Sum64String(html)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(html)
}
