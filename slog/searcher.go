// Package slog provides logging decorators for coursecat services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/coursecat"
)

// Ensure LoggingSearcher implements coursecat.Searcher.
var _ coursecat.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging.
type LoggingSearcher struct {
	next   coursecat.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next coursecat.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, q coursecat.SearchQuery) (resp *coursecat.SearchResponse, err error) {
	defer func(begin time.Time) {
		var size int
		if resp != nil {
			size = len(resp.HTML)
		}
		s.logger.Info("search",
			"subject", q.Subject,
			"number", q.Number,
			"term", q.Term,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, q)
}
