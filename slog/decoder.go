package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/coursecat"
)

// Ensure LoggingDecoder implements coursecat.Decoder.
var _ coursecat.Decoder = (*LoggingDecoder)(nil)

// LoggingDecoder wraps a Decoder with debug logging.
type LoggingDecoder struct {
	next   coursecat.Decoder
	logger *slog.Logger
}

// NewLoggingDecoder creates a new LoggingDecoder.
func NewLoggingDecoder(next coursecat.Decoder, logger *slog.Logger) *LoggingDecoder {
	return &LoggingDecoder{next: next, logger: logger}
}

// Decode delegates to the wrapped decoder and logs the operation.
func (d *LoggingDecoder) Decode(resp *coursecat.SearchResponse) (courses []coursecat.Course, err error) {
	defer func(begin time.Time) {
		var size, sections int
		if resp != nil {
			size = len(resp.HTML)
		}
		for i := range courses {
			sections += len(courses[i].Sections)
		}
		d.logger.Info("decode",
			"bytes", size,
			"courses", len(courses),
			"sections", sections,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Decode(resp)
}
