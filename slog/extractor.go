package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagescrape"
)

// Ensure LoggingExtractor implements pagescrape.Extractor.
var _ pagescrape.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   pagescrape.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagescrape.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs input and output sizes.
func (e *LoggingExtractor) Extract(html string) (result *pagescrape.ExtractResult, err error) {
	defer func(begin time.Time) {
		var title string
		var contentBytes int
		if result != nil {
			title = result.Title
			contentBytes = len(result.Content)
		}
		e.logger.Debug("extract",
			"bytes", len(html),
			"title", title,
			"content_bytes", contentBytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
