package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagescrape"
)

// Ensure LoggingURLReader implements pagescrape.URLReader.
var _ pagescrape.URLReader = (*LoggingURLReader)(nil)

// LoggingURLReader wraps a URLReader with logging.
type LoggingURLReader struct {
	next   pagescrape.URLReader
	logger *slog.Logger
}

// NewLoggingURLReader creates a new LoggingURLReader.
func NewLoggingURLReader(next pagescrape.URLReader, logger *slog.Logger) *LoggingURLReader {
	return &LoggingURLReader{next: next, logger: logger}
}

// ReadURLs delegates to the wrapped reader and logs how many URLs it found.
func (r *LoggingURLReader) ReadURLs(path string) (urls []string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("read urls",
			"path", path,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadURLs(path)
}
