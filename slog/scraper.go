package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagescrape"
	"github.com/fwojciec/pagescrape/scrape"
)

// Ensure LoggingScraper implements pagescrape.Scraper.
var _ pagescrape.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging of outcomes. Successful
// results are logged with a hash of their content.
type LoggingScraper struct {
	next   pagescrape.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next pagescrape.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the result.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (result pagescrape.FetchResult) {
	defer func(begin time.Time) {
		s.logResult(ctx, slog.LevelInfo, "scrape", result, "duration", time.Since(begin))
	}(time.Now())
	return s.next.Scrape(ctx, url)
}

// ScrapeMany delegates to the wrapped scraper and logs each result at debug
// level followed by the batch summary.
func (s *LoggingScraper) ScrapeMany(ctx context.Context, urls []string) (results pagescrape.BatchResult) {
	defer func(begin time.Time) {
		for _, r := range results {
			s.logResult(ctx, slog.LevelDebug, "batch item", r)
		}
		s.logger.Info("batch",
			"total", results.Total(),
			"succeeded", results.Succeeded(),
			"failed", results.Failed(),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.ScrapeMany(ctx, urls)
}

func (s *LoggingScraper) logResult(ctx context.Context, level slog.Level, msg string, r pagescrape.FetchResult, extra ...any) {
	attrs := []any{"url", r.URL, "success", r.Success}
	if r.Success {
		attrs = append(attrs, "title", r.Title, "hash", scrape.ComputeHash(r.Content))
	} else {
		attrs = append(attrs, "err", r.Error)
	}
	s.logger.Log(ctx, level, msg, append(attrs, extra...)...)
}
