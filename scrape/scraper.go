// Package scrape provides the fetch-then-extract pipeline for single pages
// and the sequential batch loop built on top of it.
package scrape

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/pagescrape"
)

// Ensure Scraper implements pagescrape.Scraper at compile time.
var _ pagescrape.Scraper = (*Scraper)(nil)

// Scraper fetches pages and extracts their title and text.
type Scraper struct {
	Fetcher   pagescrape.Fetcher
	Extractor pagescrape.Extractor

	// Progress, if set, receives an event before and after each URL of a
	// batch. Called synchronously from ScrapeMany.
	Progress ProgressFunc
}

// Scrape fetches url and extracts its content. Every failure, including a
// panicking extractor, is reported as a failed result.
func (s *Scraper) Scrape(ctx context.Context, url string) (result pagescrape.FetchResult) {
	defer func() {
		if r := recover(); r != nil {
			result = pagescrape.NewFailure(url, fmt.Errorf("panic: %v", r))
		}
	}()

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return pagescrape.NewFailure(url, err)
	}

	extracted, err := s.Extractor.Extract(html)
	if err != nil {
		return pagescrape.NewFailure(url, err)
	}

	return pagescrape.NewSuccess(url, extracted)
}

// ScrapeMany scrapes urls one at a time in input order. Each URL is trimmed
// before fetching. A failure is recorded and the loop continues, so the
// result always has one entry per input URL.
func (s *Scraper) ScrapeMany(ctx context.Context, urls []string) pagescrape.BatchResult {
	results := make(pagescrape.BatchResult, 0, len(urls))

	s.report(ProgressEvent{Type: ProgressStarted, Total: len(urls)})
	for i, u := range urls {
		u = strings.TrimSpace(u)
		r := s.Scrape(ctx, u)
		results = append(results, r)

		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: i + 1,
			Total:     len(urls),
			URL:       u,
		}
		if !r.Success {
			event.Type = ProgressFailed
			event.Error = r.Error
		}
		s.report(event)
	}
	s.report(ProgressEvent{Type: ProgressFinished, Completed: len(urls), Total: len(urls)})

	return results
}

func (s *Scraper) report(event ProgressEvent) {
	if s.Progress != nil {
		s.Progress(event)
	}
}
