package pagescrape

import "context"

// Scraper fetches pages and extracts their content.
// Failures are reported as data in the returned results, never as errors.
type Scraper interface {
	// Scrape fetches and extracts a single URL.
	Scrape(ctx context.Context, url string) FetchResult

	// ScrapeMany scrapes each URL in order, one at a time, and returns
	// exactly one result per input URL in the same order.
	ScrapeMany(ctx context.Context, urls []string) BatchResult
}
