package mock

import (
	"context"

	"github.com/fwojciec/pagescrape"
)

var _ pagescrape.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of pagescrape.Scraper.
type Scraper struct {
	ScrapeFn     func(ctx context.Context, url string) pagescrape.FetchResult
	ScrapeManyFn func(ctx context.Context, urls []string) pagescrape.BatchResult
}

func (s *Scraper) Scrape(ctx context.Context, url string) pagescrape.FetchResult {
	return s.ScrapeFn(ctx, url)
}

func (s *Scraper) ScrapeMany(ctx context.Context, urls []string) pagescrape.BatchResult {
	return s.ScrapeManyFn(ctx, urls)
}
