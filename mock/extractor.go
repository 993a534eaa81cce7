package mock

import "github.com/fwojciec/pagescrape"

var _ pagescrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagescrape.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pagescrape.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*pagescrape.ExtractResult, error) {
	return e.ExtractFn(html)
}
