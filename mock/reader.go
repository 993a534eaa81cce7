package mock

import "github.com/fwojciec/pagescrape"

var _ pagescrape.URLReader = (*URLReader)(nil)

// URLReader is a mock implementation of pagescrape.URLReader.
type URLReader struct {
	ReadURLsFn func(path string) ([]string, error)
}

func (r *URLReader) ReadURLs(path string) ([]string, error) {
	return r.ReadURLsFn(path)
}
