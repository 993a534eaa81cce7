// Package trafilatura implements pagescrape.Extractor with go-trafilatura,
// which drops navigation and other boilerplate from the page text.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/pagescrape"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements pagescrape.Extractor at compile time.
var _ pagescrape.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and main content
// text with whitespace collapsed.
func (e *Extractor) Extract(rawHTML string) (*pagescrape.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &pagescrape.ExtractResult{
		Title:   strings.TrimSpace(result.Metadata.Title),
		Content: pagescrape.CollapseWhitespace(result.ContentText),
	}, nil
}
