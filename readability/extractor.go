// Package readability implements pagescrape.Extractor with go-readability,
// keeping only the main article text of a page.
package readability

import (
	"strings"

	"github.com/fwojciec/pagescrape"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagescrape.Extractor at compile time.
var _ pagescrape.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main article from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article title and its text
// with whitespace collapsed.
func (e *Extractor) Extract(rawHTML string) (*pagescrape.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &pagescrape.ExtractResult{
		Title:   strings.TrimSpace(article.Title),
		Content: pagescrape.CollapseWhitespace(article.TextContent),
	}, nil
}
