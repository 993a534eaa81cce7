package goquery

import (
	"strings"

	"github.com/fwojciec/pagescrape"
)

// Ensure Extractor implements pagescrape.Extractor at compile time.
var _ pagescrape.Extractor = (*Extractor)(nil)

// DefaultStripTags are the elements whose text never counts as page content.
var DefaultStripTags = []string{"script", "style", "noscript"}

// Extractor pulls the title and visible body text out of an HTML page.
type Extractor struct {
	stripTags []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithStripTags replaces the set of elements removed before text extraction.
func WithStripTags(tags ...string) Option {
	return func(e *Extractor) {
		e.stripTags = tags
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{stripTags: DefaultStripTags}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses rawHTML, removes non-content elements and returns the
// trimmed title and the whitespace-collapsed body text. An empty or
// malformed page yields an empty result rather than an error.
func (e *Extractor) Extract(rawHTML string) (*pagescrape.ExtractResult, error) {
	doc, err := ParseString(rawHTML)
	if err != nil {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, tag := range e.stripTags {
		doc.RemoveElementsByTag(tag)
	}

	return &pagescrape.ExtractResult{
		Title:   strings.TrimSpace(doc.TextOf("title")),
		Content: pagescrape.CollapseWhitespace(doc.TextOf("body")),
	}, nil
}
