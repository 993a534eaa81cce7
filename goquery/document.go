// Package goquery implements pagescrape.Extractor on top of goquery's
// jQuery-like HTML document tree.
package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is a parsed HTML page exposing the small set of tree operations
// content extraction needs.
type Document struct {
	doc *goquery.Document
}

// NewDocument parses HTML from r. Parsing is lenient: malformed markup is
// repaired the way browsers do, so only read failures produce an error.
func NewDocument(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// ParseString parses an HTML string.
func ParseString(html string) (*Document, error) {
	return NewDocument(strings.NewReader(html))
}

// RemoveElementsByTag detaches every element with the given tag name, along
// with its subtree, and returns how many were removed.
func (d *Document) RemoveElementsByTag(tag string) int {
	sel := d.doc.Find(tag)
	n := sel.Length()
	sel.Remove()
	return n
}

// TextOf returns the concatenated text of the first element matching
// selector, or the empty string when nothing matches.
func (d *Document) TextOf(selector string) string {
	return d.doc.Find(selector).First().Text()
}

// Has reports whether any element matches selector.
func (d *Document) Has(selector string) bool {
	return d.doc.Find(selector).Length() > 0
}
