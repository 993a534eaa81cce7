// Package fs implements the file-backed parts of pagescrape: reading the
// list of URLs to scrape.
package fs

import (
	"errors"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pagescrape"
)

// URLPrefix is the literal prefix a line needs to count as a URL.
const URLPrefix = "http"

const bom = "\ufeff"

// Ensure URLReader implements pagescrape.URLReader at compile time.
var _ pagescrape.URLReader = (*URLReader)(nil)

// URLReader reads URL list files from the local filesystem.
type URLReader struct{}

// NewURLReader creates a new URLReader.
func NewURLReader() *URLReader {
	return &URLReader{}
}

// ReadURLs reads the file at path and returns its URL lines in file order.
// The file is read in full on every call.
func (r *URLReader) ReadURLs(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := pagescrape.EINTERNAL
		if errors.Is(err, os.ErrNotExist) {
			code = pagescrape.ENOTFOUND
		}
		return nil, pagescrape.Errorf(code, "failed to read file: %v", err)
	}
	if !utf8.Valid(data) {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "failed to read file: %s is not valid UTF-8", path)
	}
	return ParseURLs(string(data)), nil
}

// ParseURLs splits text into lines, trims each one and keeps the non-empty
// lines that start with URLPrefix. A leading byte-order mark is ignored.
func ParseURLs(text string) []string {
	text = strings.TrimPrefix(text, bom)

	var urls []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.HasPrefix(line, URLPrefix) {
			continue
		}
		urls = append(urls, line)
	}
	return urls
}
