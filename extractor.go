package pagescrape

import "strings"

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the trimmed page title. Empty when the page has none.
	Title string

	// Content is the visible body text with whitespace runs collapsed
	// to single spaces and trimmed.
	Content string
}

// Extractor turns raw HTML into a title and plain-text body.
type Extractor interface {
	// Extract parses raw HTML and returns its title and body text.
	// Implementations must be deterministic for identical input.
	Extract(html string) (*ExtractResult, error)
}

// CollapseWhitespace replaces every run of whitespace, including newlines
// and tabs, with a single space and trims the result.
//
// Whitespace is ASCII space and controls \t \n \v \f \r, the Unicode space
// separators, U+2028, U+2029 and U+FEFF. U+0085 is not whitespace.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.FieldsFunc(s, isSpace), " ")
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\u1680',
		'\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}
