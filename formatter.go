package pagescrape

import (
	"fmt"
	"strings"
)

// PreviewLimit is the number of characters of content shown per item on the
// batch results page.
const PreviewLimit = 1000

// Truncate shortens s to at most limit characters and appends "..." when
// anything was cut. Characters are Unicode code points, so multi-byte text is
// never split mid-character. Strings at or under the limit are returned as is.
func Truncate(s string, limit int) string {
	if limit < 0 {
		limit = 0
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i] + "..."
		}
		n++
	}
	return s
}

// BatchSummary formats the summary line shown above batch results.
func BatchSummary(b BatchResult) string {
	return fmt.Sprintf("Total websites scraped: %d | Successful: %d | Failed: %d",
		b.Total(), b.Succeeded(), b.Failed())
}

// FormatResult formats a single result for terminal output.
// Successful results show the full content.
func FormatResult(r FetchResult) string {
	if !r.Success {
		return "URL: " + r.URL + "\nError: " + r.Error
	}
	return "URL: " + r.URL + "\nWebsite Name: " + r.Title + "\n\n" + r.Content
}

// FormatBatch formats batch results for terminal output: the summary line,
// then one block per result with content truncated to PreviewLimit.
// Blocks are separated by blank lines.
func FormatBatch(b BatchResult) string {
	parts := make([]string, 0, len(b)+1)
	parts = append(parts, BatchSummary(b))
	for i, r := range b {
		var sb strings.Builder
		fmt.Fprintf(&sb, "[%d] %s\n", i+1, r.URL)
		if r.Success {
			sb.WriteString("Website Name: " + r.Title + "\n")
			sb.WriteString(Truncate(r.Content, PreviewLimit))
		} else {
			sb.WriteString("Website Name: Error\n")
			sb.WriteString("Error: " + r.Error)
		}
		parts = append(parts, sb.String())
	}
	return strings.Join(parts, "\n\n")
}
