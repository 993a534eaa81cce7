package pagescrape

// DefaultTitle is used when a page has no title or the title is blank.
const DefaultTitle = "No Title"

// FetchResult is the outcome of scraping a single URL.
// Success is the discriminant: a successful result carries Title and Content,
// a failed one carries Error. The two are never populated together.
type FetchResult struct {
	URL     string `json:"url"`
	Success bool   `json:"success"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewSuccess builds a successful result from extracted page content.
// A blank title is replaced with DefaultTitle.
func NewSuccess(url string, extracted *ExtractResult) FetchResult {
	r := FetchResult{URL: url, Success: true, Title: DefaultTitle}
	if extracted != nil {
		if extracted.Title != "" {
			r.Title = extracted.Title
		}
		r.Content = extracted.Content
	}
	return r
}

// NewFailure builds a failed result carrying the error description.
// A nil error or one with an empty message is reported as "unknown error".
func NewFailure(url string, err error) FetchResult {
	var msg string
	if err != nil {
		msg = err.Error()
	}
	if msg == "" {
		msg = "unknown error"
	}
	return FetchResult{URL: url, Error: msg}
}

// Validate returns an error if the result mixes success and failure fields.
func (r *FetchResult) Validate() error {
	if r.Success {
		if r.Error != "" {
			return Errorf(EINVALID, "successful result must not carry an error")
		}
		if r.Title == "" {
			return Errorf(EINVALID, "successful result title required")
		}
		return nil
	}
	if r.Error == "" {
		return Errorf(EINVALID, "failed result error required")
	}
	if r.Title != "" || r.Content != "" {
		return Errorf(EINVALID, "failed result must not carry content")
	}
	return nil
}

// BatchResult holds one FetchResult per input URL, in input order.
type BatchResult []FetchResult

// Total returns the number of results in the batch.
func (b BatchResult) Total() int {
	return len(b)
}

// Succeeded returns the number of successful results.
func (b BatchResult) Succeeded() int {
	n := 0
	for _, r := range b {
		if r.Success {
			n++
		}
	}
	return n
}

// Failed returns the number of failed results.
func (b BatchResult) Failed() int {
	return len(b) - b.Succeeded()
}
