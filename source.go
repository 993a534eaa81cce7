package pagescrape

// URLReader reads the list of URLs to scrape in batch.
type URLReader interface {
	// ReadURLs returns the trimmed lines of the file at path that start
	// with "http", in file order.
	// Returns ENOTFOUND if the file does not exist.
	ReadURLs(path string) ([]string, error)
}
