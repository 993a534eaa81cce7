package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/pagescrape"
)

// Run executes the batch command. Per-URL failures are part of the output,
// not errors; only an unreadable or empty URL file fails the command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	urls, err := deps.URLs.ReadURLs(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagescrape.ErrorMessage(err))
		return err
	}
	if len(urls) == 0 {
		err := pagescrape.Errorf(pagescrape.ENOTFOUND, "No valid URLs found in %s", filepath.Base(c.File))
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagescrape.ErrorMessage(err))
		return err
	}

	results := deps.Scraper.ScrapeMany(deps.Ctx, urls)

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Fprintln(deps.Stdout, pagescrape.FormatBatch(results))
	return nil
}
