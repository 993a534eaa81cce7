package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/pagescrape"
)

// Run executes the scrape command. A failed scrape is reported on stderr
// and returned as an error so the process exits non-zero.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	url := strings.TrimSpace(c.URL)
	if url == "" {
		err := pagescrape.Errorf(pagescrape.EINVALID, "URL is required")
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagescrape.ErrorMessage(err))
		return err
	}

	result := deps.Scraper.Scrape(deps.Ctx, url)

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else if result.Success {
		fmt.Fprintln(deps.Stdout, pagescrape.FormatResult(result))
	}

	if !result.Success {
		fmt.Fprintf(deps.Stderr, "error: %s\n", result.Error)
		return fmt.Errorf("failed to scrape %s", url)
	}
	return nil
}
