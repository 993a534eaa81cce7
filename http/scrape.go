package http

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagescrape"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, pageHome, homeData{File: filepath.Base(s.config.URLFile)})
}

// handleScrape scrapes the single URL posted in the "url" form field.
// A failed scrape renders the error page with the URL and the failure reason.
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	url := strings.TrimSpace(r.PostFormValue("url"))
	if url == "" {
		s.Error(w, r, "", pagescrape.Errorf(pagescrape.EINVALID, "URL is required"))
		return
	}

	// The scrape outlives a disconnecting client; only the fetch timeout bounds it.
	result := s.Scraper.Scrape(context.WithoutCancel(r.Context()), url)
	if !result.Success {
		s.render(w, r, http.StatusOK, pageError, errorData{URL: result.URL, Message: result.Error})
		return
	}

	s.render(w, r, http.StatusOK, pageResult, result)
}

// handleScrapeBatch scrapes every URL listed in the configured file.
func (s *Server) handleScrapeBatch(w http.ResponseWriter, r *http.Request) {
	urls, err := s.URLs.ReadURLs(s.config.URLFile)
	if err != nil {
		s.Error(w, r, "", err)
		return
	}
	if len(urls) == 0 {
		s.Error(w, r, "", pagescrape.Errorf(pagescrape.ENOTFOUND, "No valid URLs found in %s", filepath.Base(s.config.URLFile)))
		return
	}

	results := s.Scraper.ScrapeMany(context.WithoutCancel(r.Context()), urls)
	s.render(w, r, http.StatusOK, pageBatch, results)
}
