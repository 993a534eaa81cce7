package main

import (
	"fmt"
	"net"
	"strconv"

	"github.com/fwojciec/pagescrape"
	pshttp "github.com/fwojciec/pagescrape/http"
)

// Run executes the serve command. It blocks until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	if c.Port < 0 || c.Port > 65535 {
		err := pagescrape.Errorf(pagescrape.EINVALID, "invalid port %d", c.Port)
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagescrape.ErrorMessage(err))
		return err
	}

	srv, err := pshttp.NewServer(pshttp.Config{
		Addr:    net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		URLFile: c.File,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	srv.Scraper = deps.Scraper
	srv.URLs = deps.URLs
	srv.Logger = deps.Logger

	if err := srv.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Server is running on %s\n", srv.URL())

	return srv.Run(deps.Ctx)
}
