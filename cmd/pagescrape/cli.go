package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagescrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Scraper pagescrape.Scraper
	URLs    pagescrape.URLReader
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    kong.ConfigFlag `help:"Load configuration from a YAML file"`
	Timeout   time.Duration   `short:"t" default:"10s" env:"PAGESCRAPE_TIMEOUT" help:"Fetch timeout per page"`
	UserAgent string          `name:"user-agent" env:"PAGESCRAPE_USER_AGENT" help:"User-Agent header sent with requests (default: desktop Chrome)"`
	Extractor string          `short:"e" default:"goquery" enum:"goquery,readability,trafilatura" env:"PAGESCRAPE_EXTRACTOR" help:"Content extractor (${enum})"`
	LogLevel  string          `name:"log-level" default:"info" enum:"debug,info,warn,error" env:"LOG_LEVEL" help:"Log level (${enum})"`
	LogFormat string          `name:"log-format" default:"text" enum:"text,json" env:"LOG_FORMAT" help:"Log format (${enum})"`

	Serve  ServeCmd  `cmd:"" help:"Run the web interface"`
	Scrape ScrapeCmd `cmd:"" help:"Scrape a single URL and print its content"`
	Batch  BatchCmd  `cmd:"" help:"Scrape every URL listed in a file"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Host string `env:"HOST" help:"Interface to listen on (default: all)"`
	Port int    `short:"p" default:"3000" env:"PORT" help:"Port to listen on"`
	File string `short:"f" default:"webpages.txt" env:"URL_FILE" help:"URL list used by batch scrapes"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL  string `arg:"" help:"URL to scrape"`
	JSON bool   `help:"Print the result as JSON"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	File string `short:"f" default:"webpages.txt" env:"URL_FILE" help:"URL list, one per line"`
	JSON bool   `help:"Print the results as JSON"`
}
