package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagescrape"
	"github.com/fwojciec/pagescrape/fs"
	"github.com/fwojciec/pagescrape/goquery"
	pshttp "github.com/fwojciec/pagescrape/http"
	"github.com/fwojciec/pagescrape/readability"
	"github.com/fwojciec/pagescrape/scrape"
	psslog "github.com/fwojciec/pagescrape/slog"
	"github.com/fwojciec/pagescrape/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// DefaultConfigPaths are the YAML configuration files consulted, in order.
// Missing files are skipped.
var DefaultConfigPaths = []string{"pagescrape.yaml", "~/.config/pagescrape/config.yaml"}

// Main represents the program.
type Main struct {
	// YAML configuration files. Set before calling Run().
	ConfigPaths []string

	// Fetcher overrides the HTTP fetcher, for end-to-end testing.
	Fetcher pagescrape.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: DefaultConfigPaths,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagescrape"),
		kong.Description("Fetch web pages and extract their title and text"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(YAMLLoader, m.ConfigPaths...),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagescrape --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, err := NewLogger(stderr, cli.LogLevel, cli.LogFormat)
	if err != nil {
		return err
	}
	deps.Logger = logger

	extractor, err := NewExtractor(cli.Extractor)
	if err != nil {
		return err
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		opts := []pshttp.Option{pshttp.WithTimeout(cli.Timeout)}
		if cli.UserAgent != "" {
			opts = append(opts, pshttp.WithUserAgent(cli.UserAgent))
		}
		fetcher = pshttp.NewFetcher(opts...)
	}
	defer fetcher.Close()

	scraper := &scrape.Scraper{
		Fetcher:   psslog.NewLoggingFetcher(fetcher, logger),
		Extractor: psslog.NewLoggingExtractor(extractor, logger),
	}
	if command(kongCtx) == "batch" {
		scraper.Progress = progressPrinter(stderr)
	}

	deps.Scraper = psslog.NewLoggingScraper(scraper, logger)
	deps.URLs = psslog.NewLoggingURLReader(fs.NewURLReader(), logger)

	return kongCtx.Run(deps)
}

// NewExtractor returns the content extractor registered under name.
func NewExtractor(name string) (pagescrape.Extractor, error) {
	switch name {
	case "", "goquery":
		return goquery.NewExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	}
	return nil, pagescrape.Errorf(pagescrape.EINVALID, "unknown extractor %q", name)
}

// NewLogger builds the program logger writing to w.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, pagescrape.Errorf(pagescrape.EINVALID, "invalid log format %q", format)
}

// command returns the name of the selected subcommand without its arguments.
func command(kongCtx *kong.Context) string {
	fields := strings.Fields(kongCtx.Command())
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// progressPrinter reports batch progress on w, one line per URL.
func progressPrinter(w io.Writer) scrape.ProgressFunc {
	return func(e scrape.ProgressEvent) {
		switch e.Type {
		case scrape.ProgressCompleted:
			fmt.Fprintf(w, "[%d/%d] ok   %s\n", e.Completed, e.Total, scrape.TruncateURL(e.URL, 60))
		case scrape.ProgressFailed:
			fmt.Fprintf(w, "[%d/%d] fail %s\n", e.Completed, e.Total, scrape.TruncateURL(e.URL, 60))
		}
	}
}
