package http

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/pagescrape"
	"golang.org/x/sync/errgroup"
)

// Server timeout defaults.
const (
	DefaultShutdownTimeout   = 5 * time.Second
	DefaultReadHeaderTimeout = 10 * time.Second
)

// Config is the server configuration. It is built once at startup and never
// changes afterwards.
type Config struct {
	// Addr is the TCP address to listen on, e.g. ":3000".
	Addr string

	// URLFile is the path of the URL list used by batch scrapes.
	URLFile string

	// ReadHeaderTimeout bounds how long a client may take to send request
	// headers. Defaults to DefaultReadHeaderTimeout.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout is how long Close waits for in-flight requests before
	// connections are closed. Defaults to DefaultShutdownTimeout.
	ShutdownTimeout time.Duration
}

// Server serves the scraper web pages.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *http.ServeMux
	pages  *Templates

	config Config

	// Services used by the handlers.
	Scraper pagescrape.Scraper
	URLs    pagescrape.URLReader

	// Logger receives request and error logs. Defaults to slog.Default.
	Logger *slog.Logger
}

// NewServer returns a new Server for cfg. Templates are parsed eagerly so a
// broken template fails at startup.
func NewServer(cfg Config) (*Server, error) {
	pages, err := ParseTemplates()
	if err != nil {
		return nil, err
	}

	if cfg.ReadHeaderTimeout <= 0 {
		cfg.ReadHeaderTimeout = DefaultReadHeaderTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}

	s := &Server{
		server: &http.Server{ReadHeaderTimeout: cfg.ReadHeaderTimeout},
		router: http.NewServeMux(),
		pages:  pages,
		config: cfg,
	}

	s.router.HandleFunc("GET /{$}", s.handleHome)
	s.router.HandleFunc("POST /scrape", s.handleScrape)
	s.router.HandleFunc("POST /scrape-batch", s.handleScrapeBatch)

	s.server.Handler = s.requestID(s.logRequests(s.recoverPanics(s.router)))

	return s, nil
}

// Config returns the server configuration.
func (s *Server) Config() Config {
	return s.config
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Open starts listening on the configured address.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.config.Addr); err != nil {
		return err
	}
	return nil
}

// Serve accepts connections until Close is called.
func (s *Server) Serve() error {
	if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close gracefully shuts down the server. If in-flight requests outlast the
// shutdown timeout their connections are closed and Close returns
// context.DeadlineExceeded.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		_ = s.server.Close()
		return err
	}
	return nil
}

// Run serves until ctx is cancelled, then shuts down. The server is opened
// first unless Open was already called.
func (s *Server) Run(ctx context.Context) error {
	if s.ln == nil {
		if err := s.Open(); err != nil {
			return err
		}
	}
	s.logger().Info("server listening", "url", s.URL(), "file", s.config.URLFile)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(s.Serve)
	g.Go(func() error {
		<-ctx.Done()
		if err := s.Close(); errors.Is(err, context.DeadlineExceeded) {
			s.logger().Warn("forced shutdown", "timeout", s.config.ShutdownTimeout)
		} else if err != nil {
			return err
		}
		return nil
	})
	return g.Wait()
}

// ServeHTTP routes the request through the middleware chain.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.server.Handler.ServeHTTP(w, r)
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// render executes a page into a buffer first so a template failure can
// still produce a clean error response.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := s.pages.Render(&buf, page, data); err != nil {
		s.logger().Error("render page",
			"page", page,
			"request_id", RequestIDFromContext(r.Context()),
			"err", err,
		)
		http.Error(w, "Internal error.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
