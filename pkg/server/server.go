package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-supportform/pkg/demo"
)

// PageRenderer renders the host page.
type PageRenderer interface {
	ContentType() string
	Render(ctx context.Context, w io.Writer) error
}

// Option configures the Server.
type Option func(*Server)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) {
		if strings.TrimSpace(addr) != "" {
			s.addr = addr
		}
	}
}

// WithLogger sets the request and lifecycle logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithAssets serves files from assets under prefix. The bundle and
// wasm_exec.js live there.
func WithAssets(assets fs.FS, prefix string) Option {
	return func(s *Server) {
		s.assets = assets
		if trimmed := strings.TrimRight(strings.TrimSpace(prefix), "/"); trimmed != "" {
			s.assetPrefix = trimmed
		}
	}
}

// WithMetrics enables request metrics and the /metrics endpoint.
func WithMetrics(metrics *Metrics) Option {
	return func(s *Server) {
		s.metrics = metrics
	}
}

// WithShutdownTimeout bounds graceful shutdown in Run.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// Server hosts the support form.
type Server struct {
	addr            string
	page            PageRenderer
	assets          fs.FS
	assetPrefix     string
	logger          *slog.Logger
	metrics         *Metrics
	shutdownTimeout time.Duration
	router          chi.Router
}

// New constructs the server and its routes.
func New(page PageRenderer, opts ...Option) *Server {
	s := &Server{
		addr:            ":8080",
		page:            page,
		assetPrefix:     "/assets",
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		shutdownTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
	}

	r.Get("/", s.handlePage)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}
	if s.assets != nil {
		files := http.StripPrefix(s.assetPrefix+"/", http.FileServer(http.FS(s.assets)))
		r.Handle(s.assetPrefix+"/*", wasmContentType(files))
	}
	return r
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if s.page == nil {
		http.Error(w, "page renderer not configured", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := s.page.Render(r.Context(), &buf); err != nil {
		s.logger.Error("render page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	s.metrics.ObserveRender(demo.Enabled(r.URL.RequestURI()))

	w.Header().Set("Content-Type", s.page.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Warn("write page", "error", err)
	}
}

func wasmContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if path.Ext(r.URL.Path) == ".wasm" {
			w.Header().Set("Content-Type", "application/wasm")
		}
		next.ServeHTTP(w, r)
	})
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}
