// Package server serves a live preview of an initial state over HTTP.
//
// The server runs the pipeline once at startup and again whenever
// [Server.Reload] is called or, with Config.Watch set, whenever one of the
// input files changes on disk. Handlers always serve the last successful
// result; a failed reload is shown on the index page and reported by
// /healthz until the inputs are fixed.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/initstate/pkg/buildinfo"
	"github.com/matzehuels/initstate/pkg/observability"
	"github.com/matzehuels/initstate/pkg/pipeline"
	"github.com/matzehuels/initstate/pkg/render"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
	reloadDebounce    = 100 * time.Millisecond
)

// Config holds configuration for the preview server.
type Config struct {
	Addr    string
	Runner  *pipeline.Runner
	Options pipeline.Options // Files or Inputs to preview
	Watch   bool
	Logger  *log.Logger
}

// Server is the preview server.
type Server struct {
	addr    string
	runner  *pipeline.Runner
	opts    pipeline.Options
	watch   bool
	logger  *log.Logger
	handler http.Handler

	mu  sync.RWMutex
	cur state
}

// state is the outcome of the latest reload.
type state struct {
	result   *pipeline.Result // last successful result
	err      error            // error of the latest reload, if it failed
	loaded   time.Time        // time of the last successful reload
	revision string           // changes with every successful reload; used as ETag
}

// New creates a server. Call [Server.Reload] or [Server.Serve] before
// expecting content from its handler.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	runner := cfg.Runner
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	opts := cfg.Options
	opts.Format = render.FormatStatic

	s := &Server{
		addr:   cfg.Addr,
		runner: runner,
		opts:   opts,
		watch:  cfg.Watch,
		logger: logger,
	}
	s.handler = s.routes()
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler { return s.handler }

// Reload reruns the pipeline. On failure the previous result is kept and
// the error is returned and remembered for /healthz.
func (s *Server) Reload(ctx context.Context) error {
	res, err := s.runner.Execute(ctx, s.opts)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.err = err
	if err != nil {
		return err
	}
	s.cur.result = res
	s.cur.loaded = time.Now()
	s.cur.revision = uuid.NewString()
	return nil
}

func (s *Server) snapshot() state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Serve loads the inputs, starts the HTTP server and blocks until ctx is
// cancelled. An initial load failure is logged, not fatal, so the inputs
// can be fixed while the server runs.
func (s *Server) Serve(ctx context.Context) error {
	if err := s.Reload(ctx); err != nil {
		s.logger.Error("initial load failed", "error", err)
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	s.logger.Info("serving preview", "addr", "http://"+ln.Addr().String())
	s.logger.Debug("build", "info", buildinfo.String())

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler: s.handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: readHeaderTimeout,
	}

	if s.watch {
		eg.Go(func() error {
			return s.watchFiles(egctx)
		})
	}

	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.logger.Debug("shutting down preview server")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

func (s *Server) routes() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		requestLogger(s.logger),
		middleware.Recoverer,
		middleware.Compress(5),
	)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/tiles.svg", s.handleTiles)
	r.Get("/network.svg", s.handleNetworkSVG)
	r.Get("/network.html", s.handleNetworkHTML)
	r.Get("/panels.json", s.handlePanels)
	r.Get("/grid.json", s.handleGrid)
	r.Get("/graph.json", s.handleGraph)
	return r
}

// requestLogger logs each request at debug level through logger.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			hooks := observability.HTTP()
			hooks.OnRequest(r.Context(), r.Method, r.URL.Path)
			next.ServeHTTP(ww, r)
			hooks.OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), time.Since(start))
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()))
		})
	}
}
