// Package server exposes the logo pipeline over HTTP.
//
// Routes:
//
//	GET  /              form page
//	POST /generate      resolve a seed: {"seed": n}
//	GET  /svg/{seed}    image/svg+xml
//	GET  /png/{seed}    image/png
//	GET  /json/{seed}   logo model
//	GET  /themes        palette listing
//	GET  /healthz       liveness and build info
//
// Rendering endpoints accept theme, shapes, grid_size, opacity, overlap,
// uuid, width and height as query parameters. Output for a given seed and
// query never changes, so responses are publicly cacheable for a day.
package server

import (
	"context"
	_ "embed"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/utensils/hexalith/pkg/buildinfo"
	"github.com/utensils/hexalith/pkg/pipeline"
)

// DefaultAddr is the listen address when none is configured.
const DefaultAddr = ":3000"

const cacheControl = "public, max-age=86400"

//go:embed index.html
var indexHTML []byte

// Server routes HTTP requests into a pipeline runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New builds a server around runner. A nil logger uses the runner's.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = runner.Logger
	}
	s := &Server{runner: runner, logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(cors)
	r.Use(middleware.SetHeader("Server", buildinfo.UserAgent()))

	r.Get("/", s.handleIndex)
	r.Post("/generate", s.handleGenerate)
	r.Get("/svg/{seed}", s.handleArtifact(pipeline.FormatSVG, "image/svg+xml"))
	r.Get("/png/{seed}", s.handleArtifact(pipeline.FormatPNG, "image/png"))
	r.Get("/json/{seed}", s.handleArtifact(pipeline.FormatJSON, "application/json"))
	r.Get("/themes", s.handleThemes)
	r.Get("/healthz", s.handleHealth)
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
