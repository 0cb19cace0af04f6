package ui

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"triagelock/app"
	"triagelock/internal"
	"triagelock/internal/config"
)

// Server exposes the triage console API
type Server struct {
	service    *app.TriageService
	cfg        *config.Config
	modelLabel string
	logger     *internal.Logger
	httpServer *http.Server
}

// NewServer creates the HTTP server with routing configured
func NewServer(service *app.TriageService, cfg *config.Config, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	s := &Server{
		service:    service,
		cfg:        cfg,
		modelLabel: cfg.LLM.Model,
		logger:     logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(3 * time.Minute))

	r.Route("/api", func(r chi.Router) {
		r.Get("/healthz", s.handleHealth)
		r.Get("/domains", s.handleListDomains)
		r.Get("/domains/{domain}/example", s.handleDomainExample)

		r.Post("/sessions", s.handleCreateSession)
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Post("/analyze", s.handleAnalyze)
			r.Get("/roi", s.handleROI)
			r.Get("/export/{format}", s.handleExport)
		})
	})

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}
	return s
}

// Handler returns the configured router, used directly by tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins serving and blocks until the server stops
func (s *Server) Start() error {
	s.logger.Info("[Server] Listening on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("[Server] Shutting down")
	return s.httpServer.Shutdown(ctx)
}
