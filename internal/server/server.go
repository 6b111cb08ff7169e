package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/eivindh/rpa-radar/internal/config"
	"github.com/eivindh/rpa-radar/internal/database"
	"github.com/eivindh/rpa-radar/internal/modules/analytics"
	"github.com/eivindh/rpa-radar/internal/modules/processes"
	scoringapi "github.com/eivindh/rpa-radar/internal/modules/scoring/api"
)

// Config holds server configuration
type Config struct {
	Port    int
	Log     zerolog.Logger
	DB      *database.DB
	Config  *config.Config
	DevMode bool
}

// Server represents the HTTP server
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
	db     *database.DB
	cfg    *config.Config

	processHandler   *processes.Handler
	scoringHandlers  *scoringapi.Handlers
	analyticsHandler *analytics.Handler
}

// New creates a new HTTP server with all module handlers wired up
func New(cfg Config) *Server {
	log := cfg.Log.With().Str("component", "server").Logger()

	processRepo := processes.NewRepository(cfg.DB.Conn(), cfg.Log)
	processService := processes.NewService(processRepo, cfg.Log)
	analyticsService := analytics.NewService(processRepo, cfg.Log)
	snapshotRepo := analytics.NewSnapshotRepository(cfg.DB.Conn(), cfg.Log)

	s := &Server{
		router: chi.NewRouter(),
		log:    log,
		db:     cfg.DB,
		cfg:    cfg.Config,

		processHandler:   processes.NewHandler(processService, processRepo, cfg.Log),
		scoringHandlers:  scoringapi.NewHandlers(processService, cfg.Log),
		analyticsHandler: analytics.NewHandler(analyticsService, snapshotRepo, cfg.Log),
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.handleSystemStatus)
		})

		r.Route("/scoring", func(r chi.Router) {
			r.Post("/preview", s.scoringHandlers.HandleScorePreview)
		})

		r.Route("/processes", s.processHandler.Routes)
		r.Route("/analytics", s.analyticsHandler.Routes)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
