package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/asia-jinzai-support/orientation-consent/internal/blob"
	"github.com/asia-jinzai-support/orientation-consent/internal/config"
	"github.com/asia-jinzai-support/orientation-consent/internal/orientation"
	"github.com/asia-jinzai-support/orientation-consent/internal/pdf"
	"github.com/asia-jinzai-support/orientation-consent/internal/server/handlers"
	appmiddleware "github.com/asia-jinzai-support/orientation-consent/internal/server/middleware"
	"github.com/asia-jinzai-support/orientation-consent/internal/version"
)

type Server struct {
	config   *config.ServerEnvironment
	logger   *slog.Logger
	router   *chi.Mux
	workflow *handlers.WorkflowHandler
}

func NewServer(cfg *config.ServerEnvironment, logger *slog.Logger) (*Server, error) {
	renderer, err := pdf.NewRenderer(cfg.FontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PDF renderer: %w", err)
	}

	gate := orientation.NewGate(cfg.AccessToken)
	blobs := blob.NewClient(cfg.BlobBaseURL, cfg.BlobReadWriteToken, cfg.BlobHTTPTimeout)

	server := &Server{
		config:   cfg,
		logger:   logger,
		router:   chi.NewRouter(),
		workflow: handlers.NewWorkflowHandler(gate, blobs, renderer),
	}

	server.setupMiddleware()
	server.registerRoutes()

	return server, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(s.config.RequestTimeout))
	s.router.Use(appmiddleware.SecurityHeaders(s.config.Environment))
	s.router.Use(appmiddleware.RequestSizeLimit(s.config.MaxRequestBytes))
	s.router.Use(appmiddleware.RequestLogging(s.logger))
}

func (s *Server) registerRoutes() {
	s.router.Get("/", s.workflow.HandleLanguageSelect)
	s.router.Post("/guidance", s.workflow.HandleGuidance)
	s.router.Post("/sign", s.workflow.HandleSign)
	s.router.Get("/download", s.workflow.HandleDownload)
	s.router.Post("/generate-pdf", s.workflow.HandleGeneratePDF)

	s.router.Get("/health", handlers.HandleHealth)
	s.router.Get("/version", handlers.HandleVersion(version.Get().Version, version.Get().BuildDate))
}

// Router exposes the configured router for in-process tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	serverAddr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	httpServer := &http.Server{
		Addr:         serverAddr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("service listening",
			slog.String("environment", s.config.Environment),
			slog.String("address", serverAddr))

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.config.ServerShutdownTimeout)
	defer shutdownCancel()

	s.logger.Info("shutting down HTTP server")

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		s.logger.Warn("HTTP server shutdown error",
			slog.String("error", err.Error()))
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}
