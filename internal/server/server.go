// Package server provides the HTTP REST API for the skill gap analyzer.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skill-gap-analyzer/internal/matching"
	"github.com/jonathan/skill-gap-analyzer/internal/normalize"
	"github.com/jonathan/skill-gap-analyzer/internal/report"
)

// Config holds server configuration
type Config struct {
	Port           int
	FuzzyThreshold float64
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	generator  *report.Generator
	logger     *zap.Logger
}

// New creates a new server instance. The report generator is built once and
// shared across requests; the engine is pure, so no locking is needed.
func New(cfg Config, log *zap.Logger) *Server {
	normalizer := normalize.NewNormalizer(normalize.DefaultAliasTable())
	matcher := matching.NewMatcher(cfg.FuzzyThreshold)

	s := &Server{
		generator: report.NewGenerator(normalizer, matcher),
		logger:    log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze-gap", s.handleAnalyzeGap)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Start runs the server until the context is canceled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
