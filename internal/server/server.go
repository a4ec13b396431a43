// Package server exposes project resolution and argument sanitization over a
// small JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pdbctl/internal/config"
	"pdbctl/internal/constants"
	"pdbctl/internal/invocation"
	"pdbctl/internal/logger"
	"pdbctl/internal/project"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server represents the pdbctl HTTP server
type Server struct {
	cfg       config.ServerConfig
	echo      *echo.Echo
	resolver  *project.Resolver
	builder   *invocation.Builder
	startTime time.Time
}

// New creates a new server from the global configuration
func New(cfg *config.Config) *Server {
	resolver := &project.Resolver{
		ExtraMarkers:   cfg.Resolver.ExtraMarkers,
		ExtraVenvNames: cfg.Resolver.ExtraVenvNames,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(logger.RequestLogger())

	s := &Server{
		cfg:      cfg.Server,
		echo:     e,
		resolver: resolver,
		builder:  &invocation.Builder{Resolver: resolver},
	}
	s.setupRoutes()
	return s
}

// Start runs the server until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	s.startTime = time.Now()
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	s.echo.Server.ReadTimeout = constants.DefaultServerReadTimeout
	s.echo.Server.WriteTimeout = constants.DefaultServerWriteTimeout

	// The derived context releases the shutdown goroutine when Start
	// returns early, e.g. when the port is already taken.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Shut down gracefully when the context is cancelled
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultServerShutdownTimeout)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("Server shutdown failed")
		}
	}()

	logger.WithFields(logger.Fields{"addr": addr}).Info("Starting pdbctl server")
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
