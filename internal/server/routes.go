package server

import (
	"net/http"
	"time"

	"pdbctl/internal/errors"
	"pdbctl/internal/validation"

	"github.com/labstack/echo/v4"
)

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	s.echo.GET("/healthz", s.handleHealth)

	api := s.echo.Group("/api/v1")
	api.POST("/resolve", s.handleResolve)
	api.POST("/arguments", s.handleArguments)
	api.POST("/invocation", s.handleInvocation)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Uptime: time.Since(s.startTime).Round(time.Second).String(),
	})
}

func (s *Server) handleResolve(c echo.Context) error {
	var req ResolveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validation.NonEmptyString("path", req.Path); err != nil {
		return errors.ToHTTPError(err)
	}

	root := s.resolver.FindRoot(req.Path)
	python, binDir := s.resolver.FindVenv(root)

	return c.JSON(http.StatusOK, ResolveResponse{
		Path:        req.Path,
		ProjectRoot: root,
		Python:      python,
		BinDir:      binDir,
	})
}

func (s *Server) handleArguments(c echo.Context) error {
	var req ArgumentsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	tokens, err := validation.Arguments(req.Arguments)
	if err != nil {
		return errors.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, ArgumentsResponse{Tokens: tokens})
}

func (s *Server) handleInvocation(c echo.Context) error {
	var req InvocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validation.NonEmptyString("path", req.Path); err != nil {
		return errors.ToHTTPError(err)
	}

	inv, err := s.builder.Build(req.Path, req.Script, req.Arguments)
	if err != nil {
		return errors.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, InvocationResponse{Invocation: inv})
}
