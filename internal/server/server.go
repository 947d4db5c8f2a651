// Package server exposes the sentiment analyzer over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/manuelguarniz/project-nlp-simplified/internal/config"
	"github.com/manuelguarniz/project-nlp-simplified/internal/correlation"
	"github.com/manuelguarniz/project-nlp-simplified/internal/domain"
	apperrors "github.com/manuelguarniz/project-nlp-simplified/internal/errors"
	"github.com/manuelguarniz/project-nlp-simplified/internal/metrics"
	"github.com/manuelguarniz/project-nlp-simplified/internal/tree"
)

// analyzerService is the surface the handlers need; tests substitute a mock.
type analyzerService interface {
	Analyze(ctx context.Context, text string) (*domain.AnalysisResult, error)
	BatchAnalyze(ctx context.Context, texts []string) []*domain.AnalysisResult
	ValidateText(text string) error
	ClearCache()
	TreeInfo() tree.Info
}

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	analyzer  analyzerService
	startTime time.Time
}

func NewServer(cfg *config.Config, analyzer analyzerService) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(correlationMiddleware())
	e.Use(metrics.HTTPMiddleware())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		analyzer:  analyzer,
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// correlationMiddleware tags every request with a correlation ID, honoring one
// supplied by the caller, and reflects it in the response.
func correlationMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get("X-Correlation-ID")
			if id == "" {
				id = correlation.NewID()
			}
			ctx := correlation.WithID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set("X-Correlation-ID", id)
			return next(c)
		}
	}
}
