package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints (never rate limited)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)

	limiter := NewRequestRateLimiter(s.config.RateLimitPerSecond, s.config.RateLimitBurst)

	api := s.echo.Group("/api", limiter.Middleware())
	api.POST("/analyze", s.handleAnalyze)
	api.POST("/analyze/batch", s.handleBatchAnalyze)
	api.POST("/validate", s.handleValidate)
	api.GET("/tree", s.handleTreeInfo)
	api.POST("/cache/clear", s.handleClearCache)
}
