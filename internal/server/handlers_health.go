package server

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/manuelguarniz/project-nlp-simplified/internal/version"
)

func (s *Server) handleLiveness(c echo.Context) error {
	uptime := time.Since(s.startTime).Seconds()
	return c.JSON(200, map[string]any{
		"status": "ok",
		"uptime": uptime,
	})
}

func (s *Server) handleReadiness(c echo.Context) error {
	// Ready once the decision tree loaded; a tree without nodes means the
	// analyzer cannot serve traffic.
	info := s.analyzer.TreeInfo()
	if info.TotalNodes == 0 {
		return c.JSON(503, map[string]any{
			"status":       "unhealthy",
			"failed_check": "decision_tree",
			"error":        "tree has no nodes",
		})
	}

	return c.JSON(200, map[string]string{"status": "ready"})
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(200, version.Get())
}
