package server

import (
	"fmt"

	"github.com/labstack/echo/v4"

	apperrors "github.com/manuelguarniz/project-nlp-simplified/internal/errors"
)

// maxBatchSize bounds a single batch request.
const maxBatchSize = 100

type analyzeRequest struct {
	Text string `json:"text"`
}

type batchRequest struct {
	Texts []string `json:"texts"`
}

func (s *Server) handleAnalyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.InvalidInput("invalid request body")
	}

	result, err := s.analyzer.Analyze(c.Request().Context(), req.Text)
	if err != nil {
		return err
	}

	if err := c.JSON(200, result); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleBatchAnalyze(c echo.Context) error {
	var req batchRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.InvalidInput("invalid request body")
	}
	if len(req.Texts) == 0 {
		return apperrors.InvalidInput("texts must not be empty")
	}
	if len(req.Texts) > maxBatchSize {
		return apperrors.InvalidInput("too many texts in batch").
			WithContext("max_batch_size", maxBatchSize).
			WithContext("got", len(req.Texts))
	}

	results := s.analyzer.BatchAnalyze(c.Request().Context(), req.Texts)

	if err := c.JSON(200, map[string]any{
		"results": results,
		"count":   len(results),
	}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleValidate(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.InvalidInput("invalid request body")
	}

	if err := s.analyzer.ValidateText(req.Text); err != nil {
		structured := apperrors.AsStructuredError(err)
		return c.JSON(200, map[string]any{
			"valid": false,
			"error": structured.Message,
		})
	}

	return c.JSON(200, map[string]any{"valid": true})
}

func (s *Server) handleTreeInfo(c echo.Context) error {
	return c.JSON(200, s.analyzer.TreeInfo())
}

func (s *Server) handleClearCache(c echo.Context) error {
	s.analyzer.ClearCache()
	return c.JSON(200, map[string]string{"status": "ok"})
}
