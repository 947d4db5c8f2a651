package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/manuelguarniz/project-nlp-simplified/internal/analyzer"
	"github.com/manuelguarniz/project-nlp-simplified/internal/config"
	"github.com/manuelguarniz/project-nlp-simplified/internal/logging"
	"github.com/manuelguarniz/project-nlp-simplified/internal/resources"
	"github.com/manuelguarniz/project-nlp-simplified/internal/server"
	"github.com/manuelguarniz/project-nlp-simplified/internal/version"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupAnalyzer(cfg *config.Config, clock clockwork.Clock) *analyzer.Analyzer {
	opts, err := resources.LoadOptions(cfg.OptionsFile)
	if err != nil {
		slog.Error("Failed to load analyzer options", "error", err)
		os.Exit(1)
	}

	decisionTree, err := resources.LoadTree(cfg.TreeFile)
	if err != nil {
		slog.Error("Failed to load decision tree", "error", err)
		os.Exit(1)
	}

	dict, err := resources.LoadDictionary(cfg.KeywordsFile)
	if err != nil {
		slog.Error("Failed to load keyword dictionary", "error", err)
		os.Exit(1)
	}

	return analyzer.New(decisionTree, dict, opts, clock)
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting",
		"env", cfg.AppEnv,
		"port", cfg.Port,
		"version", version.Version)

	svc := setupAnalyzer(cfg, clock)
	slog.Info("Analyzer initialized", "tree", svc.TreeInfo())

	srv := server.NewServer(cfg, svc)

	done := runGracefulShutdown(srv)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
