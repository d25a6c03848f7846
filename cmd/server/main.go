package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"route-evaluation-service/internal/api"
	"route-evaluation-service/internal/app"
	"route-evaluation-service/internal/config"
	"route-evaluation-service/internal/platform/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel, "route-evaluation-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting route-evaluation-service",
		zap.String("port", cfg.Port),
		zap.String("geocoder", cfg.Geocoder),
		zap.String("router", cfg.Router),
		zap.String("geocode_cache", cfg.GeocodeCache),
	)

	startCtx, startCancel := context.WithTimeout(context.Background(), 15*time.Second)
	evaluator, cleanup, err := app.BuildEvaluator(startCtx, cfg, log)
	startCancel()
	if err != nil {
		log.Fatal("failed to build evaluator", zap.Error(err))
	}
	defer cleanup()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(evaluator, log.Named("http"))

	// Write timeout covers two sequential rounds of collaborator calls.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      2*cfg.CollaboratorTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down route-evaluation-service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("route-evaluation-service stopped")
}
