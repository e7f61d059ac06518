//go:build !lambda
// +build !lambda

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/payitnow/payitnow-api/internal/logger"
	"github.com/payitnow/payitnow-api/internal/middleware"
	"github.com/payitnow/payitnow-api/internal/server"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	app, err := server.Bootstrap(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer app.Close()
	defer func() { _ = logger.Sync() }()

	cfg := app.Config
	opts, err := server.NewRouterOptions(cfg)
	if err != nil {
		logger.Fatal("Refusing to serve the API", zap.Error(err))
	}
	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst, logger.Log)
	defer limiter.Close()

	router := server.NewRouter(opts, app.NewHandlers(limiter), logger.Log)

	// The monitor shares the process locally; deployed stages run it on its own schedule
	if err := app.Monitor.Start(cfg.MonitorSchedule); err != nil {
		logger.Fatal("Failed to start settlement monitor", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	app.Monitor.Stop()
	logger.Info("Server exited")
}
