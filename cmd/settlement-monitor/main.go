package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/payitnow/payitnow-api/internal/logger"
	"github.com/payitnow/payitnow-api/internal/server"
	"github.com/payitnow/payitnow-api/internal/services"
	"go.uber.org/zap"
)

// Application holds the dependencies of the scheduled Lambda handler
type Application struct {
	monitor *services.SettlementMonitor
}

// HandleRequest runs one reconciliation pass per scheduled invocation
func (app *Application) HandleRequest(ctx context.Context) error {
	summary, err := app.monitor.Tick(ctx)
	// Notifications are dispatched asynchronously and must finish before the invocation returns
	app.monitor.Wait()
	if err != nil {
		logger.Error("Settlement reconciliation failed", zap.Error(err))
		return fmt.Errorf("HandleRequest: %w", err)
	}
	logger.Info("Settlement reconciliation finished",
		zap.Int("polled", summary.Polled),
		zap.Int("transitioned", summary.Transitioned),
		zap.Int("query_errors", summary.QueryErrors),
	)
	return nil
}

func main() {
	ctx := context.Background()

	app, err := server.Bootstrap(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize settlement monitor: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		logger.Info("Lambda cold start: settlement monitor")
		lambda.Start((&Application{monitor: app.Monitor}).HandleRequest)
		return
	}

	defer app.Close()
	if err := app.Monitor.Start(app.Config.MonitorSchedule); err != nil {
		logger.Fatal("Failed to start settlement monitor", zap.Error(err))
	}
	logger.Info("Settlement monitor running", zap.String("schedule", app.Config.MonitorSchedule))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Stopping settlement monitor...")
	app.Monitor.Stop()
}
