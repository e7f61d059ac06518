//go:build lambda
// +build lambda

package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/payitnow/payitnow-api/internal/logger"
	"github.com/payitnow/payitnow-api/internal/middleware"
	"github.com/payitnow/payitnow-api/internal/server"
	"go.uber.org/zap"
)

var ginLambda *ginadapter.GinLambda

func init() {
	app, err := server.Bootstrap(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	// Connections and the limiter live for the lifetime of the execution environment
	cfg := app.Config
	opts, err := server.NewRouterOptions(cfg)
	if err != nil {
		logger.Fatal("Refusing to serve the API", zap.Error(err))
	}
	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst, logger.Log)
	router := server.NewRouter(opts, app.NewHandlers(limiter), logger.Log)

	ginLambda = ginadapter.New(router)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("method", req.HTTPMethod),
	)
	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer func() { _ = logger.Sync() }()
	lambda.Start(Handler)
}
