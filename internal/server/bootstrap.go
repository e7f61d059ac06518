package server

import (
	"context"

	awsclient "github.com/payitnow/payitnow-api/internal/client/aws"
	"github.com/payitnow/payitnow-api/internal/config"
	"github.com/payitnow/payitnow-api/internal/logger"
	"go.uber.org/zap"
)

// Bootstrap loads configuration, initializes the global logger and resolves secrets
// before building the App. Shared by the API and the settlement monitor entrypoints.
func Bootstrap(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger.InitLogger(cfg.Stage)
	logger.Info("Initializing payitnow", zap.String("stage", cfg.Stage))

	secrets, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		return nil, err
	}
	if err := cfg.ResolveSecrets(ctx, secrets); err != nil {
		return nil, err
	}

	return NewApp(ctx, cfg, logger.Log)
}
