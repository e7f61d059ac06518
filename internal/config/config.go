package config

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	awsclient "github.com/payitnow/payitnow-api/internal/client/aws"
	"github.com/payitnow/payitnow-api/internal/helpers"
	"github.com/payitnow/payitnow-api/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds all runtime configuration for the API and the settlement monitor.
type Config struct {
	Stage    string `mapstructure:"STAGE"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	Port               string   `mapstructure:"PORT"`
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RateLimitPerMinute int      `mapstructure:"RATE_LIMIT_PER_MINUTE"`
	RateLimitBurst     int      `mapstructure:"RATE_LIMIT_BURST"`
	APIKeys            []string `mapstructure:"-"`

	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBHost      string `mapstructure:"DB_HOST"`
	DBName      string `mapstructure:"DB_NAME"`
	DBSSLMode   string `mapstructure:"DB_SSLMODE"`

	CircleBaseURL string `mapstructure:"CIRCLE_BASE_URL"`
	CircleAPIKey  string `mapstructure:"CIRCLE_API_KEY"`

	SwapBaseURL   string `mapstructure:"SWAP_BASE_URL"`
	SwapAPIKey    string `mapstructure:"SWAP_API_KEY"`
	SwapAPISecret string `mapstructure:"SWAP_API_SECRET"`

	AttestationBaseURL string `mapstructure:"ATTESTATION_BASE_URL"`

	EthRPCURL                string `mapstructure:"ETH_RPC_URL"`
	ArcRPCURL                string `mapstructure:"ARC_RPC_URL"`
	EthUSDCAddress           string `mapstructure:"ETH_USDC_ADDRESS"`
	ArcUSDCAddress           string `mapstructure:"ARC_USDC_ADDRESS"`
	ArcTokenMessenger        string `mapstructure:"ARC_TOKEN_MESSENGER"`
	EthMessageTransmitter    string `mapstructure:"ETH_MESSAGE_TRANSMITTER"`
	ArcDexRouter             string `mapstructure:"ARC_DEX_ROUTER"`
	ArcETHTokenAddress       string `mapstructure:"ARC_ETH_TOKEN_ADDRESS"`
	BridgeDestinationDomain  uint32 `mapstructure:"BRIDGE_DESTINATION_DOMAIN"`
	WalletKeystoreDir        string `mapstructure:"WALLET_KEYSTORE_DIR"`
	WalletKeystorePassphrase string `mapstructure:"WALLET_KEYSTORE_PASSPHRASE"`

	ExtractorBaseURL string `mapstructure:"EXTRACTOR_BASE_URL"`
	ExtractorModel   string `mapstructure:"EXTRACTOR_MODEL"`

	NotifyDriver   string `mapstructure:"NOTIFY_DRIVER"`
	NotifyQueueURL string `mapstructure:"NOTIFY_QUEUE_URL"`
	// NotifyQueueEndpoint points SQS at a local emulator with static credentials
	NotifyQueueEndpoint string `mapstructure:"NOTIFY_QUEUE_ENDPOINT"`
	RabbitMQURL         string `mapstructure:"RABBITMQ_URL"`
	RabbitMQExchange    string `mapstructure:"RABBITMQ_EXCHANGE"`

	ResendAPIKey     string `mapstructure:"RESEND_API_KEY"`
	AlertEmailFrom   string `mapstructure:"ALERT_EMAIL_FROM"`
	AlertEmailTo     string `mapstructure:"ALERT_EMAIL_TO"`
	MonitorSchedule  string `mapstructure:"MONITOR_SCHEDULE"`
	ProviderTimeout  time.Duration
	ProviderTimeoutS int `mapstructure:"PROVIDER_TIMEOUT_SECONDS"`
}

var defaults = map[string]interface{}{
	"STAGE":                     helpers.StageLocal,
	"LOG_LEVEL":                 "info",
	"PORT":                      "8000",
	"CORS_ALLOWED_ORIGINS":      "*",
	"RATE_LIMIT_PER_MINUTE":     30,
	"RATE_LIMIT_BURST":          10,
	"DB_SSLMODE":                "require",
	"CIRCLE_BASE_URL":           "https://api-sandbox.circle.com/v1",
	"SWAP_BASE_URL":             "https://api.changelly.com/v2",
	"ATTESTATION_BASE_URL":      "https://iris-api-sandbox.circle.com",
	"ARC_RPC_URL":               "https://rpc.testnet.arc.network",
	"ETH_USDC_ADDRESS":          "0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238",
	"ARC_USDC_ADDRESS":          "0x3600000000000000000000000000000000000000",
	"ARC_TOKEN_MESSENGER":       "0x8FE6B999Dc680CcFDD5Bf7EB0974218be2542DAA",
	"ETH_MESSAGE_TRANSMITTER":   "0x7865fAfC2db2093669d92c0F33AeEF291086BEFD",
	"ARC_DEX_ROUTER":            "0xC532a74256D3Db42D0Bf7a0400fEFDbad7694008",
	"BRIDGE_DESTINATION_DOMAIN": 0,
	"WALLET_KEYSTORE_DIR":       "./user_wallets",
	"EXTRACTOR_BASE_URL":        "http://localhost:11434",
	"EXTRACTOR_MODEL":           "payitnow-intent",
	"NOTIFY_DRIVER":             "log",
	"RABBITMQ_EXCHANGE":         "payitnow.notifications",
	"MONITOR_SCHEDULE":          "@every 60s",
	"PROVIDER_TIMEOUT_SECONDS":  30,
}

// Load reads .env (when present) and the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Log.Debug("No .env file loaded", zap.Error(err))
	}
	return LoadFrom(viper.New())
}

// LoadFrom reads configuration through the provided viper instance
func LoadFrom(v *viper.Viper) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	// Explicit binds so keys without defaults still appear in Unmarshal
	for _, key := range []string{
		"DATABASE_URL", "DB_HOST", "DB_NAME", "CIRCLE_API_KEY", "SWAP_API_KEY", "SWAP_API_SECRET",
		"ETH_RPC_URL", "ARC_ETH_TOKEN_ADDRESS", "WALLET_KEYSTORE_PASSPHRASE", "NOTIFY_QUEUE_URL", "NOTIFY_QUEUE_ENDPOINT", "RABBITMQ_URL",
		"RESEND_API_KEY", "ALERT_EMAIL_FROM", "ALERT_EMAIL_TO", "API_KEYS",
	} {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.APIKeys = splitList(v.GetString("API_KEYS"))
	cfg.ProviderTimeout = time.Duration(cfg.ProviderTimeoutS) * time.Second

	if !helpers.IsValidStage(cfg.Stage) {
		return nil, fmt.Errorf("invalid STAGE %q", cfg.Stage)
	}

	return &cfg, nil
}

// ResolveSecrets fills secret fields from Secrets Manager, keeping the env value
// when no ARN is configured.
func (c *Config) ResolveSecrets(ctx context.Context, secrets *awsclient.SecretsManagerClient) error {
	targets := []struct {
		arnEnv   string
		fallback string
		dst      *string
		required bool
	}{
		{"CIRCLE_API_KEY_ARN", "CIRCLE_API_KEY", &c.CircleAPIKey, true},
		{"SWAP_API_SECRET_ARN", "SWAP_API_SECRET", &c.SwapAPISecret, true},
		{"WALLET_KEYSTORE_PASSPHRASE_ARN", "WALLET_KEYSTORE_PASSPHRASE", &c.WalletKeystorePassphrase, true},
		{"RESEND_API_KEY_ARN", "RESEND_API_KEY", &c.ResendAPIKey, false},
	}

	for _, t := range targets {
		value, err := secrets.GetSecretString(ctx, t.arnEnv, t.fallback)
		if err != nil {
			if t.required {
				return err
			}
			continue
		}
		*t.dst = value
	}

	if keys, err := secrets.GetSecretString(ctx, "API_KEYS_ARN", "API_KEYS"); err == nil {
		c.APIKeys = splitList(keys)
	}

	dsn, err := c.resolveDatabaseURL(ctx, secrets)
	if err != nil {
		return err
	}
	c.DatabaseURL = dsn
	return nil
}

type rdsSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// IsDeployed reports whether the stage runs outside a developer machine or test
func (c *Config) IsDeployed() bool {
	return c.Stage == helpers.StageProd || c.Stage == helpers.StageDev
}

func (c *Config) resolveDatabaseURL(ctx context.Context, secrets *awsclient.SecretsManagerClient) (string, error) {
	if c.IsDeployed() {
		if c.DBHost == "" || c.DBName == "" {
			return "", fmt.Errorf("missing required DB environment variables for deployed environment (DB_HOST, DB_NAME, RDS_SECRET_ARN)")
		}
		var secret rdsSecret
		if err := secrets.GetSecretJSON(ctx, "RDS_SECRET_ARN", &secret); err != nil {
			return "", fmt.Errorf("failed to retrieve RDS secret: %w", err)
		}
		if secret.Username == "" || secret.Password == "" {
			return "", fmt.Errorf("username or password not found in RDS secret")
		}
		return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
			url.QueryEscape(secret.Username), url.QueryEscape(secret.Password),
			c.DBHost, c.DBName, c.DBSSLMode), nil
	}

	dsn, err := secrets.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
	if err != nil {
		return "", fmt.Errorf("DATABASE_URL is required for local development: %w", err)
	}
	return dsn, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
