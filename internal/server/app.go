package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/payitnow/payitnow-api/internal/client/attestation"
	"github.com/payitnow/payitnow-api/internal/client/chain"
	"github.com/payitnow/payitnow-api/internal/client/circle"
	"github.com/payitnow/payitnow-api/internal/client/extractor"
	httpClient "github.com/payitnow/payitnow-api/internal/client/http"
	"github.com/payitnow/payitnow-api/internal/client/notify"
	"github.com/payitnow/payitnow-api/internal/client/swapprovider"
	"github.com/payitnow/payitnow-api/internal/config"
	"github.com/payitnow/payitnow-api/internal/constants"
	"github.com/payitnow/payitnow-api/internal/db"
	"github.com/payitnow/payitnow-api/internal/metrics"
	"github.com/payitnow/payitnow-api/internal/services"
	"go.uber.org/zap"
)

// Notify drivers selectable through NOTIFY_DRIVER
const (
	NotifyDriverLog      = "log"
	NotifyDriverSQS      = "sqs"
	NotifyDriverRabbitMQ = "rabbitmq"
)

// App holds every long-lived dependency of the API and the settlement monitor
type App struct {
	Config *config.Config
	Pool   *pgxpool.Pool
	Store  db.Store

	Chain      chain.ClientInterface
	Swaps      swapprovider.SwapClientInterface
	Bank       circle.CircleClientInterface
	Attestor   attestation.ClientInterface
	Notifier   notify.Notifier
	Alerter    notify.OperatorAlerter
	Extractor  services.IntentExtractor
	Wallets    *services.WalletService
	Gateway    *services.SwapGateway
	Fiat       *services.FiatSettlementService
	Bridge     *services.BridgeService
	Engine     *services.PaymentEngine
	Monitor    *services.SettlementMonitor
	Settlement *services.SettlementQueryService

	logger  *zap.Logger
	closers []func()
}

// NewApp dials the database and both chains and builds every client and service from cfg.
// Secrets must already be resolved.
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	app := &App{Config: cfg, logger: logger}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, db.DefaultPoolConfig)
	if err != nil {
		return nil, err
	}
	app.Pool = pool
	app.Store = db.NewStore(pool)
	app.closers = append(app.closers, pool.Close)

	if err := app.initClients(ctx); err != nil {
		app.Close()
		return nil, err
	}
	app.initServices()
	return app, nil
}

func (a *App) initClients(ctx context.Context) error {
	cfg := a.Config

	ethRPC, err := chain.Dial(cfg.EthRPCURL)
	if err != nil {
		return fmt.Errorf("failed to dial ETH RPC: %w", err)
	}
	a.closers = append(a.closers, ethRPC.Close)
	arcRPC, err := chain.Dial(cfg.ArcRPCURL)
	if err != nil {
		return fmt.Errorf("failed to dial Arc RPC: %w", err)
	}
	a.closers = append(a.closers, arcRPC.Close)
	a.Chain = chain.NewClient(ethRPC, arcRPC, contractsFromConfig(cfg))

	a.Swaps = swapprovider.NewSwapClient(cfg.SwapAPIKey, cfg.SwapAPISecret, cfg.SwapBaseURL, cfg.ProviderTimeout,
		httpClient.WithMetricsCollector(metrics.NewProviderCollector("swap")))
	a.Bank = circle.NewCircleClient(cfg.CircleAPIKey, cfg.CircleBaseURL, cfg.ProviderTimeout,
		httpClient.WithMetricsCollector(metrics.NewProviderCollector("circle")))
	a.Attestor = attestation.NewAttestationClient(cfg.AttestationBaseURL, cfg.ProviderTimeout,
		httpClient.WithMetricsCollector(metrics.NewProviderCollector("attestation")))
	a.Extractor = extractor.NewOllamaExtractor(cfg.ExtractorBaseURL, cfg.ExtractorModel, cfg.ProviderTimeout,
		httpClient.WithMetricsCollector(metrics.NewProviderCollector("extractor")))

	notifier, err := a.newNotifier(ctx)
	if err != nil {
		return err
	}
	a.Notifier = notifier
	a.Alerter = a.newAlerter()
	return nil
}

func (a *App) initServices() {
	cfg := a.Config

	a.Wallets = services.NewWalletService(a.Store, cfg.WalletKeystoreDir, cfg.WalletKeystorePassphrase, a.logger.Named("wallets"))
	resolver := services.NewNetworkResolver(a.Swaps)
	a.Gateway = services.NewSwapGateway(a.Swaps, resolver, a.Chain, a.Store, a.logger.Named("swap_gateway"))
	a.Fiat = services.NewFiatSettlementService(a.Bank, a.Store, a.Alerter, a.logger.Named("fiat"))
	a.Bridge = services.NewBridgeService(a.Chain, a.Attestor, a.logger.Named("bridge"))
	a.Engine = services.NewPaymentEngine(
		services.NewIntentService(a.Extractor, a.logger.Named("intents")),
		a.Wallets, a.Chain, a.Gateway, a.Fiat, a.logger.Named("engine"),
	)
	a.Monitor = services.NewSettlementMonitor(a.Store, a.Swaps, a.Bank, a.Chain, a.Notifier, a.logger.Named("settlement_monitor"))
	a.Settlement = services.NewSettlementQueryService(a.Store)
}

// Close releases connections in reverse order of creation
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// contractsFromConfig maps configured addresses onto the chain client. ETH is routable
// on the Arc DEX only when its token address is configured.
func contractsFromConfig(cfg *config.Config) chain.Contracts {
	contracts := chain.Contracts{
		EthUSDC:               common.HexToAddress(cfg.EthUSDCAddress),
		ArcUSDC:               common.HexToAddress(cfg.ArcUSDCAddress),
		ArcTokenMessenger:     common.HexToAddress(cfg.ArcTokenMessenger),
		EthMessageTransmitter: common.HexToAddress(cfg.EthMessageTransmitter),
		ArcDexRouter:          common.HexToAddress(cfg.ArcDexRouter),
		DestinationDomain:     cfg.BridgeDestinationDomain,
		ArcTokens: map[string]chain.Token{
			constants.AssetUSDC: {Address: common.HexToAddress(cfg.ArcUSDCAddress), Decimals: chain.USDCDecimals},
		},
	}
	if common.IsHexAddress(cfg.ArcETHTokenAddress) {
		contracts.ArcTokens[constants.AssetETH] = chain.Token{
			Address:  common.HexToAddress(cfg.ArcETHTokenAddress),
			Decimals: chain.NativeDecimals,
		}
	}
	return contracts
}

func (a *App) newNotifier(ctx context.Context) (notify.Notifier, error) {
	cfg := a.Config
	switch strings.ToLower(cfg.NotifyDriver) {
	case NotifyDriverSQS:
		if cfg.NotifyQueueURL == "" {
			return nil, fmt.Errorf("NOTIFY_QUEUE_URL is required for the sqs notify driver")
		}
		client, err := newSQSClient(ctx, cfg.NotifyQueueEndpoint)
		if err != nil {
			return nil, err
		}
		return notify.NewSQSNotifier(client, cfg.NotifyQueueURL), nil
	case NotifyDriverRabbitMQ:
		n, err := notify.NewRabbitMQNotifier(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, n.Close)
		return n, nil
	case NotifyDriverLog, "":
		return notify.NewLogNotifier(a.logger.Named("notify")), nil
	default:
		return nil, fmt.Errorf("unknown NOTIFY_DRIVER %q", cfg.NotifyDriver)
	}
}

// newSQSClient uses the default credential chain, or static credentials against endpoint
// when one is configured
func newSQSClient(ctx context.Context, endpoint string) (*sqs.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if endpoint != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func (a *App) newAlerter() notify.OperatorAlerter {
	cfg := a.Config
	if cfg.ResendAPIKey == "" || cfg.AlertEmailTo == "" {
		a.logger.Info("Operator email alerts disabled, alerts go to the log")
		return notify.NewLogNotifier(a.logger.Named("alerts"))
	}
	return notify.NewEmailAlerter(cfg.ResendAPIKey, cfg.AlertEmailFrom, splitEmails(cfg.AlertEmailTo), a.logger.Named("alerts"))
}

func splitEmails(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
