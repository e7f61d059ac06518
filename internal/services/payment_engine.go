package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/payitnow/payitnow-api/internal/client/chain"
	"github.com/payitnow/payitnow-api/internal/constants"
	"github.com/payitnow/payitnow-api/internal/helpers"
	"github.com/payitnow/payitnow-api/internal/metrics"
	"github.com/payitnow/payitnow-api/internal/types/business"
	"go.uber.org/zap"
)

const missingDetailsMessage = "I understood the intent, but I am missing details."

// TrackedAssets are the lines of the balance report, in order
var TrackedAssets = []business.TrackedAsset{
	{Ticker: constants.AssetETH, DisplayName: "ETH", Network: "Sepolia Testnet"},
	{Ticker: constants.AssetUSDC, DisplayName: "USDC", Network: "Arc Blockchain (L1)"},
	{Ticker: constants.AssetUSDCETH, DisplayName: "USDC", Network: "Sepolia (ERC-20)"},
}

// PaymentEngine routes a validated intent to exactly one execution path
type PaymentEngine struct {
	intents    *IntentService
	identities IdentityProvider
	chain      chain.ClientInterface
	swaps      *SwapGateway
	fiat       *FiatSettlementService
	logger     *zap.Logger
}

// NewPaymentEngine creates the execution engine
func NewPaymentEngine(intents *IntentService, identities IdentityProvider, chainClient chain.ClientInterface, swaps *SwapGateway, fiat *FiatSettlementService, logger *zap.Logger) *PaymentEngine {
	return &PaymentEngine{
		intents:    intents,
		identities: identities,
		chain:      chainClient,
		swaps:      swaps,
		fiat:       fiat,
		logger:     logger,
	}
}

// HandleMessage runs the full pipeline for one user message: extraction, validation,
// the save-contact pre-check and execution.
func (e *PaymentEngine) HandleMessage(ctx context.Context, userID int64, text string) (*business.ExecutionResult, error) {
	intent, err := e.intents.Parse(ctx, text)
	if err != nil {
		metrics.IncExecution("unparsed", ErrorKindLabel(err))
		return nil, err
	}

	if !intent.Complete {
		err := newExecutionError(ErrValidationIncomplete, missingMessage(intent))
		metrics.IncExecution(string(intent.Kind), ErrorKindLabel(err))
		return nil, err
	}

	if intent.Kind == business.IntentSaveContact {
		result, err := e.fiat.SaveBeneficiary(ctx, userID, intent)
		metrics.IncExecution(string(intent.Kind), ErrorKindLabel(err))
		return result, err
	}

	identity, err := e.identities.GetOrCreateIdentity(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve wallet: %w", err)
	}
	return e.Execute(ctx, identity, intent)
}

// Execute dispatches a complete intent on its kind
func (e *PaymentEngine) Execute(ctx context.Context, identity *business.WalletIdentity, intent business.PaymentIntent) (result *business.ExecutionResult, err error) {
	defer func() {
		metrics.IncExecution(string(intent.Kind), ErrorKindLabel(err))
	}()

	if !intent.Complete || !intent.HasRequiredFields() {
		return nil, newExecutionError(ErrValidationIncomplete, missingMessage(intent))
	}

	e.logger.Info("Executing intent",
		zap.Int64("user_id", identity.UserID),
		zap.String("kind", string(intent.Kind)),
		zap.String("currency", intent.Currency),
	)

	switch intent.Kind {
	case business.IntentCheckBalance:
		return e.balanceReport(ctx, identity), nil
	case business.IntentSaveContact:
		return nil, newExecutionError(ErrValidationIncomplete, "Contacts are saved with a separate request. Please send the banking details again.")
	case business.IntentBuy:
		return e.swaps.Buy(ctx, identity, intent.Currency, intent.Amount.Decimal)
	case business.IntentSettleFiat:
		return e.fiat.Settle(ctx, identity.UserID, intent)
	default:
		return e.transfer(ctx, identity, intent)
	}
}

// balanceReport lists every tracked asset. A failing asset reads Error and the rest proceed.
func (e *PaymentEngine) balanceReport(ctx context.Context, identity *business.WalletIdentity) *business.ExecutionResult {
	var report strings.Builder
	fmt.Fprintf(&report, "Wallet Overview\n%s\n\n", helpers.ShortAddress(identity.Address.Hex()))

	for _, asset := range TrackedAssets {
		balance, err := e.chain.Balance(ctx, identity.Address, asset.Ticker)
		if err != nil {
			e.logger.Warn("Balance query failed",
				zap.String("asset", asset.Ticker),
				zap.String("address", identity.Address.Hex()),
				zap.Error(err),
			)
			fmt.Fprintf(&report, "• %s: Error\n", asset.DisplayName)
			continue
		}
		if balance.IsPositive() {
			fmt.Fprintf(&report, "• **%s %s**\n  _(%s)_\n", balance, asset.DisplayName, asset.Network)
		} else {
			fmt.Fprintf(&report, "• %s %s: %s\n", asset.DisplayName, asset.Network, balance)
		}
	}

	return &business.ExecutionResult{
		Message:   report.String(),
		QRAddress: identity.Address.Hex(),
	}
}

// transfer sends intent.Amount of intent.Currency from the user's wallet. It is synchronous
// and creates no settlement record.
func (e *PaymentEngine) transfer(ctx context.Context, identity *business.WalletIdentity, intent business.PaymentIntent) (*business.ExecutionResult, error) {
	if !common.IsHexAddress(intent.Recipient) {
		return nil, newExecutionError(ErrValidationIncomplete, "I need the recipient's wallet address (0x...) to send crypto.")
	}
	recipient := common.HexToAddress(intent.Recipient)
	currency := intent.Currency
	amount := intent.Amount.Decimal

	balance, err := e.chain.Balance(ctx, identity.Address, currency)
	if err != nil {
		if errors.Is(err, chain.ErrUnsupportedAsset) {
			return nil, wrapExecutionError(ErrValidationIncomplete, fmt.Sprintf("I can't send %s yet.", currency), err)
		}
		return nil, wrapExecutionError(ErrProviderError, fmt.Sprintf("Could not read your %s balance.", currency), err)
	}

	if balance.LessThan(amount) {
		return nil, needsFunding(fmt.Sprintf("Transaction Failed: Insufficient Funds.\nRequired: %s %s\nAvailable: %s %s",
			amount, currency, balance, currency), identity.Address.Hex())
	}

	txHash, err := e.chain.Transfer(ctx, identity.PrivateKey, recipient, currency, amount)
	if err != nil {
		return nil, wrapExecutionError(ErrProviderError, "Transfer failed: "+err.Error(), err)
	}

	e.logger.Info("Transfer submitted",
		zap.Int64("user_id", identity.UserID),
		zap.String("tx_hash", txHash.Hex()),
		zap.String("currency", currency),
	)
	return &business.ExecutionResult{
		Message: fmt.Sprintf("TRANSFER EXECUTED:\nTo: %s\nAmount: %s %s\nTx Hash: %s",
			intent.Recipient, amount, currency, txHash.Hex()),
		ExternalTxID: txHash.Hex(),
	}, nil
}

func missingMessage(intent business.PaymentIntent) string {
	missing := intent.MissingFields()
	if len(missing) == 0 {
		return missingDetailsMessage
	}
	return missingDetailsMessage + " Missing: " + strings.Join(missing, ", ") + "."
}
