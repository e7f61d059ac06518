package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/payitnow/payitnow-api/internal/client/chain"
	"github.com/payitnow/payitnow-api/internal/client/swapprovider"
	"github.com/payitnow/payitnow-api/internal/constants"
	"github.com/payitnow/payitnow-api/internal/db"
	"github.com/payitnow/payitnow-api/internal/helpers"
	"github.com/payitnow/payitnow-api/internal/types/business"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var liquidityBuffer = decimal.NewFromInt(100 + constants.LiquidityBufferPercent).Div(decimal.NewFromInt(100))

// SwapQuote is the provider price for an exchange. Both amounts are in units of the quoted target.
type SwapQuote struct {
	EstimatedCost decimal.Decimal
	MinimumAmount decimal.Decimal
}

// SwapOrder is an order accepted by the exchange provider
type SwapOrder struct {
	DepositAddress string
	ExternalTxID   string
}

// SwapGateway prices and places crypto swaps against the exchange provider, with an
// on-chain DEX fallback for crypto-to-crypto pairs.
type SwapGateway struct {
	provider swapprovider.SwapClientInterface
	resolver *NetworkResolver
	chain    chain.ClientInterface
	store    db.Store
	logger   *zap.Logger
}

// NewSwapGateway creates a swap gateway
func NewSwapGateway(provider swapprovider.SwapClientInterface, resolver *NetworkResolver, chainClient chain.ClientInterface, store db.Store, logger *zap.Logger) *SwapGateway {
	return &SwapGateway{
		provider: provider,
		resolver: resolver,
		chain:    chainClient,
		store:    store,
		logger:   logger,
	}
}

// Quote returns how much of toAsset the given amount of fromAsset buys
func (g *SwapGateway) Quote(ctx context.Context, fromAsset, toAsset string, amount decimal.Decimal) (*SwapQuote, error) {
	from, to := helpers.NormalizeTicker(fromAsset), helpers.NormalizeTicker(toAsset)

	networkFrom, err := g.networkFor(ctx, from)
	if err != nil {
		return nil, err
	}
	networkTo, err := g.networkFor(ctx, to)
	if err != nil {
		return nil, err
	}

	quote, err := g.provider.GetExchangeAmount(ctx, swapprovider.QuoteRequest{
		From:        from,
		To:          to,
		NetworkFrom: networkFrom,
		NetworkTo:   networkTo,
		AmountFrom:  amount.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get quote for %s->%s: %w", from, to, err)
	}

	return &SwapQuote{
		EstimatedCost: quote.AmountTo,
		MinimumAmount: quote.MinAmount,
	}, nil
}

// CreateOrder places an exchange order paying out to destination
func (g *SwapGateway) CreateOrder(ctx context.Context, fromAsset, toAsset string, amount decimal.Decimal, destination string) (*SwapOrder, error) {
	from, to := helpers.NormalizeTicker(fromAsset), helpers.NormalizeTicker(toAsset)

	networkFrom, err := g.networkFor(ctx, from)
	if err != nil {
		return nil, err
	}
	networkTo, err := g.networkFor(ctx, to)
	if err != nil {
		return nil, err
	}

	tx, err := g.provider.CreateTransaction(ctx, swapprovider.CreateTransactionRequest{
		From:        from,
		To:          to,
		NetworkFrom: networkFrom,
		NetworkTo:   networkTo,
		AmountFrom:  amount.String(),
		Address:     destination,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order for %s->%s: %w", from, to, err)
	}

	return &SwapOrder{
		DepositAddress: tx.DepositAddress,
		ExternalTxID:   tx.TransactionID,
	}, nil
}

// Status returns the normalized provider status of an order
func (g *SwapGateway) Status(ctx context.Context, externalTxID string) (string, error) {
	return g.provider.GetStatus(ctx, externalTxID)
}

// Buy acquires amount of toAsset paid with the native gas asset from the user's bot wallet.
// No order is placed unless the bot balance covers both the provider minimum and the
// buffered cost.
func (g *SwapGateway) Buy(ctx context.Context, identity *business.WalletIdentity, toAsset string, amount decimal.Decimal) (*business.ExecutionResult, error) {
	from := constants.NativeGasAsset
	to := helpers.NormalizeTicker(toAsset)
	pair := from + "->" + to
	botAddress := identity.Address.Hex()

	// Reverse quote: how much of the gas asset is amount of the target
	quote, err := g.Quote(ctx, to, from, amount)
	if err != nil {
		return nil, wrapExecutionError(ErrProviderError, "Market Error: "+err.Error(), err)
	}

	balance, err := g.chain.Balance(ctx, identity.Address, from)
	if err != nil {
		return nil, wrapExecutionError(ErrProviderError, fmt.Sprintf("Could not read the bot %s balance.", from), err)
	}

	requiredTotal := quote.EstimatedCost.Mul(liquidityBuffer)
	belowMinimum := balance.LessThan(quote.MinimumAmount)
	belowRequired := balance.LessThan(requiredTotal)
	if belowMinimum || belowRequired {
		g.logger.Info("Bot wallet below liquidity gate",
			zap.Int64("user_id", identity.UserID),
			zap.String("pair", pair),
			zap.String("balance", balance.String()),
			zap.String("minimum", quote.MinimumAmount.String()),
			zap.String("required", requiredTotal.String()),
		)
		var msg string
		if belowRequired {
			msg = fmt.Sprintf("Insufficient Bot Funds.\n\nTo buy %s %s, the bot needs approx %s %s.\nCurrent Balance: %s %s\n\n"+
				"Please scan the QR code to top up the bot wallet for the missing %s.",
				amount, to, requiredTotal.String(), from, balance, from, from)
		} else {
			msg = fmt.Sprintf("Insufficient Bot Funds.\n\nYou need to buy at minimum %s %s, you can't buy just %s %s.\nCurrent Balance: %s %s\n\n"+
				"Please scan the QR code to top up the bot wallet with %s to make the conversion and buy the minimum.",
				quote.MinimumAmount, to, amount, to, balance, from, from)
		}
		return nil, needsFunding(msg, botAddress)
	}

	order, err := g.CreateOrder(ctx, from, to, quote.EstimatedCost, botAddress)
	if err != nil {
		g.logger.Warn("Exchange order failed",
			zap.String("pair", pair),
			zap.Error(err),
		)
		return g.fallback(ctx, identity, from, to, amount, quote.EstimatedCost, err)
	}

	g.recordSettlement(ctx, db.CreateSettlementRecordParams{
		ExternalTxID:   order.ExternalTxID,
		UserID:         identity.UserID,
		Kind:           constants.RecordKindSwap,
		Status:         constants.StatusWait,
		Pair:           pair,
		AmountExpected: amount,
		DepositAddress: pgtype.Text{String: order.DepositAddress, Valid: order.DepositAddress != ""},
	})

	return &business.ExecutionResult{
		Message: fmt.Sprintf("SWAP CREATED!\nTx ID: %s\n\nPlease deposit %s %s to the address below within 15 minutes.",
			order.ExternalTxID, quote.EstimatedCost, from),
		QRAddress:    order.DepositAddress,
		ExternalTxID: order.ExternalTxID,
	}, nil
}

// fallback swaps on-chain after the exchange rejected the order. amountOutMin is zero,
// so the swap accepts any output amount.
func (g *SwapGateway) fallback(ctx context.Context, identity *business.WalletIdentity, from, to string, amount, amountIn decimal.Decimal, cause error) (*business.ExecutionResult, error) {
	if constants.IsFiatCurrency(from) || constants.IsFiatCurrency(to) {
		return nil, wrapExecutionError(ErrUnsupportedFallback,
			"The exchange is unavailable. Direct on-chain swap is available only for Crypto-to-Crypto, not Fiat.", cause)
	}

	txHash, err := g.chain.SwapOnDex(ctx, identity.PrivateKey, from, to, amountIn)
	if err != nil {
		return nil, wrapExecutionError(ErrProviderError,
			fmt.Sprintf("Swap Failed: the exchange rejected the order (%s) and the on-chain fallback failed.", cause.Error()),
			errors.Join(cause, err))
	}

	g.logger.Info("Executed fallback swap on-chain",
		zap.Int64("user_id", identity.UserID),
		zap.String("tx_hash", txHash.Hex()),
	)

	g.recordSettlement(ctx, db.CreateSettlementRecordParams{
		ExternalTxID:   txHash.Hex(),
		UserID:         identity.UserID,
		Kind:           constants.RecordKindDex,
		Status:         constants.StatusWait,
		Pair:           from + "->" + to,
		AmountExpected: amount,
	})

	return &business.ExecutionResult{
		Message:      "Fallback Swap Executed on Arc Chain!\nTx Hash: " + txHash.Hex(),
		ExternalTxID: txHash.Hex(),
	}, nil
}

// recordSettlement persists a pending record. A failed insert is logged and not returned
// because the provider already holds the funds and the caller must still see the id.
func (g *SwapGateway) recordSettlement(ctx context.Context, params db.CreateSettlementRecordParams) {
	if err := createSettlementRecord(ctx, g.store, params); err != nil {
		g.logger.Error("Failed to persist settlement record",
			zap.String("external_tx_id", params.ExternalTxID),
			zap.Int64("user_id", params.UserID),
			zap.Error(err),
		)
	}
}

func (g *SwapGateway) networkFor(ctx context.Context, ticker string) (string, error) {
	if constants.IsFiatCurrency(ticker) {
		return "", nil
	}
	network, err := g.resolver.Resolve(ctx, ticker)
	if err != nil {
		return "", fmt.Errorf("failed to resolve network for %s: %w", ticker, err)
	}
	return network, nil
}

func createSettlementRecord(ctx context.Context, store db.Store, params db.CreateSettlementRecordParams) error {
	_, err := store.CreateSettlementRecord(ctx, params)
	return err
}
