package circle

import (
	"context"

	"github.com/shopspring/decimal"
)

// CircleClientInterface defines the banking partner operations used by fiat settlement
type CircleClientInterface interface {
	CreateWireBeneficiary(ctx context.Context, request CreateWireBeneficiaryRequest) (*WireBeneficiaryResponse, error)
	CreatePayout(ctx context.Context, request CreatePayoutRequest) (*PayoutResponse, error)
	GetPayout(ctx context.Context, payoutID string) (*PayoutResponse, error)
	GetAvailableBalance(ctx context.Context, currency string) (decimal.Decimal, error)
	GetMasterWalletID(ctx context.Context) (string, error)
}

var _ CircleClientInterface = (*CircleClient)(nil)
