package swapprovider

import "context"

// SwapClientInterface defines the exchange operations used by the swap gateway and monitor
type SwapClientInterface interface {
	GetNetworks(ctx context.Context, ticker string) ([]Network, error)
	GetExchangeAmount(ctx context.Context, req QuoteRequest) (*Quote, error)
	CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*Transaction, error)
	GetStatus(ctx context.Context, transactionID string) (string, error)
}

var _ SwapClientInterface = (*SwapClient)(nil)
