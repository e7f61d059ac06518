package chain

import (
	"context"
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// ClientInterface is the chain surface used by the execution services
type ClientInterface interface {
	Balance(ctx context.Context, address common.Address, asset string) (decimal.Decimal, error)
	Transfer(ctx context.Context, key *ecdsa.PrivateKey, recipient common.Address, asset string, amount decimal.Decimal) (common.Hash, error)
	SwapOnDex(ctx context.Context, key *ecdsa.PrivateKey, fromTicker, toTicker string, amountIn decimal.Decimal) (common.Hash, error)
	DepositForBurn(ctx context.Context, key *ecdsa.PrivateKey, amount decimal.Decimal, recipient common.Address) (common.Hash, error)
	BurnMessage(ctx context.Context, burnTx common.Hash) ([]byte, common.Hash, error)
	ReceiveMessage(ctx context.Context, key *ecdsa.PrivateKey, message, attestation []byte) (common.Hash, error)
	TransactionStatus(ctx context.Context, txHash common.Hash) (string, error)
}

var _ ClientInterface = (*Client)(nil)
