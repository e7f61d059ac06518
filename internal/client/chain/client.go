package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/payitnow/payitnow-api/internal/logger"
	"go.uber.org/zap"
)

const (
	// NativeTransferGasLimit is the fixed cost of a plain value transfer
	NativeTransferGasLimit uint64 = 21000
	// ContractGasLimit is used for every contract call the service submits
	ContractGasLimit uint64 = 200000

	NativeDecimals int32 = 18
	USDCDecimals   int32 = 6
)

// RPC is the subset of the Ethereum JSON-RPC surface the client uses.
// *ethclient.Client satisfies it.
type RPC interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Dial opens an RPC connection to endpoint
func Dial(endpoint string) (*ethclient.Client, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return nil, fmt.Errorf("rpc endpoint required")
	}
	return ethclient.Dial(trimmed)
}

// Token is an ERC-20 contract and its decimals
type Token struct {
	Address  common.Address
	Decimals int32
}

// Contracts holds the on-chain addresses the client talks to
type Contracts struct {
	EthUSDC               common.Address
	ArcUSDC               common.Address
	ArcTokenMessenger     common.Address
	EthMessageTransmitter common.Address
	ArcDexRouter          common.Address
	DestinationDomain     uint32
	// ArcTokens maps tickers to the tokens routable through the Arc DEX
	ArcTokens map[string]Token
}

// Client executes balance reads and signed transactions on the two supported chains:
// the Ethereum testnet (ETH, ERC-20 USDC) and Arc (native USDC, CCTP source, DEX).
type Client struct {
	eth       RPC
	arc       RPC
	contracts Contracts
	logger    *zap.Logger
}

// NewClient creates a chain client over already dialled RPC connections
func NewClient(eth, arc RPC, contracts Contracts) *Client {
	return &Client{
		eth:       eth,
		arc:       arc,
		contracts: contracts,
		logger:    logger.Log,
	}
}

// sendTx signs a legacy transaction with key and submits it to rpc
func (c *Client) sendTx(ctx context.Context, rpc RPC, key *ecdsa.PrivateKey, to common.Address, value *big.Int, gasLimit uint64, data []byte) (common.Hash, error) {
	if key == nil {
		return common.Hash{}, fmt.Errorf("signing key required")
	}
	from := publicAddress(key)

	nonce, err := rpc.PendingNonceAt(ctx, from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get nonce: %w", err)
	}
	gasPrice, err := rpc.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get gas price: %w", err)
	}
	chainID, err := rpc.ChainID(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if value == nil {
		value = big.NewInt(0)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gasLimit,
		To:       &to,
		Value:    value,
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign transaction: %w", err)
	}
	if err := rpc.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	c.logger.Info("Transaction submitted",
		zap.String("tx_hash", signed.Hash().Hex()),
		zap.String("from", from.Hex()),
		zap.String("to", to.Hex()),
		zap.Uint64("nonce", nonce),
	)
	return signed.Hash(), nil
}

func publicAddress(key *ecdsa.PrivateKey) common.Address {
	return gethcrypto.PubkeyToAddress(key.PublicKey)
}
