package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/payitnow/payitnow-api/internal/constants"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	dexDeadline     = 10 * time.Minute
	receiptInterval = 2 * time.Second
)

// ErrMessageNotFound is returned when a burn receipt carries no MessageSent event
var ErrMessageNotFound = errors.New("MessageSent event not found in receipt")

// Transfer sends amount of asset from the key's address to recipient
func (c *Client) Transfer(ctx context.Context, key *ecdsa.PrivateKey, recipient common.Address, asset string, amount decimal.Decimal) (common.Hash, error) {
	switch asset {
	case constants.AssetETH:
		return c.sendTx(ctx, c.eth, key, recipient, ToBaseUnits(amount, NativeDecimals), NativeTransferGasLimit, nil)
	case constants.AssetUSDC:
		return c.sendTx(ctx, c.arc, key, recipient, ToBaseUnits(amount, NativeDecimals), NativeTransferGasLimit, nil)
	case constants.AssetUSDCETH:
		data, err := erc20ABI.Pack("transfer", recipient, ToBaseUnits(amount, USDCDecimals))
		if err != nil {
			return common.Hash{}, fmt.Errorf("failed to encode transfer: %w", err)
		}
		return c.sendTx(ctx, c.eth, key, c.contracts.EthUSDC, nil, ContractGasLimit, data)
	default:
		return common.Hash{}, fmt.Errorf("%w: %s", ErrUnsupportedAsset, asset)
	}
}

// SwapOnDex swaps amountIn of fromTicker into toTicker through the Arc router.
// The minimum output is zero, so the caller accepts any execution price.
func (c *Client) SwapOnDex(ctx context.Context, key *ecdsa.PrivateKey, fromTicker, toTicker string, amountIn decimal.Decimal) (common.Hash, error) {
	tokenIn, ok := c.contracts.ArcTokens[fromTicker]
	if !ok {
		return common.Hash{}, fmt.Errorf("%w on arc dex: %s", ErrUnsupportedAsset, fromTicker)
	}
	tokenOut, ok := c.contracts.ArcTokens[toTicker]
	if !ok {
		return common.Hash{}, fmt.Errorf("%w on arc dex: %s", ErrUnsupportedAsset, toTicker)
	}

	amount := ToBaseUnits(amountIn, tokenIn.Decimals)
	if _, err := c.approve(ctx, c.arc, key, tokenIn.Address, c.contracts.ArcDexRouter, amount); err != nil {
		return common.Hash{}, err
	}

	deadline := big.NewInt(time.Now().Add(dexDeadline).Unix())
	data, err := dexRouterABI.Pack("swapExactTokensForTokens",
		amount,
		big.NewInt(0),
		[]common.Address{tokenIn.Address, tokenOut.Address},
		publicAddress(key),
		deadline,
	)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to encode swap: %w", err)
	}
	return c.sendTx(ctx, c.arc, key, c.contracts.ArcDexRouter, nil, ContractGasLimit, data)
}

// DepositForBurn burns USDC on Arc for minting to recipient on the destination domain
func (c *Client) DepositForBurn(ctx context.Context, key *ecdsa.PrivateKey, amount decimal.Decimal, recipient common.Address) (common.Hash, error) {
	value := ToBaseUnits(amount, USDCDecimals)
	if _, err := c.approve(ctx, c.arc, key, c.contracts.ArcUSDC, c.contracts.ArcTokenMessenger, value); err != nil {
		return common.Hash{}, err
	}

	data, err := tokenMessengerABI.Pack("depositForBurn",
		value,
		c.contracts.DestinationDomain,
		AddressToBytes32(recipient),
		c.contracts.ArcUSDC,
		[32]byte{},
		big.NewInt(0),
		uint32(0),
	)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to encode depositForBurn: %w", err)
	}
	return c.sendTx(ctx, c.arc, key, c.contracts.ArcTokenMessenger, nil, ContractGasLimit, data)
}

// BurnMessage waits for the burn receipt and returns the emitted message bytes and
// their keccak256 hash, which is the attestation lookup key.
func (c *Client) BurnMessage(ctx context.Context, burnTx common.Hash) ([]byte, common.Hash, error) {
	receipt, err := c.waitReceipt(ctx, c.arc, burnTx)
	if err != nil {
		return nil, common.Hash{}, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, common.Hash{}, fmt.Errorf("burn transaction %s failed", burnTx.Hex())
	}
	message, err := ExtractMessage(receipt.Logs)
	if err != nil {
		return nil, common.Hash{}, err
	}
	return message, gethcrypto.Keccak256Hash(message), nil
}

// ExtractMessage decodes the first MessageSent event found in logs
func ExtractMessage(logs []*types.Log) ([]byte, error) {
	for _, log := range logs {
		if log == nil || len(log.Topics) == 0 {
			continue
		}
		if log.Topics[0] != messageSentEventSignature {
			continue
		}
		values, err := messageTransmitterABI.Unpack("MessageSent", log.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MessageSent: %w", err)
		}
		message, ok := values[0].([]byte)
		if !ok {
			return nil, fmt.Errorf("unexpected MessageSent payload %T", values[0])
		}
		return message, nil
	}
	return nil, ErrMessageNotFound
}

// ReceiveMessage mints on the destination chain using the attested message
func (c *Client) ReceiveMessage(ctx context.Context, key *ecdsa.PrivateKey, message, attestation []byte) (common.Hash, error) {
	data, err := messageTransmitterABI.Pack("receiveMessage", message, attestation)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to encode receiveMessage: %w", err)
	}
	return c.sendTx(ctx, c.eth, key, c.contracts.EthMessageTransmitter, nil, ContractGasLimit, data)
}

func (c *Client) approve(ctx context.Context, rpc RPC, key *ecdsa.PrivateKey, token, spender common.Address, amount *big.Int) (common.Hash, error) {
	data, err := erc20ABI.Pack("approve", spender, amount)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to encode approve: %w", err)
	}
	hash, err := c.sendTx(ctx, rpc, key, token, nil, ContractGasLimit, data)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to approve %s: %w", spender.Hex(), err)
	}
	return hash, nil
}

// waitReceipt polls until the transaction is mined or ctx is done
func (c *Client) waitReceipt(ctx context.Context, rpc RPC, txHash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt
	operation := func() error {
		r, err := rpc.TransactionReceipt(ctx, txHash)
		if err != nil {
			if errors.Is(err, ethereum.NotFound) {
				return err
			}
			return backoff.Permanent(fmt.Errorf("failed to get receipt: %w", err))
		}
		receipt = r
		return nil
	}

	b := backoff.WithContext(backoff.NewConstantBackOff(receiptInterval), ctx)
	if err := backoff.Retry(operation, b); err != nil {
		c.logger.Warn("Receipt not available", zap.String("tx_hash", txHash.Hex()), zap.Error(err))
		return nil, err
	}
	return receipt, nil
}

// Transaction outcomes reported by TransactionStatus
const (
	TxPending = "pending"
	TxSuccess = "success"
	TxFailed  = "failed"
)

// TransactionStatus reports whether an Arc transaction is still pending, succeeded or reverted
func (c *Client) TransactionStatus(ctx context.Context, txHash common.Hash) (string, error) {
	receipt, err := c.arc.TransactionReceipt(ctx, txHash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return TxPending, nil
		}
		return "", fmt.Errorf("failed to get receipt: %w", err)
	}
	if receipt.Status == types.ReceiptStatusSuccessful {
		return TxSuccess, nil
	}
	return TxFailed, nil
}
