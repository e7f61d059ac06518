package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/payitnow/payitnow-api/internal/constants"
	"github.com/shopspring/decimal"
)

// ErrUnsupportedAsset is returned for tickers the client has no chain mapping for
var ErrUnsupportedAsset = errors.New("unsupported asset")

// ToBaseUnits converts a decimal amount to the integer on-chain unit
func ToBaseUnits(amount decimal.Decimal, decimals int32) *big.Int {
	return amount.Shift(decimals).Truncate(0).BigInt()
}

// FromBaseUnits converts an on-chain integer amount to a decimal
func FromBaseUnits(value *big.Int, decimals int32) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(value, -decimals)
}

// Balance returns the holdings of address for one tracked asset:
// ETH is native on the Ethereum testnet, USDC is native gas on Arc and
// USDC_ETH is the ERC-20 on the Ethereum testnet.
func (c *Client) Balance(ctx context.Context, address common.Address, asset string) (decimal.Decimal, error) {
	switch asset {
	case constants.AssetETH:
		return c.nativeBalance(ctx, c.eth, address)
	case constants.AssetUSDC:
		return c.nativeBalance(ctx, c.arc, address)
	case constants.AssetUSDCETH:
		return c.tokenBalance(ctx, c.eth, Token{Address: c.contracts.EthUSDC, Decimals: USDCDecimals}, address)
	default:
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnsupportedAsset, asset)
	}
}

func (c *Client) nativeBalance(ctx context.Context, rpc RPC, address common.Address) (decimal.Decimal, error) {
	wei, err := rpc.BalanceAt(ctx, address, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get native balance: %w", err)
	}
	return FromBaseUnits(wei, NativeDecimals), nil
}

func (c *Client) tokenBalance(ctx context.Context, rpc RPC, token Token, address common.Address) (decimal.Decimal, error) {
	data, err := erc20ABI.Pack("balanceOf", address)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to encode balanceOf: %w", err)
	}
	out, err := rpc.CallContract(ctx, ethereum.CallMsg{From: address, To: &token.Address, Data: data}, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to call balanceOf: %w", err)
	}
	if len(out) == 0 {
		return decimal.Zero, nil
	}
	values, err := erc20ABI.Unpack("balanceOf", out)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode balanceOf: %w", err)
	}
	raw, ok := values[0].(*big.Int)
	if !ok {
		return decimal.Zero, fmt.Errorf("unexpected balanceOf result %T", values[0])
	}
	return FromBaseUnits(raw, token.Decimals), nil
}
