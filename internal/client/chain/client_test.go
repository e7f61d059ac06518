package chain

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/payitnow/payitnow-api/internal/constants"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRPC struct {
	chainID  *big.Int
	balance  *big.Int
	callOut  []byte
	calls    []ethereum.CallMsg
	sent     []*types.Transaction
	receipts map[common.Hash]*types.Receipt
	nonce    uint64
}

func newFakeRPC(chainID int64) *fakeRPC {
	return &fakeRPC{chainID: big.NewInt(chainID), receipts: map[common.Hash]*types.Receipt{}}
}

func (f *fakeRPC) BalanceAt(context.Context, common.Address, *big.Int) (*big.Int, error) {
	return f.balance, nil
}

func (f *fakeRPC) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.calls = append(f.calls, msg)
	return f.callOut, nil
}

func (f *fakeRPC) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return f.nonce + uint64(len(f.sent)), nil
}

func (f *fakeRPC) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *fakeRPC) ChainID(context.Context) (*big.Int, error) { return f.chainID, nil }

func (f *fakeRPC) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.sent = append(f.sent, tx)
	return nil
}

func (f *fakeRPC) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	r, ok := f.receipts[hash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return r, nil
}

var testContracts = Contracts{
	EthUSDC:               common.HexToAddress("0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238"),
	ArcUSDC:               common.HexToAddress("0x3600000000000000000000000000000000000000"),
	ArcTokenMessenger:     common.HexToAddress("0x8FE6B999Dc680CcFDD5Bf7EB0974218be2542DAA"),
	EthMessageTransmitter: common.HexToAddress("0x7865fAfC2db2093669d92c0F33AeEF291086BEFD"),
	ArcDexRouter:          common.HexToAddress("0xC532a74256D3Db42D0Bf7a0400fEFDbad7694008"),
	ArcTokens: map[string]Token{
		"USDC": {Address: common.HexToAddress("0x3600000000000000000000000000000000000000"), Decimals: 6},
		"ETH":  {Address: common.HexToAddress("0x00000000000000000000000000000000000000e7"), Decimals: 18},
	},
}

func TestBaseUnits(t *testing.T) {
	assert.Equal(t, "25500000", ToBaseUnits(decimal.RequireFromString("25.5"), USDCDecimals).String())
	assert.Equal(t, "1", ToBaseUnits(decimal.RequireFromString("0.0000019"), USDCDecimals).String())
	assert.True(t, decimal.RequireFromString("1.5").Equal(FromBaseUnits(big.NewInt(1_500_000), USDCDecimals)))
	assert.True(t, FromBaseUnits(nil, NativeDecimals).IsZero())
}

func TestAddressToBytes32(t *testing.T) {
	addr := common.HexToAddress("0x00000000000000000000000000000000000000ff")
	padded := AddressToBytes32(addr)
	assert.Equal(t, byte(0xff), padded[31])
	assert.Equal(t, make([]byte, 12), padded[:12])
}

func TestBalance(t *testing.T) {
	eth, arc := newFakeRPC(11155111), newFakeRPC(5042002)
	eth.balance = new(big.Int).Mul(big.NewInt(2), big.NewInt(1e18))
	arc.balance = big.NewInt(5e17)
	out, err := erc20ABI.Methods["balanceOf"].Outputs.Pack(big.NewInt(12_340_000))
	require.NoError(t, err)
	eth.callOut = out

	c := NewClient(eth, arc, testContracts)
	holder := common.HexToAddress("0x1234")

	got, err := c.Balance(context.Background(), holder, constants.AssetETH)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(2).Equal(got))

	got, err = c.Balance(context.Background(), holder, constants.AssetUSDC)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.5").Equal(got))

	got, err = c.Balance(context.Background(), holder, constants.AssetUSDCETH)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.34").Equal(got))
	require.Len(t, eth.calls, 1)
	assert.Equal(t, testContracts.EthUSDC, *eth.calls[0].To)

	_, err = c.Balance(context.Background(), holder, "DOGE")
	assert.ErrorIs(t, err, ErrUnsupportedAsset)
}

func TestTransfer_ERC20(t *testing.T) {
	eth := newFakeRPC(11155111)
	c := NewClient(eth, newFakeRPC(5042002), testContracts)
	key, err := gethcrypto.GenerateKey()
	require.NoError(t, err)
	recipient := common.HexToAddress("0xbeef")

	hash, err := c.Transfer(context.Background(), key, recipient, constants.AssetUSDCETH, decimal.NewFromInt(10))

	require.NoError(t, err)
	require.Len(t, eth.sent, 1)
	tx := eth.sent[0]
	assert.Equal(t, hash, tx.Hash())
	assert.Equal(t, testContracts.EthUSDC, *tx.To())
	assert.Equal(t, ContractGasLimit, tx.Gas())

	args, err := erc20ABI.Methods["transfer"].Inputs.Unpack(tx.Data()[4:])
	require.NoError(t, err)
	assert.Equal(t, recipient, args[0])
	assert.Equal(t, "10000000", args[1].(*big.Int).String())

	from, err := types.Sender(types.LatestSignerForChainID(big.NewInt(11155111)), tx)
	require.NoError(t, err)
	assert.Equal(t, gethcrypto.PubkeyToAddress(key.PublicKey), from)
}

func TestTransfer_Native(t *testing.T) {
	arc := newFakeRPC(5042002)
	c := NewClient(newFakeRPC(11155111), arc, testContracts)
	key, err := gethcrypto.GenerateKey()
	require.NoError(t, err)

	_, err = c.Transfer(context.Background(), key, common.HexToAddress("0xbeef"), constants.AssetUSDC, decimal.NewFromInt(3))

	require.NoError(t, err)
	require.Len(t, arc.sent, 1)
	assert.Equal(t, NativeTransferGasLimit, arc.sent[0].Gas())
	assert.Equal(t, "3000000000000000000", arc.sent[0].Value().String())
}

func TestDepositForBurn(t *testing.T) {
	arc := newFakeRPC(5042002)
	c := NewClient(newFakeRPC(11155111), arc, testContracts)
	key, err := gethcrypto.GenerateKey()
	require.NoError(t, err)
	recipient := common.HexToAddress("0xcafe")

	_, err = c.DepositForBurn(context.Background(), key, decimal.NewFromInt(7), recipient)

	require.NoError(t, err)
	require.Len(t, arc.sent, 2)
	assert.Equal(t, testContracts.ArcUSDC, *arc.sent[0].To())
	assert.Equal(t, uint64(1), arc.sent[1].Nonce())

	burn := arc.sent[1]
	assert.Equal(t, testContracts.ArcTokenMessenger, *burn.To())
	method := tokenMessengerABI.Methods["depositForBurn"]
	assert.Equal(t, method.ID, burn.Data()[:4])
	args, err := method.Inputs.Unpack(burn.Data()[4:])
	require.NoError(t, err)
	require.Len(t, args, 7)
	assert.Equal(t, "7000000", args[0].(*big.Int).String())
	assert.Equal(t, uint32(0), args[1])
	assert.Equal(t, AddressToBytes32(recipient), args[2])
	assert.Equal(t, testContracts.ArcUSDC, args[3])
}

func TestSwapOnDex(t *testing.T) {
	arc := newFakeRPC(5042002)
	c := NewClient(newFakeRPC(11155111), arc, testContracts)
	key, err := gethcrypto.GenerateKey()
	require.NoError(t, err)

	_, err = c.SwapOnDex(context.Background(), key, "USDC", "ETH", decimal.NewFromInt(20))
	require.NoError(t, err)
	require.Len(t, arc.sent, 2)

	swap := arc.sent[1]
	args, err := dexRouterABI.Methods["swapExactTokensForTokens"].Inputs.Unpack(swap.Data()[4:])
	require.NoError(t, err)
	assert.Equal(t, "20000000", args[0].(*big.Int).String())
	assert.Equal(t, int64(0), args[1].(*big.Int).Int64())
	assert.Equal(t, []common.Address{testContracts.ArcTokens["USDC"].Address, testContracts.ArcTokens["ETH"].Address}, args[2])

	_, err = c.SwapOnDex(context.Background(), key, "USDC", "BTC", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrUnsupportedAsset)
}

func TestBurnMessage(t *testing.T) {
	arc := newFakeRPC(5042002)
	c := NewClient(newFakeRPC(11155111), arc, testContracts)
	message := []byte("cctp-message-body")
	data, err := messageTransmitterABI.Events["MessageSent"].Inputs.Pack(message)
	require.NoError(t, err)

	burnTx := common.HexToHash("0x01")
	arc.receipts[burnTx] = &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{
			{Topics: []common.Hash{gethcrypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))}},
			{Topics: []common.Hash{messageSentEventSignature}, Data: data},
		},
	}

	got, hash, err := c.BurnMessage(context.Background(), burnTx)

	require.NoError(t, err)
	assert.Equal(t, message, got)
	assert.Equal(t, gethcrypto.Keccak256Hash(message), hash)
}

func TestExtractMessage_NotFound(t *testing.T) {
	_, err := ExtractMessage([]*types.Log{nil, {}})
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestTransactionStatus(t *testing.T) {
	arc := newFakeRPC(5042002)
	c := NewClient(newFakeRPC(11155111), arc, testContracts)
	ok, reverted := common.HexToHash("0x0a"), common.HexToHash("0x0b")
	arc.receipts[ok] = &types.Receipt{Status: types.ReceiptStatusSuccessful}
	arc.receipts[reverted] = &types.Receipt{Status: types.ReceiptStatusFailed}

	status, err := c.TransactionStatus(context.Background(), ok)
	require.NoError(t, err)
	assert.Equal(t, TxSuccess, status)

	status, err = c.TransactionStatus(context.Background(), reverted)
	require.NoError(t, err)
	assert.Equal(t, TxFailed, status)

	status, err = c.TransactionStatus(context.Background(), common.HexToHash("0x0c"))
	require.NoError(t, err)
	assert.Equal(t, TxPending, status)
}
