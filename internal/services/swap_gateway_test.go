package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/payitnow/payitnow-api/internal/client/swapprovider"
	"github.com/payitnow/payitnow-api/internal/constants"
	"github.com/payitnow/payitnow-api/internal/db"
	"github.com/payitnow/payitnow-api/internal/mocks"
	"github.com/payitnow/payitnow-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type swapFixture struct {
	provider *mocks.MockSwapClientInterface
	chain    *mocks.MockChainClient
	store    *mocks.MockStore
	gateway  *services.SwapGateway
}

func newSwapFixture(t *testing.T) *swapFixture {
	f := &swapFixture{
		provider: mocks.NewMockSwapClientForTest(t),
		chain:    mocks.NewMockChainClientForTest(t),
		store:    mocks.NewMockStoreForTest(t),
	}
	f.provider.EXPECT().GetNetworks(gomock.Any(), "ETH").
		Return([]swapprovider.Network{{Code: "ETH", IsActive: true}}, nil).AnyTimes()
	f.provider.EXPECT().GetNetworks(gomock.Any(), "USDC").
		Return([]swapprovider.Network{{Code: "TRC20", IsActive: true}, {Code: "ERC20", IsActive: true}}, nil).AnyTimes()

	resolver := services.NewNetworkResolver(f.provider)
	f.gateway = services.NewSwapGateway(f.provider, resolver, f.chain, f.store, zap.NewNop())
	return f
}

func (f *swapFixture) expectReverseQuote(to, amount, cost, minimum string) {
	f.provider.EXPECT().
		GetExchangeAmount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req swapprovider.QuoteRequest) (*swapprovider.Quote, error) {
			if req.From != to || req.To != "ETH" || req.AmountFrom != amount {
				return nil, errors.New("unexpected quote request")
			}
			return &swapprovider.Quote{AmountTo: dec(cost), MinAmount: dec(minimum)}, nil
		})
}

func TestSwapGateway_Quote_ResolvesNetworks(t *testing.T) {
	f := newSwapFixture(t)
	f.provider.EXPECT().
		GetExchangeAmount(gomock.Any(), swapprovider.QuoteRequest{
			From: "USDC", To: "ETH", NetworkFrom: "ERC20", NetworkTo: "ETH", AmountFrom: "20",
		}).
		Return(&swapprovider.Quote{AmountTo: dec("0.0061"), MinAmount: dec("0.005")}, nil)

	quote, err := f.gateway.Quote(context.Background(), "usdc", "eth", dec("20"))

	require.NoError(t, err)
	assert.True(t, dec("0.0061").Equal(quote.EstimatedCost))
	assert.True(t, dec("0.005").Equal(quote.MinimumAmount))
}

func TestSwapGateway_Buy_LiquidityGate(t *testing.T) {
	tests := []struct {
		name        string
		balance     string
		cost        string
		minimum     string
		wantOrder   bool
		wantMessage string
	}{
		{name: "covers minimum and buffered cost", balance: "0.02", cost: "0.01", minimum: "0.005", wantOrder: true},
		{name: "exactly the buffered cost", balance: "0.0105", cost: "0.01", minimum: "0.005", wantOrder: true},
		{name: "just below the buffered cost", balance: "0.0104", cost: "0.01", minimum: "0.005", wantMessage: "the bot needs approx 0.0105 ETH"},
		{name: "below minimum only", balance: "0.004", cost: "0.001", minimum: "0.005", wantMessage: "You need to buy at minimum 0.005 USDC"},
		{name: "below both prefers required", balance: "0.001", cost: "0.01", minimum: "0.005", wantMessage: "the bot needs approx 0.0105 ETH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSwapFixture(t)
			identity := newTestIdentity(t, 7)
			f.expectReverseQuote("USDC", "20", tt.cost, tt.minimum)
			f.chain.EXPECT().Balance(gomock.Any(), identity.Address, "ETH").Return(dec(tt.balance), nil)

			if tt.wantOrder {
				f.provider.EXPECT().
					CreateTransaction(gomock.Any(), swapprovider.CreateTransactionRequest{
						From: "ETH", To: "USDC", NetworkFrom: "ETH", NetworkTo: "ERC20",
						AmountFrom: dec(tt.cost).String(), Address: identity.Address.Hex(),
					}).
					Return(&swapprovider.Transaction{TransactionID: "tx-1", DepositAddress: "0xdeposit"}, nil)
				f.store.EXPECT().CreateSettlementRecord(gomock.Any(), gomock.Any()).Return(db.SettlementRecord{}, nil)
			}

			result, err := f.gateway.Buy(context.Background(), identity, "USDC", dec("20"))

			if tt.wantOrder {
				require.NoError(t, err)
				assert.Equal(t, "tx-1", result.ExternalTxID)
				assert.Equal(t, "0xdeposit", result.QRAddress)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, services.ErrInsufficientFunds))
			var execErr *services.ExecutionError
			require.True(t, errors.As(err, &execErr))
			assert.Equal(t, identity.Address.Hex(), execErr.QRAddress)
			assert.Contains(t, execErr.Message, tt.wantMessage)
		})
	}
}

func TestSwapGateway_Buy_NeedsFundingNamesShortfallAndBalance(t *testing.T) {
	f := newSwapFixture(t)
	identity := newTestIdentity(t, 7)
	f.expectReverseQuote("USDC", "20", "0.01", "0.005")
	f.chain.EXPECT().Balance(gomock.Any(), identity.Address, "ETH").Return(dec("0.008"), nil)

	_, err := f.gateway.Buy(context.Background(), identity, "USDC", dec("20"))

	result, ok := services.ResultFromError(err)
	require.True(t, ok)
	assert.Equal(t, identity.Address.Hex(), result.QRAddress)
	assert.Contains(t, result.Message, "0.0105 ETH")
	assert.Contains(t, result.Message, "Current Balance: 0.008 ETH")
}

func TestSwapGateway_Buy_PersistsPendingRecord(t *testing.T) {
	f := newSwapFixture(t)
	identity := newTestIdentity(t, 7)
	f.expectReverseQuote("USDC", "20", "0.01", "0.005")
	f.chain.EXPECT().Balance(gomock.Any(), identity.Address, "ETH").Return(dec("1"), nil)
	f.provider.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		Return(&swapprovider.Transaction{TransactionID: "tx-9", DepositAddress: "0xdeposit"}, nil)
	f.store.EXPECT().
		CreateSettlementRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params db.CreateSettlementRecordParams) (db.SettlementRecord, error) {
			assert.Equal(t, "tx-9", params.ExternalTxID)
			assert.Equal(t, int64(7), params.UserID)
			assert.Equal(t, constants.RecordKindSwap, params.Kind)
			assert.Equal(t, constants.StatusWait, params.Status)
			assert.Equal(t, "ETH->USDC", params.Pair)
			assert.True(t, dec("20").Equal(params.AmountExpected))
			assert.Equal(t, "0xdeposit", params.DepositAddress.String)
			return db.SettlementRecord{}, nil
		})

	result, err := f.gateway.Buy(context.Background(), identity, "usdc", dec("20"))

	require.NoError(t, err)
	assert.Contains(t, result.Message, "tx-9")
	assert.Contains(t, result.Message, "0.01 ETH")
}

func TestSwapGateway_Buy_RecordFailureStillSurfacesTxID(t *testing.T) {
	f := newSwapFixture(t)
	identity := newTestIdentity(t, 7)
	f.expectReverseQuote("USDC", "20", "0.01", "0.005")
	f.chain.EXPECT().Balance(gomock.Any(), identity.Address, "ETH").Return(dec("1"), nil)
	f.provider.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		Return(&swapprovider.Transaction{TransactionID: "tx-lost", DepositAddress: "0xdeposit"}, nil)
	f.store.EXPECT().CreateSettlementRecord(gomock.Any(), gomock.Any()).
		Return(db.SettlementRecord{}, errors.New("connection reset"))

	result, err := f.gateway.Buy(context.Background(), identity, "USDC", dec("20"))

	require.NoError(t, err)
	assert.Equal(t, "tx-lost", result.ExternalTxID)
	assert.Contains(t, result.Message, "tx-lost")
}

func TestSwapGateway_Buy_FiatLegHasNoFallback(t *testing.T) {
	f := newSwapFixture(t)
	identity := newTestIdentity(t, 7)
	f.expectReverseQuote("MXN", "500", "0.01", "0.005")
	f.chain.EXPECT().Balance(gomock.Any(), identity.Address, "ETH").Return(dec("1"), nil)
	f.provider.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		Return(nil, swapprovider.ErrProvider)

	result, err := f.gateway.Buy(context.Background(), identity, "MXN", dec("500"))

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrUnsupportedFallback))
	assert.True(t, errors.Is(err, swapprovider.ErrProvider))
	rendered, ok := services.ResultFromError(err)
	require.True(t, ok)
	assert.Contains(t, rendered.Message, "Crypto-to-Crypto")
}

func TestSwapGateway_Buy_CryptoFallbackSwapsOnChain(t *testing.T) {
	f := newSwapFixture(t)
	identity := newTestIdentity(t, 7)
	txHash := common.HexToHash("0xabc")
	f.expectReverseQuote("USDC", "20", "0.01", "0.005")
	f.chain.EXPECT().Balance(gomock.Any(), identity.Address, "ETH").Return(dec("1"), nil)
	f.provider.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil, swapprovider.ErrProvider)
	f.chain.EXPECT().
		SwapOnDex(gomock.Any(), identity.PrivateKey, "ETH", "USDC", dec("0.01")).
		Return(txHash, nil)
	f.store.EXPECT().
		CreateSettlementRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params db.CreateSettlementRecordParams) (db.SettlementRecord, error) {
			assert.Equal(t, txHash.Hex(), params.ExternalTxID)
			assert.Equal(t, constants.RecordKindDex, params.Kind)
			assert.False(t, params.DepositAddress.Valid)
			return db.SettlementRecord{}, nil
		})

	result, err := f.gateway.Buy(context.Background(), identity, "USDC", dec("20"))

	require.NoError(t, err)
	assert.Equal(t, txHash.Hex(), result.ExternalTxID)
	assert.Contains(t, result.Message, "Fallback Swap Executed")
}

func TestSwapGateway_Buy_FallbackFailureIsProviderError(t *testing.T) {
	f := newSwapFixture(t)
	identity := newTestIdentity(t, 7)
	f.expectReverseQuote("USDC", "20", "0.01", "0.005")
	f.chain.EXPECT().Balance(gomock.Any(), identity.Address, "ETH").Return(dec("1"), nil)
	f.provider.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil, swapprovider.ErrProvider)
	f.chain.EXPECT().SwapOnDex(gomock.Any(), gomock.Any(), "ETH", "USDC", gomock.Any()).
		Return(common.Hash{}, errors.New("execution reverted"))

	_, err := f.gateway.Buy(context.Background(), identity, "USDC", dec("20"))

	assert.True(t, errors.Is(err, services.ErrProviderError))
	assert.True(t, errors.Is(err, swapprovider.ErrProvider))
}

func TestSwapGateway_Buy_QuoteFailure(t *testing.T) {
	f := newSwapFixture(t)
	identity := newTestIdentity(t, 7)
	f.provider.EXPECT().GetExchangeAmount(gomock.Any(), gomock.Any()).Return(nil, swapprovider.ErrProvider)

	_, err := f.gateway.Buy(context.Background(), identity, "USDC", dec("20"))

	assert.True(t, errors.Is(err, services.ErrProviderError))
	rendered, ok := services.ResultFromError(err)
	require.True(t, ok)
	assert.Contains(t, rendered.Message, "Market Error")
}
