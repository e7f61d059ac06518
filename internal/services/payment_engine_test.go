package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/payitnow/payitnow-api/internal/client/chain"
	"github.com/payitnow/payitnow-api/internal/client/circle"
	"github.com/payitnow/payitnow-api/internal/constants"
	"github.com/payitnow/payitnow-api/internal/db"
	"github.com/payitnow/payitnow-api/internal/mocks"
	"github.com/payitnow/payitnow-api/internal/services"
	"github.com/payitnow/payitnow-api/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const recipientHex = "0x000000000000000000000000000000000000dEaD"

type engineFixture struct {
	extractor  *mocks.MockIntentExtractor
	identities *mocks.MockIdentityProvider
	chain      *mocks.MockChainClient
	swaps      *mocks.MockSwapClientInterface
	bank       *mocks.MockCircleClientInterface
	store      *mocks.MockStore
	identity   *business.WalletIdentity
	engine     *services.PaymentEngine
}

func newEngineFixture(t *testing.T) *engineFixture {
	f := &engineFixture{
		extractor:  mocks.NewMockIntentExtractorForTest(t),
		identities: mocks.NewMockIdentityProviderForTest(t),
		chain:      mocks.NewMockChainClientForTest(t),
		swaps:      mocks.NewMockSwapClientForTest(t),
		bank:       mocks.NewMockCircleClientForTest(t),
		store:      mocks.NewMockStoreForTest(t),
		identity:   newTestIdentity(t, 42),
	}
	gateway := services.NewSwapGateway(f.swaps, services.NewNetworkResolver(f.swaps), f.chain, f.store, zap.NewNop())
	fiat := services.NewFiatSettlementService(f.bank, f.store, nil, zap.NewNop())
	f.engine = services.NewPaymentEngine(
		services.NewIntentService(f.extractor, zap.NewNop()),
		f.identities, f.chain, gateway, fiat, zap.NewNop(),
	)
	return f
}

func transferIntent(amount, currency string) business.PaymentIntent {
	return business.PaymentIntent{
		Kind:      business.IntentTransfer,
		Amount:    nullDec(amount),
		Currency:  currency,
		Recipient: recipientHex,
		Complete:  true,
	}
}

func TestPaymentEngine_Transfer_ExecutesWithoutSettlementRecord(t *testing.T) {
	f := newEngineFixture(t)
	txHash := common.HexToHash("0x1234")
	f.chain.EXPECT().Balance(gomock.Any(), f.identity.Address, "USDC").Return(dec("100"), nil)
	f.chain.EXPECT().
		Transfer(gomock.Any(), f.identity.PrivateKey, common.HexToAddress(recipientHex), "USDC", dec("50")).
		Return(txHash, nil)

	result, err := f.engine.Execute(context.Background(), f.identity, transferIntent("50", "USDC"))

	require.NoError(t, err)
	assert.Contains(t, result.Message, "TRANSFER EXECUTED")
	assert.Contains(t, result.Message, "Amount: 50 USDC")
	assert.Contains(t, result.Message, txHash.Hex())
	assert.Equal(t, txHash.Hex(), result.ExternalTxID)
	assert.Empty(t, result.QRAddress)
}

func TestPaymentEngine_Transfer_Errors(t *testing.T) {
	tests := []struct {
		name        string
		intent      business.PaymentIntent
		setup       func(f *engineFixture)
		wantErr     error
		wantMessage string
		wantOwnQR   bool
	}{
		{
			name:   "insufficient balance",
			intent: transferIntent("50", "USDC"),
			setup: func(f *engineFixture) {
				f.chain.EXPECT().Balance(gomock.Any(), gomock.Any(), "USDC").Return(dec("20"), nil)
			},
			wantErr:     services.ErrInsufficientFunds,
			wantMessage: "Required: 50 USDC\nAvailable: 20 USDC",
			wantOwnQR:   true,
		},
		{
			name:    "recipient is not an address",
			intent:  func() business.PaymentIntent { i := transferIntent("5", "ETH"); i.Recipient = "mom"; return i }(),
			setup:   func(*engineFixture) {},
			wantErr: services.ErrValidationIncomplete,
		},
		{
			name:   "unsupported asset",
			intent: transferIntent("5", "DOGE"),
			setup: func(f *engineFixture) {
				f.chain.EXPECT().Balance(gomock.Any(), gomock.Any(), "DOGE").Return(dec("0"), chain.ErrUnsupportedAsset)
			},
			wantErr:     services.ErrValidationIncomplete,
			wantMessage: "I can't send DOGE yet.",
		},
		{
			name:   "rpc failure",
			intent: transferIntent("5", "ETH"),
			setup: func(f *engineFixture) {
				f.chain.EXPECT().Balance(gomock.Any(), gomock.Any(), "ETH").Return(dec("0"), errors.New("dial tcp"))
			},
			wantErr: services.ErrProviderError,
		},
		{
			name:   "send rejected",
			intent: transferIntent("5", "ETH"),
			setup: func(f *engineFixture) {
				f.chain.EXPECT().Balance(gomock.Any(), gomock.Any(), "ETH").Return(dec("10"), nil)
				f.chain.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any(), "ETH", dec("5")).
					Return(common.Hash{}, errors.New("nonce too low"))
			},
			wantErr:     services.ErrProviderError,
			wantMessage: "nonce too low",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEngineFixture(t)
			tt.setup(f)

			result, err := f.engine.Execute(context.Background(), f.identity, tt.intent)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
			userResult, ok := services.ResultFromError(err)
			require.True(t, ok)
			if tt.wantMessage != "" {
				assert.Contains(t, userResult.Message, tt.wantMessage)
			}
			if tt.wantOwnQR {
				assert.Equal(t, f.identity.Address.Hex(), userResult.QRAddress)
			}
		})
	}
}

func TestPaymentEngine_BalanceReport_ToleratesFailingAsset(t *testing.T) {
	f := newEngineFixture(t)
	f.chain.EXPECT().Balance(gomock.Any(), f.identity.Address, constants.AssetETH).Return(dec("0.5"), nil)
	f.chain.EXPECT().Balance(gomock.Any(), f.identity.Address, constants.AssetUSDC).Return(dec("0"), errors.New("rpc timeout"))
	f.chain.EXPECT().Balance(gomock.Any(), f.identity.Address, constants.AssetUSDCETH).Return(dec("0"), nil)

	result, err := f.engine.Execute(context.Background(), f.identity, business.PaymentIntent{
		Kind: business.IntentCheckBalance, Complete: true,
	})

	require.NoError(t, err)
	assert.Contains(t, result.Message, "Wallet Overview")
	assert.Contains(t, result.Message, "• **0.5 ETH**\n  _(Sepolia Testnet)_")
	assert.Contains(t, result.Message, "• USDC: Error")
	assert.Contains(t, result.Message, "• USDC Sepolia (ERC-20): 0")
	assert.Equal(t, f.identity.Address.Hex(), result.QRAddress)
}

func TestPaymentEngine_Execute_RejectsIncompleteIntent(t *testing.T) {
	f := newEngineFixture(t)
	intent := transferIntent("50", "USDC")
	intent.Complete = false

	_, err := f.engine.Execute(context.Background(), f.identity, intent)

	assert.ErrorIs(t, err, services.ErrValidationIncomplete)
}

func TestPaymentEngine_HandleMessage_MissingDetails(t *testing.T) {
	f := newEngineFixture(t)
	f.extractor.EXPECT().Extract(gomock.Any(), "send 50 to 0xdead").Return(&business.ExtractedIntent{
		Intent: "TRANSFER", Amount: nullDec("50"), Recipient: strPtr(recipientHex),
	}, nil)

	_, err := f.engine.HandleMessage(context.Background(), 42, "send 50 to 0xdead")

	require.ErrorIs(t, err, services.ErrValidationIncomplete)
	result, ok := services.ResultFromError(err)
	require.True(t, ok)
	assert.Contains(t, result.Message, "Missing: currency.")
}

func TestPaymentEngine_HandleMessage_FiatTransferRoutesToSettlement(t *testing.T) {
	f := newEngineFixture(t)
	f.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(&business.ExtractedIntent{
		Intent: "TRANSFER", Amount: nullDec("500"), Currency: strPtr("MXN"), Beneficiary: strPtr("Abuela"),
	}, nil)
	f.identities.EXPECT().GetOrCreateIdentity(gomock.Any(), int64(42)).Return(f.identity, nil)
	f.store.EXPECT().
		GetContact(gomock.Any(), db.GetContactParams{UserID: 42, Nickname: "abuela"}).
		Return(db.Contact{}, pgx.ErrNoRows)

	_, err := f.engine.HandleMessage(context.Background(), 42, "send 500 pesos to abuela")

	require.ErrorIs(t, err, services.ErrValidationIncomplete)
	result, ok := services.ResultFromError(err)
	require.True(t, ok)
	assert.Contains(t, result.Message, "I don't have a bank account saved for 'abuela'")
}

func TestPaymentEngine_HandleMessage_SaveContactSkipsWallet(t *testing.T) {
	f := newEngineFixture(t)
	f.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(&business.ExtractedIntent{
		Intent:        "SAVE_CONTACT",
		Beneficiary:   strPtr("Mom"),
		AccountNumber: strPtr("123456789012345678"),
		RoutingNumber: strPtr("BBVAMXMM"),
		Country:       strPtr("Mexico"),
	}, nil)
	beneficiary := &circle.WireBeneficiaryResponse{}
	beneficiary.Data.ID = "bene-9"
	f.bank.EXPECT().CreateWireBeneficiary(gomock.Any(), gomock.Any()).Return(beneficiary, nil)
	f.store.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Return(db.Contact{}, nil)

	result, err := f.engine.HandleMessage(context.Background(), 42, "save mom")

	require.NoError(t, err)
	assert.Contains(t, result.Message, "Contact Saved!")
}

func TestPaymentEngine_HandleMessage_ParseFailure(t *testing.T) {
	f := newEngineFixture(t)
	f.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(&business.ExtractedIntent{Intent: "UNKNOWN"}, nil)

	_, err := f.engine.HandleMessage(context.Background(), 42, "hello")

	assert.ErrorIs(t, err, services.ErrParseFailure)
	assert.Equal(t, "parse_failure", services.ErrorKindLabel(err))
}

func TestPaymentEngine_HandleMessage_WalletFailure(t *testing.T) {
	f := newEngineFixture(t)
	f.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(&business.ExtractedIntent{Intent: "CHECK_BALANCE"}, nil)
	f.identities.EXPECT().GetOrCreateIdentity(gomock.Any(), int64(42)).Return(nil, errors.New("keystore unreadable"))

	_, err := f.engine.HandleMessage(context.Background(), 42, "balance")

	assert.ErrorContains(t, err, "keystore unreadable")
	_, ok := services.ResultFromError(err)
	assert.False(t, ok)
}
