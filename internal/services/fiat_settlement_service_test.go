package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
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

func TestNormalizeCountry(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Mexico", "MX"},
		{"MX", "MX"},
		{"mexico", "MX"},
		{" united states ", "US"},
		{"USA", "US"},
		{"us", "US"},
		{"Colombia", "CO"},
		{"Brazil", "BR"},
		{"argentina", "AR"},
		{"CO", "CO"},
		{"de", "DE"},
		{"Germany", "US"},
		{"", "US"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, services.NormalizeCountry(tt.input))
		})
	}
}

func payoutResponse(id, status string) *circle.PayoutResponse {
	resp := &circle.PayoutResponse{}
	resp.Data.ID = id
	resp.Data.Status = status
	return resp
}

func settleIntent(nickname, amount, currency, country string) business.PaymentIntent {
	return business.PaymentIntent{
		Kind:            business.IntentSettleFiat,
		Amount:          nullDec(amount),
		Currency:        currency,
		BeneficiaryName: nickname,
		Country:         country,
		Complete:        true,
	}
}

func TestFiatSettlementService_Settle(t *testing.T) {
	contact := db.Contact{
		UserID:                42,
		Nickname:              "juan",
		Name:                  "Juan",
		Country:               "MX",
		Currency:              "MXN",
		BankName:              pgtype.Text{String: "BBVA MEXICO", Valid: true},
		ProviderBeneficiaryID: "bene-1",
	}

	tests := []struct {
		name        string
		intent      business.PaymentIntent
		setupMocks  func(bank *mocks.MockCircleClientInterface, store *mocks.MockStore, alerter *mocks.MockOperatorAlerter)
		wantKind    error
		wantQR      string
		wantMessage string
	}{
		{
			name:   "unknown beneficiary asks for banking details without provider calls",
			intent: settleIntent("Abuela", "100", "MXN", ""),
			setupMocks: func(bank *mocks.MockCircleClientInterface, store *mocks.MockStore, alerter *mocks.MockOperatorAlerter) {
				store.EXPECT().
					GetContact(gomock.Any(), db.GetContactParams{UserID: 42, Nickname: "abuela"}).
					Return(db.Contact{}, pgx.ErrNoRows)
			},
			wantKind:    services.ErrValidationIncomplete,
			wantMessage: "Name, Routing/SWIFT, Account Number, Country",
		},
		{
			name:   "treasury shortfall returns master wallet and alerts",
			intent: settleIntent("Juan", "500", "MXN", "Mexico"),
			setupMocks: func(bank *mocks.MockCircleClientInterface, store *mocks.MockStore, alerter *mocks.MockOperatorAlerter) {
				store.EXPECT().GetContact(gomock.Any(), gomock.Any()).Return(contact, nil)
				bank.EXPECT().GetAvailableBalance(gomock.Any(), "MXN").Return(dec("120.50"), nil)
				bank.EXPECT().GetMasterWalletID(gomock.Any()).Return("1017370587", nil)
				alerter.EXPECT().Alert(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
			},
			wantKind:    services.ErrInsufficientFunds,
			wantQR:      "1017370587",
			wantMessage: "Balance: 120.5 MXN\nRequired: 500 MXN",
		},
		{
			name:   "payout rejected by provider",
			intent: settleIntent("Juan", "500", "MXN", "Mexico"),
			setupMocks: func(bank *mocks.MockCircleClientInterface, store *mocks.MockStore, alerter *mocks.MockOperatorAlerter) {
				store.EXPECT().GetContact(gomock.Any(), gomock.Any()).Return(contact, nil)
				bank.EXPECT().GetAvailableBalance(gomock.Any(), "MXN").Return(dec("1000"), nil)
				bank.EXPECT().GetMasterWalletID(gomock.Any()).Return("1017370587", nil)
				bank.EXPECT().CreatePayout(gomock.Any(), gomock.Any()).Return(nil, errors.New("Invalid entity."))
			},
			wantKind:    services.ErrProviderError,
			wantMessage: "Payout Failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bank := mocks.NewMockCircleClientForTest(t)
			store := mocks.NewMockStoreForTest(t)
			alerter := mocks.NewMockOperatorAlerterForTest(t)
			tt.setupMocks(bank, store, alerter)

			svc := services.NewFiatSettlementService(bank, store, alerter, zap.NewNop())
			result, err := svc.Settle(context.Background(), 42, tt.intent)

			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantKind))
			rendered, ok := services.ResultFromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantQR, rendered.QRAddress)
			assert.Contains(t, rendered.Message, tt.wantMessage)
		})
	}
}

func TestFiatSettlementService_Settle_IssuesPayoutAndRecord(t *testing.T) {
	bank := mocks.NewMockCircleClientForTest(t)
	store := mocks.NewMockStoreForTest(t)

	store.EXPECT().GetContact(gomock.Any(), db.GetContactParams{UserID: 42, Nickname: "juan"}).
		Return(db.Contact{Nickname: "juan", Country: "MX", Currency: "MXN", ProviderBeneficiaryID: "bene-1"}, nil)
	bank.EXPECT().GetAvailableBalance(gomock.Any(), "MXN").Return(dec("1000"), nil)
	bank.EXPECT().GetMasterWalletID(gomock.Any()).Return("1017370587", nil)
	bank.EXPECT().
		CreatePayout(gomock.Any(), circle.CreatePayoutRequest{
			Source:      circle.Endpoint{Type: "wallet", ID: "1017370587"},
			Destination: circle.Endpoint{Type: "wire", ID: "bene-1"},
			Amount:      circle.Money{Amount: "500.00", Currency: "MXN"},
		}).
		Return(payoutResponse("payout-123", constants.PayoutStatusPending), nil)
	store.EXPECT().
		CreateSettlementRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params db.CreateSettlementRecordParams) (db.SettlementRecord, error) {
			assert.Equal(t, "payout-123", params.ExternalTxID)
			assert.Equal(t, constants.RecordKindFiat, params.Kind)
			assert.Equal(t, constants.StatusPayoutProcessing, params.Status)
			assert.Equal(t, "USDC->MXN", params.Pair)
			assert.Equal(t, "juan", params.BeneficiaryRef.String)
			assert.True(t, dec("500").Equal(params.AmountExpected))
			return db.SettlementRecord{}, nil
		})

	svc := services.NewFiatSettlementService(bank, store, nil, zap.NewNop())
	result, err := svc.Settle(context.Background(), 42, settleIntent("Juan", "500", "mxn", ""))

	require.NoError(t, err)
	assert.Equal(t, "payout-123", result.ExternalTxID)
	assert.Contains(t, result.Message, "INTERNATIONAL TRANSFER SENT")
	assert.Contains(t, result.Message, "Juan (MX)")
	assert.Contains(t, result.Message, "Amount: 500 MXN")
}

func TestFiatSettlementService_Settle_PayoutCurrency(t *testing.T) {
	tests := []struct {
		name            string
		requested       string
		contactCurrency string
		want            string
	}{
		{name: "requested currency wins", requested: "mxn", contactCurrency: "USD", want: "MXN"},
		{name: "falls back to the saved contact currency", requested: "", contactCurrency: "cop", want: "COP"},
		{name: "defaults to USD", requested: " ", contactCurrency: "", want: "USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bank := mocks.NewMockCircleClientForTest(t)
			store := mocks.NewMockStoreForTest(t)

			store.EXPECT().GetContact(gomock.Any(), gomock.Any()).
				Return(db.Contact{Nickname: "ana", Country: "CO", Currency: tt.contactCurrency, ProviderBeneficiaryID: "bene-3"}, nil)
			bank.EXPECT().GetAvailableBalance(gomock.Any(), tt.want).Return(dec("250"), nil)
			bank.EXPECT().GetMasterWalletID(gomock.Any()).Return("1017370587", nil)
			bank.EXPECT().
				CreatePayout(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req circle.CreatePayoutRequest) (*circle.PayoutResponse, error) {
					assert.Equal(t, circle.Money{Amount: "75.00", Currency: tt.want}, req.Amount)
					return payoutResponse("payout-cur", constants.PayoutStatusPending), nil
				})
			store.EXPECT().
				CreateSettlementRecord(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, params db.CreateSettlementRecordParams) (db.SettlementRecord, error) {
					assert.Equal(t, "USDC->"+tt.want, params.Pair)
					return db.SettlementRecord{}, nil
				})

			svc := services.NewFiatSettlementService(bank, store, nil, zap.NewNop())
			result, err := svc.Settle(context.Background(), 42, settleIntent("Ana", "75", tt.requested, ""))

			require.NoError(t, err)
			assert.Contains(t, result.Message, "75 "+tt.want)
		})
	}
}

func TestFiatSettlementService_Settle_USMessage(t *testing.T) {
	bank := mocks.NewMockCircleClientForTest(t)
	store := mocks.NewMockStoreForTest(t)

	store.EXPECT().GetContact(gomock.Any(), gomock.Any()).Return(db.Contact{
		Nickname: "mom", Country: "US", Currency: "USD", ProviderBeneficiaryID: "bene-2",
		BankName: pgtype.Text{String: "Chase Bank", Valid: true},
	}, nil)
	bank.EXPECT().GetAvailableBalance(gomock.Any(), "USD").Return(dec("1000"), nil)
	bank.EXPECT().GetMasterWalletID(gomock.Any()).Return("1017370587", nil)
	bank.EXPECT().CreatePayout(gomock.Any(), gomock.Any()).Return(payoutResponse("payout-us", constants.PayoutStatusPending), nil)
	store.EXPECT().CreateSettlementRecord(gomock.Any(), gomock.Any()).Return(db.SettlementRecord{}, nil)

	svc := services.NewFiatSettlementService(bank, store, nil, zap.NewNop())
	result, err := svc.Settle(context.Background(), 42, settleIntent("Mom", "50", "USD", ""))

	require.NoError(t, err)
	assert.Contains(t, result.Message, "SETTLEMENT SUCCESSFUL")
	assert.Contains(t, result.Message, "Mom's Chase Bank account")
}

func saveIntent(country, currency string) business.PaymentIntent {
	return business.PaymentIntent{
		Kind:            business.IntentSaveContact,
		BeneficiaryName: "Mom",
		Country:         country,
		Currency:        currency,
		AccountNumber:   "123456789012345678",
		RoutingNumber:   "BCMRMXMMXXX",
		Complete:        true,
	}
}

func TestFiatSettlementService_SaveBeneficiary(t *testing.T) {
	bank := mocks.NewMockCircleClientForTest(t)
	store := mocks.NewMockStoreForTest(t)

	beneficiary := &circle.WireBeneficiaryResponse{}
	beneficiary.Data.ID = "bene-9"
	gomock.InOrder(
		bank.EXPECT().
			CreateWireBeneficiary(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req circle.CreateWireBeneficiaryRequest) (*circle.WireBeneficiaryResponse, error) {
				assert.Equal(t, "123456789012345678", req.AccountNumber)
				assert.Equal(t, "MX", req.BankAddress.Country)
				assert.Equal(t, "BBVA MEXICO", req.BankAddress.BankName)
				assert.Equal(t, "Mom", req.BillingDetails.Name)
				return beneficiary, nil
			}),
		store.EXPECT().
			CreateContact(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params db.CreateContactParams) (db.Contact, error) {
				assert.Equal(t, "mom", params.Nickname)
				assert.Equal(t, "MX", params.Country)
				assert.Equal(t, "MXN", params.Currency)
				assert.Equal(t, "bene-9", params.ProviderBeneficiaryID)
				return db.Contact{}, nil
			}),
	)

	svc := services.NewFiatSettlementService(bank, store, nil, zap.NewNop())
	result, err := svc.SaveBeneficiary(context.Background(), 42, saveIntent("Mexico", ""))

	require.NoError(t, err)
	assert.Contains(t, result.Message, "Send money to Mom")
}

func TestFiatSettlementService_SaveBeneficiary_USAddressBlock(t *testing.T) {
	bank := mocks.NewMockCircleClientForTest(t)
	store := mocks.NewMockStoreForTest(t)

	beneficiary := &circle.WireBeneficiaryResponse{}
	beneficiary.Data.ID = "bene-us"
	bank.EXPECT().
		CreateWireBeneficiary(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req circle.CreateWireBeneficiaryRequest) (*circle.WireBeneficiaryResponse, error) {
			assert.Equal(t, "US", req.BillingDetails.Country)
			assert.Equal(t, "10005", req.BillingDetails.PostalCode)
			assert.Equal(t, "Chase Bank", req.BankAddress.BankName)
			return beneficiary, nil
		})
	store.EXPECT().
		CreateContact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params db.CreateContactParams) (db.Contact, error) {
			assert.Equal(t, "USD", params.Currency)
			return db.Contact{}, nil
		})

	svc := services.NewFiatSettlementService(bank, store, nil, zap.NewNop())
	_, err := svc.SaveBeneficiary(context.Background(), 42, saveIntent("USA", ""))

	require.NoError(t, err)
}

func TestFiatSettlementService_SaveBeneficiary_RegistrationFailureSavesNothing(t *testing.T) {
	bank := mocks.NewMockCircleClientForTest(t)
	store := mocks.NewMockStoreForTest(t)

	bank.EXPECT().CreateWireBeneficiary(gomock.Any(), gomock.Any()).Return(nil, errors.New("Invalid entity."))

	svc := services.NewFiatSettlementService(bank, store, nil, zap.NewNop())
	result, err := svc.SaveBeneficiary(context.Background(), 42, saveIntent("MX", "MXN"))

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, services.ErrProviderError))
}

func TestFiatSettlementService_SaveBeneficiary_Incomplete(t *testing.T) {
	bank := mocks.NewMockCircleClientForTest(t)
	store := mocks.NewMockStoreForTest(t)

	intent := saveIntent("MX", "MXN")
	intent.RoutingNumber = ""

	svc := services.NewFiatSettlementService(bank, store, nil, zap.NewNop())
	_, err := svc.SaveBeneficiary(context.Background(), 42, intent)

	assert.True(t, errors.Is(err, services.ErrValidationIncomplete))
	assert.Contains(t, err.Error(), "routing_number")
}
