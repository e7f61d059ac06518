package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/payitnow/payitnow-api/internal/client/circle"
	"github.com/payitnow/payitnow-api/internal/client/notify"
	"github.com/payitnow/payitnow-api/internal/constants"
	"github.com/payitnow/payitnow-api/internal/db"
	"github.com/payitnow/payitnow-api/internal/helpers"
	"github.com/payitnow/payitnow-api/internal/types/business"
	"go.uber.org/zap"
)

const alertTimeout = 10 * time.Second

// countryCodes maps upper-cased country names to their two-letter code
var countryCodes = map[string]string{
	"MEXICO":        constants.CountryMX,
	"MX":            constants.CountryMX,
	"USA":           constants.CountryUS,
	"UNITED STATES": constants.CountryUS,
	"US":            constants.CountryUS,
	"COLOMBIA":      constants.CountryCO,
	"BRAZIL":        constants.CountryBR,
	"ARGENTINA":     constants.CountryAR,
}

// NormalizeCountry maps a free-text country to a two-letter code. Unknown two-letter
// input passes through; anything else is US.
func NormalizeCountry(raw string) string {
	c := strings.ToUpper(strings.TrimSpace(raw))
	if code, ok := countryCodes[c]; ok {
		return code
	}
	if len(c) == 2 {
		return c
	}
	return constants.CountryUS
}

// FiatSettlementService pays saved beneficiaries out of the treasury and registers new ones
type FiatSettlementService struct {
	bank    circle.CircleClientInterface
	store   db.Store
	alerter notify.OperatorAlerter
	logger  *zap.Logger
}

// NewFiatSettlementService creates a fiat settlement gateway. alerter may be nil.
func NewFiatSettlementService(bank circle.CircleClientInterface, store db.Store, alerter notify.OperatorAlerter, logger *zap.Logger) *FiatSettlementService {
	return &FiatSettlementService{
		bank:    bank,
		store:   store,
		alerter: alerter,
		logger:  logger,
	}
}

// Settle pays intent.Amount to the saved contact named by the intent. Preconditions are
// checked in order and the first failure stops the payout.
func (s *FiatSettlementService) Settle(ctx context.Context, userID int64, intent business.PaymentIntent) (*business.ExecutionResult, error) {
	nickname := intent.Nickname()
	displayName := intent.BeneficiaryName
	if displayName == "" {
		displayName = intent.Recipient
	}
	if displayName == "" {
		displayName = "Beneficiary"
	}

	contact, err := s.store.GetContact(ctx, db.GetContactParams{UserID: userID, Nickname: nickname})
	if err != nil {
		if db.IsNotFound(err) || nickname == "" {
			return nil, newExecutionError(ErrValidationIncomplete, fmt.Sprintf(
				"I don't have a bank account saved for '%s'.\n\nPlease provide their details in this format:\n"+
					"Name, Routing/SWIFT, Account Number, Country", displayName))
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	amount := intent.Amount.Decimal
	currency := payoutCurrency(intent.Currency, contact.Currency)
	balance, err := s.bank.GetAvailableBalance(ctx, currency)
	if err != nil {
		return nil, wrapExecutionError(ErrProviderError, "Could not read the treasury balance.", err)
	}

	masterWalletID, err := s.bank.GetMasterWalletID(ctx)
	if err != nil {
		return nil, wrapExecutionError(ErrProviderError, "Could not resolve the treasury wallet.", err)
	}

	if balance.LessThan(amount) {
		s.logger.Warn("Treasury below payout amount",
			zap.Int64("user_id", userID),
			zap.String("balance", balance.String()),
			zap.String("required", amount.String()),
			zap.String("currency", currency),
		)
		s.alertTreasuryShortfall(ctx, masterWalletID, currency, balance.String(), amount.String())
		return nil, needsFunding(fmt.Sprintf(
			"Master Wallet Insufficient Funds.\nBalance: %s %s\nRequired: %s %s\n\n"+
				"Please top up the Master Wallet at this address:\n%s", balance, currency, amount, currency, masterWalletID), masterWalletID)
	}

	country := intent.Country
	if country == "" {
		country = contact.Country
	}
	countryCode := NormalizeCountry(country)

	payout, err := s.bank.CreatePayout(ctx, circle.CreatePayoutRequest{
		Source:      circle.Endpoint{Type: "wallet", ID: masterWalletID},
		Destination: circle.Endpoint{Type: "wire", ID: contact.ProviderBeneficiaryID},
		Amount:      circle.Money{Amount: amount.StringFixed(2), Currency: currency},
	})
	if err != nil {
		return nil, wrapExecutionError(ErrProviderError, "Payout Failed: "+err.Error(), err)
	}
	payoutID := payout.Data.ID

	s.logger.Info("Payout issued",
		zap.Int64("user_id", userID),
		zap.String("payout_id", payoutID),
		zap.String("nickname", nickname),
		zap.String("country", countryCode),
		zap.String("currency", currency),
	)

	if _, err := s.store.CreateSettlementRecord(ctx, db.CreateSettlementRecordParams{
		ExternalTxID:   payoutID,
		UserID:         userID,
		Kind:           constants.RecordKindFiat,
		Status:         constants.StatusPayoutProcessing,
		Pair:           constants.AssetUSDC + "->" + currency,
		AmountExpected: amount,
		BeneficiaryRef: pgtype.Text{String: nickname, Valid: true},
	}); err != nil {
		s.logger.Error("Failed to persist payout record",
			zap.String("payout_id", payoutID),
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	var msg string
	if countryCode != constants.CountryUS {
		msg = fmt.Sprintf("INTERNATIONAL TRANSFER SENT!\n\nRecipient: %s (%s)\nAmount: %s %s\nPayout ID: %s\n\n"+
			"Funds should arrive in 1-2 business days.", displayName, countryCode, amount, currency, payoutID)
	} else {
		msg = fmt.Sprintf("SETTLEMENT SUCCESSFUL!\n\nSending %s %s to %s's %s account.\nPayout ID: %s",
			amount, currency, displayName, contact.BankName.String, payoutID)
	}
	return &business.ExecutionResult{Message: msg, ExternalTxID: payoutID}, nil
}

// SaveBeneficiary registers the banking details with the provider and then persists the
// contact. Nothing is stored when registration fails.
func (s *FiatSettlementService) SaveBeneficiary(ctx context.Context, userID int64, intent business.PaymentIntent) (*business.ExecutionResult, error) {
	if missing := intent.MissingFields(); len(missing) > 0 {
		return nil, newExecutionError(ErrValidationIncomplete,
			"To save a contact I need: "+strings.Join(missing, ", ")+".")
	}

	name := strings.TrimSpace(intent.BeneficiaryName)
	if name == "" {
		name = strings.TrimSpace(intent.Recipient)
	}
	country := NormalizeCountry(intent.Country)
	currency := helpers.NormalizeTicker(intent.Currency)
	if currency == "" {
		currency = constants.FiatUSD
		if country == constants.CountryMX {
			currency = constants.FiatMXN
		}
	}

	request := wireBeneficiaryRequest(name, country, intent.AccountNumber, intent.RoutingNumber, intent.BankName)
	beneficiary, err := s.bank.CreateWireBeneficiary(ctx, request)
	if err != nil {
		return nil, wrapExecutionError(ErrProviderError, "Failed to save contact: "+err.Error(), err)
	}

	_, err = s.store.CreateContact(ctx, db.CreateContactParams{
		UserID:                userID,
		Nickname:              intent.Nickname(),
		Name:                  name,
		Country:               country,
		Currency:              currency,
		AccountNumber:         intent.AccountNumber,
		RoutingNumber:         intent.RoutingNumber,
		BankName:              pgtype.Text{String: request.BankAddress.BankName, Valid: request.BankAddress.BankName != ""},
		ProviderBeneficiaryID: beneficiary.Data.ID,
	})
	if err != nil {
		s.logger.Error("Registered beneficiary but failed to persist contact",
			zap.Int64("user_id", userID),
			zap.String("beneficiary_id", beneficiary.Data.ID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}

	s.logger.Info("Contact saved",
		zap.Int64("user_id", userID),
		zap.String("nickname", intent.Nickname()),
		zap.String("beneficiary_id", beneficiary.Data.ID),
	)
	return &business.ExecutionResult{
		Message: fmt.Sprintf("Contact Saved! You can now just say 'Send money to %s'.", name),
	}, nil
}

// wireBeneficiaryRequest builds the wire registration with the address blocks the
// provider sandbox accepts for US and international accounts
func wireBeneficiaryRequest(name, country, accountNumber, routingNumber, bankName string) circle.CreateWireBeneficiaryRequest {
	if country == constants.CountryUS {
		if bankName == "" {
			bankName = "Chase Bank"
		}
		return circle.CreateWireBeneficiaryRequest{
			AccountNumber: accountNumber,
			RoutingNumber: routingNumber,
			BillingDetails: circle.Address{
				Name:       name,
				City:       "New York",
				Country:    constants.CountryUS,
				Line1:      "100 Wall Street",
				PostalCode: "10005",
				District:   "NY",
			},
			BankAddress: circle.Address{
				BankName: bankName,
				City:     "New York",
				Country:  constants.CountryUS,
				District: "NY",
			},
		}
	}

	if bankName == "" {
		bankName = "BBVA MEXICO"
	}
	return circle.CreateWireBeneficiaryRequest{
		AccountNumber: accountNumber,
		RoutingNumber: routingNumber,
		BillingDetails: circle.Address{
			Name:       name,
			City:       "Mexico City",
			Country:    country,
			Line1:      "Av Reforma 123",
			PostalCode: "06500",
			District:   constants.CountryMX,
		},
		BankAddress: circle.Address{
			BankName: bankName,
			City:     "Mexico City",
			Country:  country,
			District: constants.CountryMX,
		},
	}
}

// payoutCurrency is the currency the payout is denominated in: the requested one, then the
// contact's saved currency, then USD
func payoutCurrency(requested, saved string) string {
	if c := helpers.NormalizeTicker(requested); c != "" {
		return c
	}
	if c := helpers.NormalizeTicker(saved); c != "" {
		return c
	}
	return constants.FiatUSD
}

func (s *FiatSettlementService) alertTreasuryShortfall(ctx context.Context, walletID, currency, balance, required string) {
	if s.alerter == nil {
		return
	}
	alertCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), alertTimeout)
	defer cancel()

	subject := "Treasury top-up required"
	body := fmt.Sprintf("Master wallet %s holds %s %s but a payout needs %s %s.", walletID, balance, currency, required, currency)
	if err := s.alerter.Alert(alertCtx, subject, body); err != nil {
		s.logger.Warn("Failed to send treasury alert", zap.Error(err))
	}
}
