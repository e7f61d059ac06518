package services

import (
	"context"
	"errors"
	"strings"

	"github.com/payitnow/payitnow-api/internal/client/extractor"
	"github.com/payitnow/payitnow-api/internal/constants"
	"github.com/payitnow/payitnow-api/internal/helpers"
	"github.com/payitnow/payitnow-api/internal/types/business"
	"go.uber.org/zap"
)

const unknownIntentLabel = "UNKNOWN"

// currencyAliases maps slang tickers to real ones
var currencyAliases = map[string]string{
	"BUCKS": constants.AssetUSDC,
}

// correctionRule rewrites an extracted intent the extractor is known to get wrong
type correctionRule struct {
	name    string
	applies func(business.PaymentIntent) bool
	apply   func(*business.PaymentIntent)
}

// intentCorrections run in order on every decoded intent
var intentCorrections = []correctionRule{
	{
		name: "currency_alias",
		applies: func(p business.PaymentIntent) bool {
			_, ok := currencyAliases[p.Currency]
			return ok
		},
		apply: func(p *business.PaymentIntent) {
			p.Currency = currencyAliases[p.Currency]
		},
	},
	{
		name: "fiat_transfer_is_settlement",
		applies: func(p business.PaymentIntent) bool {
			return p.Kind == business.IntentTransfer && (constants.IsFiatCurrency(p.Currency) || p.Country != "")
		},
		apply: func(p *business.PaymentIntent) {
			p.Kind = business.IntentSettleFiat
		},
	},
	{
		name: "fiat_buy_with_country_is_settlement",
		applies: func(p business.PaymentIntent) bool {
			return p.Kind == business.IntentBuy && constants.IsFiatCurrency(p.Currency) && p.Country != ""
		},
		apply: func(p *business.PaymentIntent) {
			p.Kind = business.IntentSettleFiat
		},
	},
	{
		name: "settlement_stablecoin_as_fiat",
		applies: func(p business.PaymentIntent) bool {
			_, ok := constants.StablecoinPegs[p.Currency]
			return p.Kind == business.IntentSettleFiat && ok
		},
		apply: func(p *business.PaymentIntent) {
			p.Currency = constants.StablecoinPegs[p.Currency]
		},
	},
	{
		// a payout cannot be denominated in a crypto asset; the user is asked again
		name: "settlement_crypto_currency_dropped",
		applies: func(p business.PaymentIntent) bool {
			return p.Kind == business.IntentSettleFiat && p.Currency != "" && !constants.IsFiatCurrency(p.Currency)
		},
		apply: func(p *business.PaymentIntent) {
			p.Currency = ""
		},
	},
}

// IntentService turns free text into a validated PaymentIntent
type IntentService struct {
	extractor IntentExtractor
	logger    *zap.Logger
}

// NewIntentService creates an intent service
func NewIntentService(extractor IntentExtractor, logger *zap.Logger) *IntentService {
	return &IntentService{
		extractor: extractor,
		logger:    logger,
	}
}

// Parse extracts, decodes and corrects the intent in text. The returned intent has
// Complete set iff every field its kind requires is present.
func (s *IntentService) Parse(ctx context.Context, text string) (business.PaymentIntent, error) {
	raw, err := s.extractor.Extract(ctx, text)
	if err != nil {
		if errors.Is(err, extractor.ErrMalformedOutput) {
			return business.PaymentIntent{}, wrapExecutionError(ErrParseFailure, "Could not understand.", err)
		}
		return business.PaymentIntent{}, wrapExecutionError(ErrProviderError,
			"I can't read messages right now. Please try again in a moment.", err)
	}

	intent, err := DecodeIntent(raw)
	if err != nil {
		return business.PaymentIntent{}, err
	}

	corrected, applied := CorrectIntent(intent)
	if len(applied) > 0 {
		s.logger.Info("Corrected extracted intent",
			zap.Strings("rules", applied),
			zap.String("kind", string(corrected.Kind)),
		)
	}
	corrected.Complete = corrected.HasRequiredFields()
	return corrected, nil
}

// DecodeIntent converts the extractor schema into a PaymentIntent. Labels outside the
// known kinds are a parse failure. Non-positive amounts count as missing.
func DecodeIntent(raw *business.ExtractedIntent) (business.PaymentIntent, error) {
	if raw == nil || strings.EqualFold(strings.TrimSpace(raw.Intent), unknownIntentLabel) {
		return business.PaymentIntent{}, newExecutionError(ErrParseFailure, "I didn't catch that.")
	}
	kind, ok := business.ParseIntentKind(raw.Intent)
	if !ok {
		return business.PaymentIntent{}, newExecutionError(ErrParseFailure, "I didn't catch that.")
	}

	intent := business.PaymentIntent{
		Kind:            kind,
		Amount:          raw.Amount,
		Currency:        helpers.NormalizeTicker(deref(raw.Currency)),
		Recipient:       strings.TrimSpace(deref(raw.Recipient)),
		Country:         strings.TrimSpace(deref(raw.Country)),
		BeneficiaryName: strings.TrimSpace(deref(raw.Beneficiary)),
		AccountNumber:   strings.TrimSpace(deref(raw.AccountNumber)),
		RoutingNumber:   strings.TrimSpace(deref(raw.RoutingNumber)),
		BankName:        strings.TrimSpace(deref(raw.BankName)),
	}
	if intent.Amount.Valid && !intent.Amount.Decimal.IsPositive() {
		intent.Amount.Valid = false
	}
	return intent, nil
}

// CorrectIntent applies the correction table and returns the corrected copy with the
// names of the rules that fired
func CorrectIntent(intent business.PaymentIntent) (business.PaymentIntent, []string) {
	var applied []string
	for _, rule := range intentCorrections {
		if rule.applies(intent) {
			rule.apply(&intent)
			applied = append(applied, rule.name)
		}
	}
	return intent, applied
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
