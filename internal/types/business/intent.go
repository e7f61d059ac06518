package business

import (
	"strings"

	"github.com/shopspring/decimal"
)

// IntentKind is the tagged variant the execution engine dispatches on
type IntentKind string

const (
	IntentTransfer     IntentKind = "TRANSFER"
	IntentBuy          IntentKind = "BUY"
	IntentSell         IntentKind = "SELL"
	IntentSettleFiat   IntentKind = "SETTLE_FIAT"
	IntentSaveContact  IntentKind = "SAVE_CONTACT"
	IntentCheckBalance IntentKind = "CHECK_BALANCE"
)

// ParseIntentKind maps an extractor label onto a known kind. BALANCE is accepted as
// an alias of CHECK_BALANCE.
func ParseIntentKind(label string) (IntentKind, bool) {
	switch IntentKind(strings.ToUpper(strings.TrimSpace(label))) {
	case IntentTransfer:
		return IntentTransfer, true
	case IntentBuy:
		return IntentBuy, true
	case IntentSell:
		return IntentSell, true
	case IntentSettleFiat:
		return IntentSettleFiat, true
	case IntentSaveContact:
		return IntentSaveContact, true
	case IntentCheckBalance, "BALANCE":
		return IntentCheckBalance, true
	default:
		return "", false
	}
}

// IsPayment reports whether the kind moves funds and therefore needs amount and currency.
func (k IntentKind) IsPayment() bool {
	switch k {
	case IntentTransfer, IntentBuy, IntentSell, IntentSettleFiat:
		return true
	default:
		return false
	}
}

// PaymentIntent is the structured form of a user request. It is treated as immutable
// once Complete has been set by validation.
type PaymentIntent struct {
	Kind            IntentKind
	Amount          decimal.NullDecimal
	Currency        string
	Recipient       string
	Country         string
	BeneficiaryName string
	AccountNumber   string
	RoutingNumber   string
	BankName        string
	Complete        bool
}

// Nickname is the contact key used for fiat settlement and saved contacts.
func (p PaymentIntent) Nickname() string {
	name := p.BeneficiaryName
	if name == "" {
		name = p.Recipient
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// MissingFields lists the fields required by Kind that are absent.
func (p PaymentIntent) MissingFields() []string {
	var missing []string
	switch {
	case p.Kind.IsPayment():
		if !p.Amount.Valid {
			missing = append(missing, "amount")
		}
		if p.Currency == "" {
			missing = append(missing, "currency")
		}
	case p.Kind == IntentSaveContact:
		if p.Nickname() == "" {
			missing = append(missing, "nickname")
		}
		if p.AccountNumber == "" {
			missing = append(missing, "account_number")
		}
		if p.RoutingNumber == "" {
			missing = append(missing, "routing_number")
		}
	case p.Kind == IntentCheckBalance:
	default:
		missing = append(missing, "intent")
	}
	return missing
}

// HasRequiredFields reports whether every field required by Kind is present.
func (p PaymentIntent) HasRequiredFields() bool {
	return len(p.MissingFields()) == 0
}

// ExecutionResult is what the engine hands back to the user-facing layer
type ExecutionResult struct {
	Message string
	// QRAddress is a deposit address the caller should render as a QR code.
	QRAddress    string
	ExternalTxID string
}

// ExtractedIntent is the strict wire schema the intent extractor must produce.
// Unknown fields are a parse failure.
type ExtractedIntent struct {
	Intent        string              `json:"intent"`
	Amount        decimal.NullDecimal `json:"amount"`
	Currency      *string             `json:"currency"`
	Recipient     *string             `json:"recipient"`
	Country       *string             `json:"country"`
	Beneficiary   *string             `json:"beneficiary"`
	AccountNumber *string             `json:"accountNumber"`
	RoutingNumber *string             `json:"routingNumber"`
	BankName      *string             `json:"bankName"`
}
