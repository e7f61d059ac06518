package business

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettlementRecord tracks one in-flight provider transaction until it is terminal
type SettlementRecord struct {
	ExternalTxID   string
	UserID         int64
	Kind           string
	Status         string
	Pair           string
	AmountExpected decimal.Decimal
	DepositAddress *string
	BeneficiaryRef *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StatusTransition is one applied status change, kept for audit
type StatusTransition struct {
	ExternalTxID string
	FromStatus   string
	ToStatus     string
	CreatedAt    time.Time
}

// Contact is a saved fiat beneficiary keyed by (UserID, Nickname)
type Contact struct {
	UserID                int64
	Nickname              string
	Name                  string
	Country               string
	Currency              string
	AccountNumber         string
	RoutingNumber         string
	BankName              string
	ProviderBeneficiaryID string
	CreatedAt             time.Time
}
