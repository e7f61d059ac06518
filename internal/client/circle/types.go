package circle

import "github.com/google/uuid"

func newIdempotencyKey() string {
	return uuid.NewString()
}

// Address is a billing or bank address block
type Address struct {
	Name       string `json:"name,omitempty"`
	BankName   string `json:"bankName,omitempty"`
	City       string `json:"city"`
	Country    string `json:"country"`
	Line1      string `json:"line1,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	District   string `json:"district"`
}

// CreateWireBeneficiaryRequest registers a wire bank account
type CreateWireBeneficiaryRequest struct {
	IdempotencyKey string  `json:"idempotencyKey"`
	AccountNumber  string  `json:"accountNumber"`
	RoutingNumber  string  `json:"routingNumber"`
	BillingDetails Address `json:"billingDetails"`
	BankAddress    Address `json:"bankAddress"`
}

// WireBeneficiaryResponse is the envelope returned for a created wire account
type WireBeneficiaryResponse struct {
	Data struct {
		ID          string `json:"id"`
		Status      string `json:"status"`
		Description string `json:"description"`
		TrackingRef string `json:"trackingRef"`
	} `json:"data"`
}

// Money is an amount/currency pair. Amount is a decimal string such as "500.00".
type Money struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// Endpoint identifies a payout source or destination
type Endpoint struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// CreatePayoutRequest sends fiat from the master wallet to a wire beneficiary
type CreatePayoutRequest struct {
	IdempotencyKey string   `json:"idempotencyKey"`
	Source         Endpoint `json:"source"`
	Destination    Endpoint `json:"destination"`
	Amount         Money    `json:"amount"`
}

// PayoutResponse is the envelope for payout create and lookup
type PayoutResponse struct {
	Data struct {
		ID          string   `json:"id"`
		Status      string   `json:"status"`
		Amount      Money    `json:"amount"`
		Destination Endpoint `json:"destination"`
		CreateDate  string   `json:"createDate"`
		UpdateDate  string   `json:"updateDate"`
	} `json:"data"`
}

// BalancesResponse is the envelope for GET /businessAccount/balances
type BalancesResponse struct {
	Data struct {
		Available []Money `json:"available"`
		Unsettled []Money `json:"unsettled"`
	} `json:"data"`
}

// ConfigurationResponse is the envelope for GET /configuration
type ConfigurationResponse struct {
	Data struct {
		Payments struct {
			MasterWalletID string `json:"masterWalletId"`
		} `json:"payments"`
	} `json:"data"`
}
