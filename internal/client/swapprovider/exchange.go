package swapprovider

import (
	"context"
	"strings"

	httpClient "github.com/payitnow/payitnow-api/internal/client/http"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Normalized order statuses
const (
	StatusWait         = "wait"
	StatusConfirmation = "confirmation"
	StatusExchange     = "exchange"
	StatusSending      = "sending"
	StatusSuccess      = "success"
	StatusOverdue      = "overdue"
	StatusRefund       = "refund"
	StatusFailed       = "failed"
	StatusError        = "error"
)

// providerStatuses folds the exchange's vocabulary onto the normalized statuses.
var providerStatuses = map[string]string{
	"new":          StatusWait,
	"wait":         StatusWait,
	"waiting":      StatusWait,
	"confirmation": StatusConfirmation,
	"confirming":   StatusConfirmation,
	"confirmed":    StatusConfirmation,
	"exchange":     StatusExchange,
	"exchanging":   StatusExchange,
	"sending":      StatusSending,
	"success":      StatusSuccess,
	"finished":     StatusSuccess,
	"overdue":      StatusOverdue,
	"expired":      StatusOverdue,
	"refund":       StatusRefund,
	"refunded":     StatusRefund,
	"failed":       StatusFailed,
}

// NormalizeStatus maps a raw provider status. Unknown values normalize to StatusError
// so callers leave the record untouched.
func NormalizeStatus(raw string) string {
	if s, ok := providerStatuses[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return StatusError
}

// Network is one network a currency can be moved on
type Network struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type networksParams struct {
	Currency string `json:"currency"`
}

// GetNetworks lists the networks the exchange supports for ticker, in provider order
func (c *SwapClient) GetNetworks(ctx context.Context, ticker string) ([]Network, error) {
	var networks []Network
	if err := c.call(ctx, "getCurrencyNetworks", networksParams{Currency: strings.ToLower(ticker)}, &networks); err != nil {
		return nil, err
	}

	active := networks[:0]
	for _, n := range networks {
		if n.IsActive {
			active = append(active, n)
		}
	}
	return active, nil
}

// QuoteRequest prices an exchange of AmountFrom units of From into To
type QuoteRequest struct {
	From        string `json:"from"`
	To          string `json:"to"`
	NetworkFrom string `json:"networkFrom,omitempty"`
	NetworkTo   string `json:"networkTo,omitempty"`
	AmountFrom  string `json:"amountFrom"`
}

// Quote is the priced result of a QuoteRequest
type Quote struct {
	AmountTo   decimal.Decimal `json:"amountTo"`
	MinAmount  decimal.Decimal `json:"min"`
	MaxAmount  decimal.Decimal `json:"max"`
	NetworkFee decimal.Decimal `json:"networkFee"`
	Rate       decimal.Decimal `json:"rate"`
}

// GetExchangeAmount returns the estimated output and limits for an exchange
func (c *SwapClient) GetExchangeAmount(ctx context.Context, req QuoteRequest) (*Quote, error) {
	req.From = strings.ToLower(req.From)
	req.To = strings.ToLower(req.To)

	var quotes []Quote
	if err := c.call(ctx, "getExchangeAmount", []QuoteRequest{req}, &quotes); err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, errors.Wrap(ErrProvider, "getExchangeAmount: empty result")
	}
	return &quotes[0], nil
}

// CreateTransactionRequest opens an exchange order paying out to Address
type CreateTransactionRequest struct {
	From        string `json:"from"`
	To          string `json:"to"`
	NetworkFrom string `json:"networkFrom,omitempty"`
	NetworkTo   string `json:"networkTo,omitempty"`
	AmountFrom  string `json:"amountFrom"`
	Address     string `json:"address"`
}

// Transaction is a created exchange order
type Transaction struct {
	TransactionID  string `json:"transaction_id"`
	DepositAddress string `json:"deposit_address"`
	Status         string `json:"status"`
}

// CreateTransaction creates an exchange order. The caller deposits into DepositAddress.
// The request is sent once: the exchange has no idempotency key, so a retried create can
// open a second order.
func (c *SwapClient) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*Transaction, error) {
	req.From = strings.ToLower(req.From)
	req.To = strings.ToLower(req.To)

	var tx Transaction
	if err := c.call(httpClient.WithoutRetry(ctx), "createTransaction", req, &tx); err != nil {
		return nil, err
	}
	if tx.TransactionID == "" || tx.DepositAddress == "" {
		return nil, errors.Wrap(ErrProvider, "createTransaction: missing transaction id or deposit address")
	}
	return &tx, nil
}

type statusParams struct {
	ID string `json:"id"`
}

// GetStatus returns the normalized status of an exchange order
func (c *SwapClient) GetStatus(ctx context.Context, transactionID string) (string, error) {
	var raw string
	if err := c.call(ctx, "getStatus", statusParams{ID: transactionID}, &raw); err != nil {
		return StatusError, err
	}
	return NormalizeStatus(raw), nil
}
