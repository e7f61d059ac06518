package circle

import (
	"context"
	"fmt"
	"strings"

	httpClient "github.com/payitnow/payitnow-api/internal/client/http"
	"github.com/shopspring/decimal"
)

// GetAvailableBalance returns the available business balance in currency, zero when absent
func (c *CircleClient) GetAvailableBalance(ctx context.Context, currency string) (decimal.Decimal, error) {
	resp, err := c.httpClient.Get(
		ctx,
		"businessAccount/balances",
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get balances: %w", err)
	}

	var response BalancesResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &response); err != nil {
		return decimal.Zero, fmt.Errorf("failed to process balances response: %w", err)
	}

	for _, balance := range response.Data.Available {
		if strings.EqualFold(balance.Currency, currency) {
			amount, err := decimal.NewFromString(balance.Amount)
			if err != nil {
				return decimal.Zero, fmt.Errorf("invalid balance amount %q: %w", balance.Amount, err)
			}
			return amount, nil
		}
	}

	return decimal.Zero, nil
}

// GetMasterWalletID returns the treasury master wallet id used as the payout source
func (c *CircleClient) GetMasterWalletID(ctx context.Context) (string, error) {
	resp, err := c.httpClient.Get(
		ctx,
		"configuration",
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return "", fmt.Errorf("failed to get configuration: %w", err)
	}

	var response ConfigurationResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &response); err != nil {
		return "", fmt.Errorf("failed to process configuration response: %w", err)
	}
	if response.Data.Payments.MasterWalletID == "" {
		return "", fmt.Errorf("configuration response missing master wallet id")
	}

	return response.Data.Payments.MasterWalletID, nil
}
