package circle

import (
	"context"
	"fmt"
	"net/url"

	httpClient "github.com/payitnow/payitnow-api/internal/client/http"
)

// CreatePayout issues a wire payout
func (c *CircleClient) CreatePayout(ctx context.Context, request CreatePayoutRequest) (*PayoutResponse, error) {
	if request.IdempotencyKey == "" {
		request.IdempotencyKey = c.newKey()
	}

	resp, err := c.httpClient.Post(
		ctx,
		"businessAccount/payouts",
		request,
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create payout: %w", err)
	}

	var response PayoutResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &response); err != nil {
		return nil, fmt.Errorf("failed to process payout response: %w", err)
	}
	if response.Data.ID == "" {
		return nil, fmt.Errorf("payout response missing id")
	}

	return &response, nil
}

// GetPayout fetches a payout by id
func (c *CircleClient) GetPayout(ctx context.Context, payoutID string) (*PayoutResponse, error) {
	resp, err := c.httpClient.Get(
		ctx,
		fmt.Sprintf("businessAccount/payouts/%s", url.PathEscape(payoutID)),
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get payout: %w", err)
	}

	var response PayoutResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &response); err != nil {
		return nil, fmt.Errorf("failed to process payout response: %w", err)
	}

	return &response, nil
}
