package circle

import (
	"context"
	"fmt"

	httpClient "github.com/payitnow/payitnow-api/internal/client/http"
)

// CreateWireBeneficiary registers bank details and returns the provider beneficiary id
func (c *CircleClient) CreateWireBeneficiary(ctx context.Context, request CreateWireBeneficiaryRequest) (*WireBeneficiaryResponse, error) {
	if request.IdempotencyKey == "" {
		request.IdempotencyKey = c.newKey()
	}

	resp, err := c.httpClient.Post(
		ctx,
		"businessAccount/banks/wires",
		request,
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create wire beneficiary: %w", err)
	}

	var response WireBeneficiaryResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &response); err != nil {
		return nil, fmt.Errorf("failed to process wire beneficiary response: %w", err)
	}
	if response.Data.ID == "" {
		return nil, fmt.Errorf("wire beneficiary response missing id")
	}

	return &response, nil
}
