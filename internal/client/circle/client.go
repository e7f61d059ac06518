package circle

import (
	"time"

	httpClient "github.com/payitnow/payitnow-api/internal/client/http"
)

const (
	CircleSandboxBaseURL = "https://api-sandbox.circle.com/v1"
)

// Payout statuses reported by GET /businessAccount/payouts/{id}
const (
	PayoutStatusPending  = "pending"
	PayoutStatusComplete = "complete"
	PayoutStatusFailed   = "failed"
)

// CircleClient talks to the banking partner's business account API
type CircleClient struct {
	apiKey     string
	httpClient *httpClient.HTTPClient
	newKey     func() string
}

// NewCircleClient creates a client for baseURL. Extra options are applied after the defaults.
func NewCircleClient(apiKey, baseURL string, timeout time.Duration, opts ...httpClient.ClientOption) *CircleClient {
	if baseURL == "" {
		baseURL = CircleSandboxBaseURL
	}
	options := []httpClient.ClientOption{
		httpClient.WithBaseURL(baseURL),
	}
	if timeout > 0 {
		options = append(options, httpClient.WithTimeout(timeout))
	}
	options = append(options, opts...)

	return &CircleClient{
		apiKey:     apiKey,
		httpClient: httpClient.NewHTTPClient(options...),
		newKey:     newIdempotencyKey,
	}
}
