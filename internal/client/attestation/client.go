package attestation

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	httpClient "github.com/payitnow/payitnow-api/internal/client/http"
	"github.com/payitnow/payitnow-api/internal/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://iris-api-sandbox.circle.com"

	// DefaultAttempts and DefaultInterval bound how long a burn waits for its signature
	DefaultAttempts = 10
	DefaultInterval = 2 * time.Second

	// waitSlack is added to attempts*interval for the whole wait's deadline
	waitSlack = 5 * time.Second

	pendingAttestation = "PENDING"
)

// ErrAttestationTimeout is returned when no signature is available after every attempt
var ErrAttestationTimeout = errors.New("attestation not available")

// errPending is internal to the polling loop
var errPending = errors.New("attestation pending")

// Response is the attestation service payload for one message hash
type Response struct {
	Attestation string `json:"attestation"`
	Status      string `json:"status"`
}

// Signed reports whether the response carries a usable signature
func (r *Response) Signed() bool {
	return r.Attestation != "" && !strings.EqualFold(r.Attestation, pendingAttestation)
}

// AttestationClient talks to the cross-chain attestation service
type AttestationClient struct {
	httpClient *httpClient.HTTPClient
	attempts   uint64
	interval   time.Duration
	slack      time.Duration
}

// NewAttestationClient creates a client for baseURL with the default polling budget.
// Each poll is sent once; WaitForAttestation is the only retry loop.
func NewAttestationClient(baseURL string, timeout time.Duration, opts ...httpClient.ClientOption) *AttestationClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	options := []httpClient.ClientOption{
		httpClient.WithBaseURL(baseURL),
		httpClient.WithRetryConfig(nil),
	}
	if timeout > 0 {
		options = append(options, httpClient.WithTimeout(timeout))
	}
	options = append(options, opts...)

	return &AttestationClient{
		httpClient: httpClient.NewHTTPClient(options...),
		attempts:   DefaultAttempts,
		interval:   DefaultInterval,
		slack:      waitSlack,
	}
}

// WithPolling overrides the attempt count and interval
func (c *AttestationClient) WithPolling(attempts uint64, interval time.Duration) *AttestationClient {
	c.attempts = attempts
	c.interval = interval
	return c
}

// GetAttestation fetches the current attestation state for a 0x-prefixed message hash.
// A 404 is reported as a pending response, the service returns it until the burn is observed.
func (c *AttestationClient) GetAttestation(ctx context.Context, messageHash string) (*Response, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/attestations/%s", messageHash))
	if err != nil {
		var httpErr *httpClient.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return &Response{Attestation: pendingAttestation}, nil
		}
		return nil, errors.Wrap(err, "failed to fetch attestation")
	}

	var out Response
	if err := c.httpClient.ProcessJSONResponse(resp, &out); err != nil {
		return nil, errors.Wrap(err, "failed to decode attestation")
	}
	return &out, nil
}

// Budget is the longest WaitForAttestation runs before giving up. Zero means unbounded.
func (c *AttestationClient) Budget() time.Duration {
	if c.attempts == 0 {
		return 0
	}
	return time.Duration(c.attempts)*c.interval + c.slack
}

// WaitForAttestation polls at a fixed interval until a signature is available.
// Transport errors count as an attempt. Exhaustion of the attempts or of Budget returns
// ErrAttestationTimeout.
func (c *AttestationClient) WaitForAttestation(ctx context.Context, messageHash string) (string, error) {
	parent := ctx
	if budget := c.Budget(); budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, budget)
		defer cancel()
	}

	var signature string
	attempt := 0

	operation := func() error {
		attempt++
		resp, err := c.GetAttestation(ctx, messageHash)
		if err != nil {
			logger.Log.Debug("Attestation poll failed",
				zap.String("message_hash", messageHash),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			return err
		}
		if !resp.Signed() {
			return errPending
		}
		signature = resp.Attestation
		return nil
	}

	var b backoff.BackOff = backoff.NewConstantBackOff(c.interval)
	if c.attempts > 0 {
		b = backoff.WithMaxRetries(b, c.attempts-1)
	}
	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		if ctxErr := parent.Err(); ctxErr != nil {
			return "", errors.Wrap(ctxErr, "attestation polling cancelled")
		}
		return "", errors.Wrapf(ErrAttestationTimeout, "%s after %d attempts", messageHash, attempt)
	}
	return signature, nil
}

// ClientInterface is the attestation surface used by the bridge
type ClientInterface interface {
	GetAttestation(ctx context.Context, messageHash string) (*Response, error)
	WaitForAttestation(ctx context.Context, messageHash string) (string, error)
}

var _ ClientInterface = (*AttestationClient)(nil)
