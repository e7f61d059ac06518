package swapprovider

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	httpClient "github.com/payitnow/payitnow-api/internal/client/http"
	"github.com/pkg/errors"
)

const DefaultBaseURL = "https://api.changelly.com/v2"

// ErrProvider marks an explicit error returned by the exchange (JSON-RPC error field
// or non-2xx status), as opposed to a transport failure.
var ErrProvider = errors.New("swap provider error")

// SwapClient is a JSON-RPC client for the exchange. Every request body is signed
// with HMAC-SHA512 using the API secret.
type SwapClient struct {
	apiKey     string
	apiSecret  []byte
	httpClient *httpClient.HTTPClient
	newID      func() string
}

// NewSwapClient creates a client for baseURL. Extra options are applied after the defaults.
func NewSwapClient(apiKey, apiSecret, baseURL string, timeout time.Duration, opts ...httpClient.ClientOption) *SwapClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	options := []httpClient.ClientOption{
		httpClient.WithBaseURL(baseURL),
		httpClient.WithDefaultHeader("X-Api-Key", apiKey),
	}
	if timeout > 0 {
		options = append(options, httpClient.WithTimeout(timeout))
	}
	options = append(options, opts...)

	return &SwapClient{
		apiKey:     apiKey,
		apiSecret:  []byte(apiSecret),
		httpClient: httpClient.NewHTTPClient(options...),
		newID:      uuid.NewString,
	}
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      string      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// Sign returns the hex HMAC-SHA512 of body under the API secret
func (c *SwapClient) Sign(body []byte) string {
	mac := hmac.New(sha512.New, c.apiSecret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// call performs one signed JSON-RPC request and decodes result into target
func (c *SwapClient) call(ctx context.Context, method string, params interface{}, target interface{}) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.newID(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal rpc request")
	}

	resp, err := c.httpClient.PostRaw(ctx, "", body,
		httpClient.WithHeader("X-Api-Signature", c.Sign(body)),
	)
	if err != nil {
		var httpErr *httpClient.HTTPError
		if errors.As(err, &httpErr) {
			return errors.Wrapf(ErrProvider, "%s: status %d: %s", method, httpErr.StatusCode, httpErr.Body)
		}
		return errors.Wrapf(err, "%s request failed", method)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s response", method)
	}
	if resp.StatusCode != http.StatusOK {
		return errors.Wrapf(ErrProvider, "%s: status %d", method, resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(raw, &rpcResp); err != nil {
		return errors.Wrapf(err, "failed to decode %s response", method)
	}
	if rpcResp.Error != nil {
		return errors.Wrapf(ErrProvider, "%s: %s (code %d)", method, rpcResp.Error.Message, rpcResp.Error.Code)
	}
	if target == nil {
		return nil
	}
	if err := json.Unmarshal(rpcResp.Result, target); err != nil {
		return errors.Wrapf(err, "failed to decode %s result", method)
	}
	return nil
}
