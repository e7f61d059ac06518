package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	httpClient "github.com/payitnow/payitnow-api/internal/client/http"
	"github.com/payitnow/payitnow-api/internal/types/business"
	"github.com/pkg/errors"
)

const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "payitnow"

	generatePath = "/api/generate"
	temperature  = 0.1
)

// ErrMalformedOutput is returned when the model output does not match the intent schema
var ErrMalformedOutput = errors.New("extractor output does not match intent schema")

const systemPrompt = `You are a payment assistant. You MUST output strictly valid JSON.

INTENTS:
- SETTLE_FIAT: User wants to send real money, cash or fiat, or transfer to a bank or person in a specific country.
- SAVE_CONTACT: User providing bank details to save a beneficiary. Required: "beneficiary", "country", "accountNumber", "routingNumber" (optional: "bankName").
- TRANSFER: User wants to send crypto (ETH, USDC tokens) to a wallet address.
- BUY: User wants to swap ETH for tokens.
- SELL: User wants to swap tokens for ETH.
- BALANCE: Check wallet funds.

RULES:
- If currency is USD, MXN, or EUR the intent is SETTLE_FIAT.
- If currency is USDC, USDT, ETH the intent is TRANSFER, BUY or SELL.
- Extract "country" and "beneficiary" for SETTLE_FIAT.
- Identify "accountNumber" (digits) and "routingNumber" (alphanumeric SWIFT or digits).
- Use only these keys: intent, amount, currency, recipient, country, beneficiary, accountNumber, routingNumber, bankName.

Output Format:
{"intent": "SETTLE_FIAT", "amount": 500, "currency": "MXN", "country": "Mexico", "beneficiary": "Juan"}
{"intent": "SAVE_CONTACT", "beneficiary": "Mom", "country": "MX", "accountNumber": "123456789012345678", "routingNumber": "BCMRMXMMXXX"}`

type generateRequest struct {
	Model   string          `json:"model"`
	System  string          `json:"system"`
	Prompt  string          `json:"prompt"`
	Format  string          `json:"format"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// OllamaExtractor turns free text into an ExtractedIntent using a local model server
type OllamaExtractor struct {
	model      string
	httpClient *httpClient.HTTPClient
}

// NewOllamaExtractor creates an extractor for the model served at baseURL
func NewOllamaExtractor(baseURL, model string, timeout time.Duration, opts ...httpClient.ClientOption) *OllamaExtractor {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	options := []httpClient.ClientOption{httpClient.WithBaseURL(baseURL)}
	if timeout > 0 {
		options = append(options, httpClient.WithTimeout(timeout))
	}
	options = append(options, opts...)

	return &OllamaExtractor{
		model:      model,
		httpClient: httpClient.NewHTTPClient(options...),
	}
}

// Extract asks the model for the payment intent in text and strictly decodes the result
func (e *OllamaExtractor) Extract(ctx context.Context, text string) (*business.ExtractedIntent, error) {
	resp, err := e.httpClient.Post(ctx, generatePath, generateRequest{
		Model:   e.model,
		System:  systemPrompt,
		Prompt:  "Extract payment details from: " + text,
		Format:  "json",
		Stream:  false,
		Options: generateOptions{Temperature: temperature},
	})
	if err != nil {
		return nil, errors.Wrap(err, "extractor request failed")
	}

	var out generateResponse
	if err := e.httpClient.ProcessJSONResponse(resp, &out); err != nil {
		return nil, errors.Wrap(err, "failed to decode extractor response")
	}

	return DecodeIntent(out.Response)
}

// DecodeIntent strictly decodes one JSON object into an ExtractedIntent.
// Unknown keys, trailing data and a missing intent label all yield ErrMalformedOutput.
func DecodeIntent(raw string) (*business.ExtractedIntent, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(strings.TrimSpace(raw))))
	dec.DisallowUnknownFields()

	var intent business.ExtractedIntent
	if err := dec.Decode(&intent); err != nil {
		return nil, errors.Wrapf(ErrMalformedOutput, "%v", err)
	}
	if dec.More() {
		return nil, errors.Wrap(ErrMalformedOutput, "trailing data after intent object")
	}
	if strings.TrimSpace(intent.Intent) == "" {
		return nil, errors.Wrap(ErrMalformedOutput, "missing intent label")
	}
	return &intent, nil
}
