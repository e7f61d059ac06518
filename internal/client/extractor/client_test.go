package extractor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	httpClient "github.com/payitnow/payitnow-api/internal/client/http"
	"github.com/payitnow/payitnow-api/internal/metrics"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "payitnow-intent", req.Model)
		assert.Equal(t, "json", req.Format)
		assert.False(t, req.Stream)
		assert.Contains(t, req.Prompt, "send 500 MXN to Juan")

		_ = json.NewEncoder(w).Encode(generateResponse{
			Response: `{"intent":"SETTLE_FIAT","amount":500,"currency":"MXN","country":"Mexico","beneficiary":"Juan"}`,
			Done:     true,
		})
	}))
	defer server.Close()

	e := NewOllamaExtractor(server.URL, "payitnow-intent", 0, httpClient.WithRetryConfig(nil))
	intent, err := e.Extract(context.Background(), "send 500 MXN to Juan")

	require.NoError(t, err)
	assert.Equal(t, "SETTLE_FIAT", intent.Intent)
	require.True(t, intent.Amount.Valid)
	assert.True(t, decimal.NewFromInt(500).Equal(intent.Amount.Decimal))
	assert.Equal(t, "Mexico", *intent.Country)
	assert.Equal(t, "Juan", *intent.Beneficiary)
	assert.Nil(t, intent.Recipient)
}

func TestExtract_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model not found"}`))
	}))
	defer server.Close()

	e := NewOllamaExtractor(server.URL, "", 0, httpClient.WithRetryConfig(nil))
	_, err := e.Extract(context.Background(), "hi")

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMalformedOutput))
}

func TestExtract_DefaultClientRequestCounts(t *testing.T) {
	tests := []struct {
		name      string
		failures  int32
		status    int
		wantCalls int32
		wantErr   bool
	}{
		{name: "transient unavailability is retried", failures: 1, status: http.StatusServiceUnavailable, wantCalls: 2},
		{name: "missing model is not retried", failures: 5, status: http.StatusNotFound, wantCalls: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if atomic.AddInt32(&calls, 1) <= tt.failures {
					w.WriteHeader(tt.status)
					return
				}
				_ = json.NewEncoder(w).Encode(generateResponse{
					Response: `{"intent":"GET_BALANCE"}`,
					Done:     true,
				})
			}))
			defer server.Close()

			e := NewOllamaExtractor(server.URL, "", 5*time.Second,
				httpClient.WithMetricsCollector(metrics.NewProviderCollector("extractor")))
			_, err := e.Extract(context.Background(), "what is my balance")

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&calls))
		})
	}
}

func TestDecodeIntent(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "balance", raw: `{"intent":"BALANCE"}`},
		{name: "null amount", raw: `{"intent":"TRANSFER","amount":null,"currency":"USDC"}`},
		{name: "string amount", raw: `{"intent":"BUY","amount":"0.25","currency":"USDC"}`},
		{name: "unknown field", raw: `{"intent":"TRANSFER","memo":"rent"}`, wantErr: true},
		{name: "not json", raw: `Sure! Here is the JSON you asked for`, wantErr: true},
		{name: "missing intent", raw: `{"amount":5}`, wantErr: true},
		{name: "two objects", raw: `{"intent":"BALANCE"} {"intent":"BUY"}`, wantErr: true},
		{name: "wrong type", raw: `{"intent":"TRANSFER","currency":5}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeIntent(tt.raw)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrMalformedOutput))
				return
			}
			assert.NoError(t, err)
		})
	}
}
