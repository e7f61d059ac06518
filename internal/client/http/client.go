package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/payitnow/payitnow-api/internal/logger"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// RequestOption modifies a single outgoing request
type RequestOption func(*http.Request)

// ClientOption configures an HTTPClient
type ClientOption func(*HTTPClient)

// Middleware wraps the client transport
type Middleware func(http.RoundTripper) http.RoundTripper

// HTTPError is returned for any response with status >= 400, after retries are exhausted
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	Method     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d %s: %s", e.Method, e.URL, e.StatusCode, e.Status, e.Body)
}

// HTTPClient is the shared JSON client behind every provider integration.
// Requests are retried with exponential backoff on transport errors and on the
// configured status codes.
type HTTPClient struct {
	httpClient     *http.Client
	baseURL        string
	defaultHeaders map[string]string
	retryConfig    *RetryConfig
	middlewares    []Middleware
	metrics        MetricsCollector
}

// RetryConfig configures the retry behavior. A nil config or MaxRetries of zero
// sends each request once.
type RetryConfig struct {
	MaxRetries           int
	InitialInterval      time.Duration
	MaxInterval          time.Duration
	Multiplier           float64
	MaxElapsedTime       time.Duration
	RetryableStatusCodes []int
}

func (r *RetryConfig) enabled() bool {
	return r != nil && r.MaxRetries > 0
}

func (r *RetryConfig) retryable(statusCode int) bool {
	for _, code := range r.RetryableStatusCodes {
		if statusCode == code {
			return true
		}
	}
	return false
}

func (r *RetryConfig) backOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = r.InitialInterval
	exp.MaxInterval = r.MaxInterval
	exp.Multiplier = r.Multiplier
	exp.MaxElapsedTime = r.MaxElapsedTime
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(r.MaxRetries)), ctx)
}

// MetricsCollector receives one observation per logical request, retries included
type MetricsCollector interface {
	RecordRequestDuration(method, path string, statusCode int, duration time.Duration)
	RecordRequestCount(method, path string, statusCode int)
	RecordRequestError(method, path string)
}

type noRetryKey struct{}

// WithoutRetry marks ctx so requests made with it are sent exactly once, whatever the
// client's retry policy. Use it for calls the provider does not deduplicate.
func WithoutRetry(ctx context.Context) context.Context {
	return context.WithValue(ctx, noRetryKey{}, true)
}

func retriesDisabled(ctx context.Context) bool {
	disabled, _ := ctx.Value(noRetryKey{}).(bool)
	return disabled
}

// DefaultRetryConfig retries throttling and upstream failures three times
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:           3,
		InitialInterval:      100 * time.Millisecond,
		MaxInterval:          10 * time.Second,
		Multiplier:           2.0,
		MaxElapsedTime:       30 * time.Second,
		RetryableStatusCodes: []int{408, 429, 500, 502, 503, 504},
	}
}

// NewHTTPClient creates a client with JSON headers, a 30s timeout and the default retry policy
func NewHTTPClient(options ...ClientOption) *HTTPClient {
	client := &HTTPClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		defaultHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
		retryConfig: DefaultRetryConfig(),
		metrics:     &NoopMetricsCollector{},
	}

	for _, option := range options {
		option(client)
	}

	if len(client.middlewares) > 0 {
		transport := client.httpClient.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		// First middleware is outermost
		for i := len(client.middlewares) - 1; i >= 0; i-- {
			transport = client.middlewares[i](transport)
		}
		client.httpClient.Transport = transport
	}

	return client
}

func WithBaseURL(baseURL string) ClientOption {
	return func(c *HTTPClient) {
		c.baseURL = baseURL
	}
}

func WithDefaultHeader(key, value string) ClientOption {
	return func(c *HTTPClient) {
		c.defaultHeaders[key] = value
	}
}

// WithTimeout bounds each attempt. Zero keeps the default.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

func WithRetryConfig(config *RetryConfig) ClientOption {
	return func(c *HTTPClient) {
		c.retryConfig = config
	}
}

func WithMiddleware(middleware Middleware) ClientOption {
	return func(c *HTTPClient) {
		c.middlewares = append(c.middlewares, middleware)
	}
}

func WithMetricsCollector(collector MetricsCollector) ClientOption {
	return func(c *HTTPClient) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

func WithQueryParam(key, value string) RequestOption {
	return func(req *http.Request) {
		q := req.URL.Query()
		q.Add(key, value)
		req.URL.RawQuery = q.Encode()
	}
}

func WithBearerToken(token string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// Get performs an HTTP GET request
func (c *HTTPClient) Get(ctx context.Context, path string, options ...RequestOption) (*http.Response, error) {
	return c.DoRequest(ctx, http.MethodGet, path, nil, options...)
}

// Post performs an HTTP POST request with a JSON body
func (c *HTTPClient) Post(ctx context.Context, path string, body interface{}, options ...RequestOption) (*http.Response, error) {
	return c.DoRequest(ctx, http.MethodPost, path, body, options...)
}

// PostRaw performs an HTTP POST with a pre-encoded body. Use it when a header has to
// be derived from the exact bytes on the wire, such as a request signature.
func (c *HTTPClient) PostRaw(ctx context.Context, path string, body []byte, options ...RequestOption) (*http.Response, error) {
	return c.DoRawRequest(ctx, http.MethodPost, path, body, options...)
}

// DoRequest JSON-encodes body and performs the request
func (c *HTTPClient) DoRequest(ctx context.Context, method, path string, body interface{}, options ...RequestOption) (*http.Response, error) {
	var encoded []byte
	if body != nil {
		var err error
		encoded, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}
	return c.DoRawRequest(ctx, method, path, encoded, options...)
}

// DoRawRequest performs a request with an already encoded body. On a status >= 400 it
// returns the response together with an *HTTPError; the response body stays readable.
func (c *HTTPClient) DoRawRequest(ctx context.Context, method, path string, body []byte, options ...RequestOption) (*http.Response, error) {
	start := time.Now()

	fullURL, err := c.buildURL(path)
	if err != nil {
		return nil, err
	}

	attempt := func() (*http.Response, error) {
		req, err := c.newRequest(ctx, method, fullURL, body, options)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		return c.httpClient.Do(req)
	}

	resp, requestErr := c.execute(ctx, attempt)

	duration := time.Since(start)
	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	c.metrics.RecordRequestDuration(method, path, statusCode, duration)
	c.metrics.RecordRequestCount(method, path, statusCode)

	fields := []zap.Field{
		zap.String("method", method),
		zap.String("url", fullURL),
		zap.Duration("duration", duration),
	}

	if requestErr != nil {
		c.metrics.RecordRequestError(method, path)
		logger.Error("Provider request failed", append(fields, zap.Error(requestErr))...)
		return nil, fmt.Errorf("http request failed: %w", requestErr)
	}

	if resp.StatusCode >= 400 {
		c.metrics.RecordRequestError(method, path)
		bodyBytes := readAndReplaceBody(resp)
		logger.Warn("Provider returned error status",
			append(fields, zap.Int("status", resp.StatusCode), zap.String("body", string(bodyBytes)))...)
		return resp, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        fullURL,
			Method:     method,
			Body:       string(bodyBytes),
		}
	}

	logger.Debug("Provider request succeeded", append(fields, zap.Int("status", resp.StatusCode))...)
	return resp, nil
}

var errRetryableStatus = errors.New("retryable status")

// execute runs attempt under the retry policy. When every attempt ends in a retryable
// status the last response is returned so the caller can surface it as an HTTPError.
func (c *HTTPClient) execute(ctx context.Context, attempt func() (*http.Response, error)) (*http.Response, error) {
	if !c.retryConfig.enabled() || retriesDisabled(ctx) {
		return attempt()
	}

	var last *http.Response
	operation := func() error {
		if last != nil {
			discardBody(last)
			last = nil
		}
		resp, err := attempt()
		if err != nil {
			return err
		}
		last = resp
		if c.retryConfig.retryable(resp.StatusCode) {
			return errRetryableStatus
		}
		return nil
	}

	err := backoff.Retry(operation, c.retryConfig.backOff(ctx))
	switch {
	case err == nil, errors.Is(err, errRetryableStatus):
		return last, nil
	default:
		if last != nil {
			discardBody(last)
		}
		return nil, err
	}
}

func (c *HTTPClient) newRequest(ctx context.Context, method, fullURL string, body []byte, options []RequestOption) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range c.defaultHeaders {
		req.Header.Set(key, value)
	}
	for _, option := range options {
		option(req)
	}
	return req, nil
}

func (c *HTTPClient) buildURL(path string) (string, error) {
	if c.baseURL == "" {
		if _, err := url.ParseRequestURI(path); err != nil {
			return "", fmt.Errorf("invalid path used without base URL: %s, error: %w", path, err)
		}
		return path, nil
	}
	if path == "" {
		return c.baseURL, nil
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimSuffix(c.baseURL, "/") + path, nil
}

func readAndReplaceBody(resp *http.Response) []byte {
	if resp.Body == nil {
		return nil
	}
	bodyBytes, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	return bodyBytes
}

func discardBody(resp *http.Response) {
	if resp.Body != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
}

// ProcessJSONResponse decodes a JSON response into target and closes the body
func (c *HTTPClient) ProcessJSONResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        resp.Request.URL.String(),
			Method:     resp.Request.Method,
			Body:       string(bodyBytes),
		}
	}

	return json.NewDecoder(resp.Body).Decode(target)
}

// NoopMetricsCollector discards observations
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordRequestDuration(string, string, int, time.Duration) {}
func (n *NoopMetricsCollector) RecordRequestCount(string, string, int)                   {}
func (n *NoopMetricsCollector) RecordRequestError(string, string)                        {}

// LoggingMiddleware logs every attempt at debug level, without headers
func LoggingMiddleware() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)
			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("host", req.URL.Host),
				zap.String("path", req.URL.Path),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				logger.Debug("Provider attempt failed", append(fields, zap.Error(err))...)
				return resp, err
			}
			logger.Debug("Provider attempt completed", append(fields, zap.Int("status", resp.StatusCode))...)
			return resp, nil
		})
	}
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
