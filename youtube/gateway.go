// Package youtube turns a YouTube channel URL into the channel's complete
// list of uploaded video IDs using the Data API v3, and fetches transcript
// text for individual videos.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultAPIBaseURL = "https://youtube.googleapis.com/youtube/v3"
	defaultAPITimeout = 5 * time.Second
)

// Gateway issues single-attempt GET requests against the YouTube Data API
// and decodes the JSON responses. Each request is bounded by a fixed
// timeout; there are no retries and no backoff.
type Gateway struct {
	client  *http.Client
	baseURL string
	apiKey  string
	timeout time.Duration
	logger  *slog.Logger
}

// GatewayConfig configures the API gateway.
type GatewayConfig struct {
	// APIKey is the Data API key attached to every request.
	APIKey string
	// BaseURL overrides the Data API base URL. Defaults to the public
	// youtube.googleapis.com endpoint; tests point it at a local server.
	BaseURL string
	// Timeout bounds each request. Defaults to 5 seconds.
	Timeout time.Duration
	// Logger receives per-request debug records. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewGateway creates an API gateway for the given configuration.
// The API key is captured once here rather than read from the environment
// per call, so tests can construct gateways deterministically.
func NewGateway(cfg GatewayConfig) *Gateway {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultAPITimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		client:  &http.Client{},
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		timeout: timeout,
		logger:  logger,
	}
}

// Request performs a GET against the named endpoint with the given query
// parameters and returns the decoded JSON document. The API key is attached
// automatically. No schema validation happens here; callers inspect the
// document and report *APIError with FailureSchema themselves.
func (g *Gateway) Request(ctx context.Context, endpoint string, params url.Values) (map[string]any, error) {
	q := url.Values{}
	for k, vs := range params {
		q[k] = vs
	}
	q.Set("key", g.apiKey)

	reqURL := g.baseURL + "/" + endpoint + "?" + q.Encode()

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &APIError{Kind: FailureConnection, Err: err}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &APIError{Kind: FailureTimeout, Err: err}
		}
		return nil, &APIError{Kind: FailureConnection, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &APIError{Kind: FailureTimeout, Err: err}
		}
		return nil, &APIError{Kind: FailureConnection, Err: err}
	}

	g.logger.Debug("api request", "endpoint", endpoint, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Kind: FailureHTTPStatus, StatusCode: resp.StatusCode}
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &APIError{Kind: FailureDecode, RawBody: string(body), Err: err}
	}

	return doc, nil
}
