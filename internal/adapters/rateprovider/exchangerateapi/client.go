// Package exchangerateapi implements the rate provider backed by ExchangeRate-API v6.
package exchangerateapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/core/ports/external"
)

const (
	providerName = "exchangerate-api"

	// DefaultBaseURL is the v6 endpoint; requests go to {base}/{key}/latest/{BASE}.
	DefaultBaseURL = "https://v6.exchangerate-api.com/v6"

	defaultTimeout = 15 * time.Second
)

// Client is the ExchangeRate-API provider.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default client (15s timeout).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.client = c
	}
}

// New creates a client. An empty apiKey is accepted here and reported on the first fetch.
func New(baseURL, apiKey string, options ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

var _ external.RateProvider = (*Client)(nil)

func (c *Client) Name() string { return providerName }

// latestResponse is the v6 "latest" payload. ConversionRates stays nil when the key is absent.
type latestResponse struct {
	Result             string             `json:"result"`
	ErrorType          string             `json:"error-type"`
	BaseCode           string             `json:"base_code"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
	ConversionRates    map[string]float64 `json:"conversion_rates"`
}

// FetchLatestRates fetches the latest snapshot for baseCode.
func (c *Client) FetchLatestRates(ctx context.Context, baseCode string) (*domain.RateSnapshot, error) {
	if c.apiKey == "" {
		return nil, apperrors.NewMissingConfigurationError("EXCHANGE_RATE_API_KEY is not configured")
	}

	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, strings.ToUpper(baseCode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to build provider request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("provider request failed", redactKey(err, c.apiKey))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to read provider response", err)
	}

	var payload latestResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		if resp.StatusCode >= 400 {
			return nil, apperrors.NewUpstreamError(fmt.Sprintf("provider returned HTTP %d", resp.StatusCode), nil)
		}
		return nil, apperrors.NewUpstreamError("provider returned malformed JSON", err)
	}
	// The provider reports key and quota problems with a 4xx status and a JSON error body.
	if resp.StatusCode >= 400 && payload.Result == "" {
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("provider returned HTTP %d", resp.StatusCode), nil)
	}

	snapshot := &domain.RateSnapshot{
		Result:          payload.Result,
		ErrorType:       payload.ErrorType,
		BaseCode:        payload.BaseCode,
		ConversionRates: payload.ConversionRates,
	}
	if payload.TimeLastUpdateUnix > 0 {
		snapshot.ProviderTime = time.Unix(payload.TimeLastUpdateUnix, 0).UTC()
	}
	return snapshot, nil
}

// redactKey keeps the API key, which is part of the URL, out of error messages.
func redactKey(err error, key string) error {
	return fmt.Errorf("%s", strings.ReplaceAll(err.Error(), key, "***"))
}
