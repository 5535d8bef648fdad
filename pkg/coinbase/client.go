package coinbase

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

	"github.com/aaravmahajanofficial/turbokart-storefront/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL    = "https://api.commerce.coinbase.com"
	DefaultAPIVersion = "2018-03-22"
	SignatureHeader   = "X-CC-Webhook-Signature"

	apiKeyHeader  = "X-CC-Api-Key"
	versionHeader = "X-CC-Version"
)

var ErrMissingAPIKey = errors.New("coinbase commerce API key is not configured")

// defines the charge operations the storefront needs from the provider.
type Client interface {
	CreateCharge(ctx context.Context, req *models.ChargeRequest) (*models.Charge, error)
	GetCharge(ctx context.Context, id string) (*models.Charge, error)
}

type Config struct {
	APIKey     string
	BaseURL    string
	APIVersion string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// APIError is a non-2xx answer from the provider.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("coinbase commerce: status %d: %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("coinbase commerce: status %d: %s: %s", e.StatusCode, e.Type, e.Message)
}

type commerceClient struct {
	apiKey     string
	baseURL    string
	apiVersion string
	httpClient *http.Client
}

// NewClient builds the provider client once at startup. An empty API key is
// rejected here so no request is ever sent unauthenticated.
func NewClient(cfg Config) (Client, error) {

	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid coinbase commerce base URL: %w", err)
	}

	version := cfg.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	return &commerceClient{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		apiVersion: version,
		httpClient: httpClient,
	}, nil
}

type envelope struct {
	Data  *models.Charge `json:"data"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateCharge implements Client.
func (c *commerceClient) CreateCharge(ctx context.Context, req *models.ChargeRequest) (*models.Charge, error) {

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode charge request: %w", err)
	}

	return c.do(ctx, http.MethodPost, "/charges", body)
}

// GetCharge implements Client.
func (c *commerceClient) GetCharge(ctx context.Context, id string) (*models.Charge, error) {

	if strings.TrimSpace(id) == "" {
		return nil, errors.New("charge id is required")
	}

	return c.do(ctx, http.MethodGet, "/charges/"+url.PathEscape(id), nil)
}

func (c *commerceClient) do(ctx context.Context, method, path string, body []byte) (*models.Charge, error) {

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	httpReq.Header.Set(apiKeyHeader, c.apiKey)
	httpReq.Header.Set(versionHeader, c.apiVersion)
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("coinbase commerce request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read coinbase commerce response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if decodeErr == nil && env.Error != nil {
			apiErr.Type = env.Error.Type
			apiErr.Message = env.Error.Message
		}
		return nil, apiErr
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode coinbase commerce response: %w", decodeErr)
	}

	if env.Data == nil {
		return nil, errors.New("coinbase commerce response has no charge data")
	}

	return env.Data, nil
}
