package mollie

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wekeepgrowing/mollie-gateway/internal/domain/provider"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is Mollie's v2 REST root.
	DefaultBaseURL = "https://api.mollie.com/v2"
	defaultTimeout = 30 * time.Second
)

// MollieProvider calls the Mollie REST API with a bearer API key.
type MollieProvider struct {
	apiKey    string
	baseURL   string
	userAgent string
	client    *http.Client
	logger    *zap.Logger
}

// Option configures a MollieProvider.
type Option func(*MollieProvider)

// WithBaseURL overrides the API root.
func WithBaseURL(baseURL string) Option {
	return func(p *MollieProvider) {
		if baseURL != "" {
			p.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the underlying client, e.g. in tests.
func WithHTTPClient(client *http.Client) Option {
	return func(p *MollieProvider) {
		if client != nil {
			p.client = client
		}
	}
}

// WithTimeout sets the client timeout. Zero keeps the default.
func WithTimeout(timeout time.Duration) Option {
	return func(p *MollieProvider) {
		if timeout > 0 {
			p.client.Timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(p *MollieProvider) {
		p.userAgent = ua
	}
}

// NewMollieProvider creates a new Mollie provider
func NewMollieProvider(apiKey string, logger *zap.Logger, opts ...Option) *MollieProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &MollieProvider{
		apiKey:    apiKey,
		baseURL:   DefaultBaseURL,
		userAgent: "mollie-gateway",
		client:    &http.Client{Timeout: defaultTimeout},
		logger:    logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetProviderName returns the provider name
func (p *MollieProvider) GetProviderName() string {
	return string(provider.ProviderTypeMollie)
}

// errorDocument is Mollie's error response body.
type errorDocument struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Field  string `json:"field,omitempty"`
}

// Do sends one request to Mollie.
func (p *MollieProvider) Do(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	url := p.baseURL + req.Path

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, &provider.ProviderError{
			Code:    provider.CodeRequestError,
			Message: "Failed to create request",
			Details: err.Error(),
			Err:     err,
		}
	}

	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if p.userAgent != "" {
		httpReq.Header.Set("User-Agent", p.userAgent)
	}

	p.logger.Debug("MollieProvider: Calling Mollie API",
		zap.String("method", req.Method),
		zap.String("path", req.Path))

	start := time.Now()
	resp, err := p.client.Do(httpReq)
	if err != nil {
		p.logger.Warn("MollieProvider: Request failed",
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.Error(err))
		return nil, &provider.ProviderError{
			Code:    provider.CodeAPIError,
			Message: "Mollie API request failed",
			Details: err.Error(),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &provider.ProviderError{
			Code:       provider.CodeResponseError,
			StatusCode: resp.StatusCode,
			Message:    "Failed to read response",
			Details:    err.Error(),
			Err:        err,
		}
	}

	p.logger.Debug("MollieProvider: Received response",
		zap.String("method", req.Method),
		zap.String("path", req.Path),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, upstreamError(resp, respBody)
	}

	return &provider.Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}

// upstreamError builds the error for a non-2xx response. Mollie's detail
// is preferred, then its title, then the HTTP status text.
func upstreamError(resp *http.Response, body []byte) *provider.ProviderError {
	var doc errorDocument
	_ = json.Unmarshal(body, &doc)

	message := doc.Detail
	if message == "" {
		message = doc.Title
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	if message == "" {
		message = fmt.Sprintf("HTTP %d", resp.StatusCode)
	}

	details := ""
	if doc.Field != "" {
		details = "field: " + doc.Field
	}

	return &provider.ProviderError{
		Code:       provider.CodeUpstreamError,
		StatusCode: resp.StatusCode,
		Message:    message,
		Details:    details,
	}
}
