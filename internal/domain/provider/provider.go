package provider

import (
	"context"
	"fmt"
)

// Provider forwards a single request to a payment provider's REST API.
type Provider interface {
	// Do performs exactly one call. Non-2xx responses and transport
	// failures are returned as *ProviderError.
	Do(ctx context.Context, req *Request) (*Response, error)

	// GetProviderName returns the provider name
	GetProviderName() string
}

// Request is a provider-agnostic outbound call.
type Request struct {
	Method string
	Path   string // path plus optional query, relative to the provider base URL
	Body   []byte // nil means no body
}

// Response is a successful (2xx) provider response.
type Response struct {
	StatusCode int
	Body       []byte
}

// ProviderType identifies a payment provider
type ProviderType string

const (
	ProviderTypeMollie ProviderType = "mollie"
)

// Provider error codes
const (
	CodeRequestError  = "REQUEST_ERROR"
	CodeAPIError      = "API_ERROR"
	CodeResponseError = "RESPONSE_ERROR"
	CodeUpstreamError = "UPSTREAM_ERROR"
)

// ProviderError represents a provider-specific error
type ProviderError struct {
	Code       string `json:"code"`
	StatusCode int    `json:"status_code,omitempty"` // 0 when no response was received
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	Err        error  `json:"-"`
}

func (e *ProviderError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
