// Package client calls a running mollie-gateway over HTTP. Every method
// returns the gateway's envelope; the error return is reserved for local
// failures such as an unreachable gateway.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wekeepgrowing/mollie-gateway/pkg/mollie"
)

// DefaultPrefix is where the gateway mounts its Mollie routes.
const DefaultPrefix = "/api/mollie"

type Client struct {
	httpClient *http.Client
	baseURL    string
	prefix     string
	token      string

	Customers     *CustomersService
	Mandates      *MandatesService
	Subscriptions *SubscriptionsService
}

// Option configures a Client.
type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithBearerToken sends the token to gateways that require a JWT.
func WithBearerToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func WithPrefix(prefix string) Option {
	return func(c *Client) {
		c.prefix = "/" + strings.Trim(prefix, "/")
	}
}

// New creates a client for the gateway at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		prefix:     DefaultPrefix,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Customers = &CustomersService{c: c}
	c.Mandates = &MandatesService{c: c}
	c.Subscriptions = &SubscriptionsService{c: c}
	return c
}

// ListOptions are the pagination parameters of list operations.
type ListOptions struct {
	Limit int
	From  string
}

func (o *ListOptions) encode() string {
	if o == nil {
		return ""
	}
	q := url.Values{}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.From != "" {
		q.Set("from", o.From)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// do sends the request and decodes the envelope whatever the HTTP status.
func do[T any](ctx context.Context, c *Client, method, path string, body any) (mollie.Envelope[T], error) {
	var env mollie.Envelope[T]

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return env, fmt.Errorf("encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+c.prefix+path, bodyReader)
	if err != nil {
		return env, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return env, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return env, fmt.Errorf("read response: %w", err)
	}

	if err := json.Unmarshal(respBody, &env); err != nil {
		// Not an envelope, e.g. a proxy in front of the gateway answered.
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return mollie.Fail[T](resp.StatusCode, http.StatusText(resp.StatusCode), strings.TrimSpace(string(respBody))), nil
		}
		return env, fmt.Errorf("decode envelope: %w", err)
	}
	return env, nil
}

func escape(id string) string {
	return url.PathEscape(id)
}
