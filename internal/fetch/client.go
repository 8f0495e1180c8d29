// Package fetch retrieves the transfer list from the remote endpoint.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Veraticus/transfers/internal/model"
)

const (
	// DefaultEndpoint is the transfer list served by the upstream API.
	DefaultEndpoint = "https://recruitment-test.flip.id/frontend-test"
	// DefaultTimeout bounds a single request.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxBodyBytes caps how much of a response body is read.
	DefaultMaxBodyBytes int64 = 10 << 20

	errorBodyLimit = 512
)

// Client implements service.TransactionFetcher over HTTP.
type Client struct {
	httpClient   *http.Client
	endpoint     string
	maxBodyBytes int64
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout. Zero leaves the transport default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithMaxBodyBytes caps the response size.
func WithMaxBodyBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBodyBytes = n
		}
	}
}

// NewClient creates a client for endpoint. An empty endpoint selects
// DefaultEndpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	c := &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		maxBodyBytes: DefaultMaxBodyBytes,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Endpoint returns the URL the client fetches.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Fetch issues one GET against the endpoint and decodes the transfer list.
// Errors are *NetworkError, *HTTPStatusError or *ParseError.
func (c *Client) Fetch(ctx context.Context) ([]model.Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("failed to create request: %w", err)}
	}

	start := time.Now()
	slog.Debug("Fetching transactions", "endpoint", c.endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("Failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, &HTTPStatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("failed to read response: %w", err)}
	}
	if int64(len(body)) > c.maxBodyBytes {
		return nil, &ParseError{Err: fmt.Errorf("response exceeds %d bytes", c.maxBodyBytes)}
	}

	transactions, err := decodeTransactions(body)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	slog.Debug("Fetched transactions",
		"count", len(transactions),
		"status", resp.StatusCode,
		"duration", time.Since(start))

	return transactions, nil
}
