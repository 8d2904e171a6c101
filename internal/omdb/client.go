// internal/omdb/client.go
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.omdbapi.com"
const defaultTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when OMDb has no record for an identifier.
	ErrNotFound = errors.New("movie not found")
	// ErrUpstream is returned when OMDb is unreachable or answers with a non-200 status.
	ErrUpstream = errors.New("omdb request failed")
	// ErrInvalidInput is returned for an empty search query.
	ErrInvalidInput = errors.New("invalid input")
)

// Client is an OMDb API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithTimeout bounds every upstream call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new OMDb client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search looks up movies by free-text title.
// A query OMDb has no results for yields an empty slice, not an error.
func (c *Client) Search(ctx context.Context, query string) ([]Summary, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", ErrInvalidInput)
	}

	params := url.Values{}
	params.Set("s", query)

	var resp searchResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, err
	}

	if resp.Response != "True" || resp.Search == nil {
		return []Summary{}, nil
	}
	return resp.Search, nil
}

// GetMovie fetches the full-plot record for an IMDb identifier.
func (c *Client) GetMovie(ctx context.Context, imdbID string) (Document, error) {
	params := url.Values{}
	params.Set("i", imdbID)
	params.Set("plot", "full")

	var doc Document
	if err := c.get(ctx, params, &doc); err != nil {
		return nil, err
	}

	if doc == nil {
		return nil, fmt.Errorf("%w: empty response", ErrUpstream)
	}
	if !doc.Found() {
		return nil, ErrNotFound
	}
	return doc, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	params.Set("apikey", c.apiKey)
	reqURL := c.baseURL + "/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: execute request: %w", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrUpstream, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrUpstream, err)
	}
	return nil
}
