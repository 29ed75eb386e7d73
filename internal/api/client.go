package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://finnhub.io/api/v1"

// TokenHeader carries the API token. The token never goes into the URL, which
// transport errors echo back.
const TokenHeader = "X-Finnhub-Token"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=api_test -destination=mock_http_client_test.go -source=client.go
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues the raw stock list and quote requests. It never inspects the
// response status; the caller owns the response and must close its body.
type Client struct {
	baseURL    string
	exchange   string
	httpClient HTTPClient
	header     http.Header
}

type Option func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader adds headers sent with each request.
func WithHeader(header http.Header) Option {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// WithExchange selects the exchange whose listing is requested.
func WithExchange(exchange string) Option {
	return func(c *Client) {
		c.exchange = exchange
	}
}

func NewClient(token string, options ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		exchange:   "US",
		httpClient: &http.Client{Timeout: 30 * time.Second},
		header:     http.Header{},
	}
	if token != "" {
		c.header.Set(TokenHeader, token)
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// RequestStockListContent requests every symbol listed on the configured exchange.
func (c *Client) RequestStockListContent(ctx context.Context) (*http.Response, error) {
	return c.get(ctx, "/stock/symbol", url.Values{"exchange": {c.exchange}})
}

// RequestStockQuote requests the current quote for ticker.
func (c *Client) RequestStockQuote(ctx context.Context, ticker string) (*http.Response, error) {
	if ticker == "" {
		return nil, fmt.Errorf("empty ticker")
	}
	return c.get(ctx, "/quote", url.Values{"symbol": {ticker}})
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header = c.header.Clone()
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = c.baseURL + path
		}
		return nil, fmt.Errorf("perform request %s: %w", path, err)
	}
	return resp, nil
}
