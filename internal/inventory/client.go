// Package inventory reads pre-rendered wiki markup from the hostinfo inventory service.
package inventory

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hostinfo/hostwiki/pkg/log"
)

const (
	DefaultBaseURL = "http://hostinfo"
	DefaultTimeout = 30 * time.Second
)

// Fetcher returns the markup served at an inventory path.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (string, error)
	// URL returns the absolute URL a path is fetched from.
	URL(path string) string
}

// Client is an HTTP Fetcher. It is safe for concurrent use.
type Client struct {
	baseURL    string
	base       *url.URL
	baseErr    error
	httpClient *http.Client
	logger     log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the overall timeout of one fetch.
func WithTimeout(timeout time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(client *Client) {
		client.httpClient = httpClient
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger log.Logger) Option {
	return func(client *Client) {
		client.logger = logger
	}
}

// NewClient returns a Client reading from baseURL, e.g. "http://hostinfo" or "http://localhost:8000/hostinfo".
func NewClient(baseURL string, opts ...Option) *Client {
	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = DefaultTimeout

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     log.Default(),
	}

	client.base, client.baseErr = url.Parse(client.baseURL)

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// URL implements Fetcher. The path is not escaped, so the result reads the way the tag was written.
func (client *Client) URL(path string) string {
	return client.baseURL + path
}

// requestURL appends path to the base URL path. Characters such as `%`, `#` and `?` in a filter
// are escaped instead of starting an escape, a fragment or a query.
func (client *Client) requestURL(path string) (*url.URL, error) {
	if client.baseErr != nil {
		return nil, client.baseErr
	}

	reqURL := *client.base
	reqURL.Path = client.base.Path + path
	reqURL.RawPath = ""

	return &reqURL, nil
}

// Fetch implements Fetcher. Any failure, including an empty response, is reported as an UnreachableError.
func (client *Client) Fetch(ctx context.Context, path string) (string, error) {
	rawURL := client.URL(path)
	logger := client.logger.WithField(log.FieldKeyURL, rawURL)

	reqURL, err := client.requestURL(path)
	if err != nil {
		return "", NewUnreachableError(rawURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return "", NewUnreachableError(rawURL, err)
	}

	start := time.Now()

	resp, err := client.httpClient.Do(req)
	if err != nil {
		logger.Debugf("Inventory request failed: %v", err)
		return "", NewUnreachableError(rawURL, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	logger.WithField(log.FieldKeyStatus, resp.StatusCode).Debugf("Inventory responded in %s", time.Since(start))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", NewUnreachableError(rawURL, StatusError{Status: resp.Status})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", NewUnreachableError(rawURL, err)
	}

	if len(body) == 0 {
		return "", NewUnreachableError(rawURL, ErrEmptyResponse)
	}

	return string(body), nil
}
