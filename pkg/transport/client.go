package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ternsoft/go-dynamics/pkg/endpoint"
)

// TLS version bounds
const (
	TLS12 = tls.VersionTLS12
	TLS13 = tls.VersionTLS13
)

// Config contains the HTTP client configuration.
type Config struct {
	// HTTPClient, when set, is used as-is and the TLS/timeout fields below
	// are ignored. This is how callers plug in a named or instrumented
	// client of their own.
	HTTPClient *http.Client

	MinTLSVersion   uint16
	MaxTLSVersion   uint16
	Timeout         time.Duration
	IdleConnTimeout time.Duration
	UserAgent       string
}

// DefaultConfig returns the default transport configuration.
func DefaultConfig() *Config {
	return &Config{
		MinTLSVersion:   TLS12,
		MaxTLSVersion:   TLS13,
		Timeout:         30 * time.Second,
		IdleConnTimeout: 90 * time.Second,
		UserAgent:       "go-dynamics/1.0",
	}
}

// Client dispatches HTTP requests for the protocol clients.
type Client struct {
	client    *http.Client
	creds     endpoint.Credentials
	userAgent string
}

// Response is the raw outcome of a dispatched request. The protocol clients
// decide which statuses and bodies constitute failures.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// StatusError reports a non-success HTTP status. Detail carries whatever
// failure text could be extracted from the response body.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Detail)
}

// NewClient creates a transport client presenting the given credentials.
func NewClient(config *Config, creds endpoint.Credentials) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					MinVersion: config.MinTLSVersion,
					MaxVersion: config.MaxTLSVersion,
				},
				IdleConnTimeout:     config.IdleConnTimeout,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
			Timeout: config.Timeout,
		}
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = "go-dynamics/1.0"
	}

	return &Client{
		client:    client,
		creds:     creds,
		userAgent: userAgent,
	}
}

// Do dispatches one request and reads the full response body. A nil error
// means the round trip completed; it says nothing about the status code.
// Network failures are wrapped and returned, never swallowed.
func (c *Client) Do(ctx context.Context, method, url string, header http.Header, body []byte) (*Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("client-request-id", uuid.New().String())
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       responseBody,
	}, nil
}

// authorize applies the endpoint credentials to the request. Ambient
// credentials add nothing; authentication then happens outside the library.
func (c *Client) authorize(req *http.Request) {
	switch c.creds.Kind {
	case endpoint.AuthBasic:
		req.SetBasicAuth(c.creds.Username, c.creds.Password)
	case endpoint.AuthBearer:
		req.Header.Set("Authorization", "Bearer "+c.creds.Token)
	}
}

// Success reports whether the status code is in the 2xx range.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
