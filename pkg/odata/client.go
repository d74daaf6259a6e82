package odata

import (
	"encoding/json"
	"strings"

	"github.com/ternsoft/go-dynamics/pkg/endpoint"
	"github.com/ternsoft/go-dynamics/pkg/transport"
)

// Client carries the transport and endpoint shared by the typed services of
// one OData endpoint.
type Client struct {
	transport *transport.Client
	endpoint  *endpoint.Endpoint
}

// NewClient creates an OData client for one endpoint.
func NewClient(tr *transport.Client, ep *endpoint.Endpoint) *Client {
	return &Client{transport: tr, endpoint: ep}
}

func (c *Client) url(path string) string {
	return c.endpoint.BaseURL() + path
}

// failureDetail distills a failure response body into something readable.
// NAV wraps errors as {"error":{"code":...,"message":...}}; anything else
// is passed through trimmed and capped.
func failureDetail(body []byte) string {
	var wrapper struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &wrapper); err == nil && wrapper.Error.Message != "" {
		return wrapper.Error.Message
	}

	s := strings.TrimSpace(string(body))
	if len(s) > 512 {
		s = s[:512]
	}
	return s
}
