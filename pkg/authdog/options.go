package authdog

import (
	"net/http"
	"time"

	"github.com/authdog/authdog-go-sdk/pkg/httpclient"
)

// Option configures a Client at construction time.
type Option func(*Client)

// WithAPIKey sets the static credential sent as a default bearer
// Authorization header. Per-call tokens take precedence over it.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithTimeout bounds each request made by the default transport. Without it
// no timeout is applied.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets the net/http client the default transport sends through.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTransport replaces the default transport entirely. The transport must
// already be bound to the base URL; the default headers are passed on every
// request, see Client.DefaultHeaders.
func WithTransport(t httpclient.Client) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithUserAgent overrides the product identifier sent as User-Agent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger routes request outcomes to log at debug level.
func WithLogger(log Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithMetrics records request outcomes and latency on m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}
