package httpclient

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrClosed is returned by Get once the transport has been closed.
var ErrClosed = errors.New("httpclient: transport closed")

// Options configures a RestyClient.
type Options struct {
	BaseURL string
	Headers map[string]string
	// Timeout bounds a whole request. Zero leaves the underlying client's value.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client *resty.Client
	closed atomic.Bool
}

// NewRestyClient creates a RestyClient bound to opts.BaseURL with opts.Headers
// sent on every request.
func NewRestyClient(opts Options) *RestyClient {
	return &RestyClient{client: newRestyBaseClient(opts)}
}

// newRestyBaseClient creates a new resty.Client from opts.
func newRestyBaseClient(opts Options) *resty.Client {
	var c *resty.Client
	if opts.HTTPClient != nil {
		c = resty.NewWithClient(opts.HTTPClient)
	} else {
		c = resty.New()
	}
	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}
	if opts.BaseURL != "" {
		c.SetBaseURL(opts.BaseURL)
	}
	if len(opts.Headers) > 0 {
		c.SetHeaders(opts.Headers)
	}
	return c
}

// Get performs an HTTP GET request for path with headers overriding the defaults.
func (r *RestyClient) Get(ctx context.Context, path string, headers map[string]string) (Response, error) {
	if r.closed.Load() {
		return nil, ErrClosed
	}
	req := r.client.R().SetContext(ctx)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	resp, err := req.Get(path)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// Close releases idle connections and rejects further requests. Calling it
// more than once is a no-op.
func (r *RestyClient) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	r.client.GetClient().CloseIdleConnections()
	return nil
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }
