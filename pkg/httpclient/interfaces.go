package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
// Paths are resolved against the base URL the implementation was built with and
// headers are layered over its default header set.
type Client interface {
	Get(ctx context.Context, path string, headers map[string]string) (Response, error)
	Close() error
}
