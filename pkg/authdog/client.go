package authdog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/authdog/authdog-go-sdk/pkg/httpclient"
)

const (
	userInfoPath = "/v1/userinfo"

	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerUserAgent     = "User-Agent"
	contentTypeJSON     = "application/json"
)

// Client calls the Authdog API. It holds one transport from construction until
// Close; concurrent calls share it and rely on its own goroutine safety.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	transport  httpclient.Client
	log        Logger
	metrics    *Metrics
	closed     atomic.Bool
}

// NewClient builds a Client for baseURL. One trailing slash is stripped from
// baseURL. No network I/O happens here.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("%w: base url is empty", ErrInvalidConfig)
	}

	c := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		userAgent: DefaultUserAgent(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.log = ensureLogger(c.log)

	if c.transport == nil {
		c.transport = httpclient.NewRestyClient(httpclient.Options{
			BaseURL:    c.baseURL,
			Headers:    c.DefaultHeaders(),
			Timeout:    c.timeout,
			HTTPClient: c.httpClient,
		})
	}
	return c, nil
}

// BaseURL returns the normalized base address.
func (c *Client) BaseURL() string { return c.baseURL }

// DefaultHeaders returns the headers sent with every request unless a call
// overrides them. Authorization is present only when an API key was set.
func (c *Client) DefaultHeaders() map[string]string {
	headers := map[string]string{
		headerContentType: contentTypeJSON,
		headerUserAgent:   c.userAgent,
	}
	if c.apiKey != "" {
		headers[headerAuthorization] = bearer(c.apiKey)
	}
	return headers
}

// GetUserInfo fetches the user behind accessToken. The token is sent as the
// request's bearer credential regardless of any API key and is not validated
// locally. A rejected token yields *AuthenticationError; any other failure
// yields *APIError.
func (c *Client) GetUserInfo(ctx context.Context, accessToken string) (Payload, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	headers := c.DefaultHeaders()
	headers[headerAuthorization] = bearer(accessToken)

	start := time.Now()
	resp, err := c.transport.Get(ctx, userInfoPath, headers)
	if err != nil {
		c.finish(OutcomeTransportError, 0, start, err)
		return nil, &APIError{Message: requestFailedPrefix + err.Error(), Err: err}
	}

	status := resp.StatusCode()
	payload, err := classifyResponse(status, resp.Body())
	c.finish(outcomeOf(err), status, start, err)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// GetUserInfoResponse is GetUserInfo decoded into UserInfoResponse.
func (c *Client) GetUserInfoResponse(ctx context.Context, accessToken string) (*UserInfoResponse, error) {
	payload, err := c.GetUserInfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	var out UserInfoResponse
	if err := payload.Decode(&out); err != nil {
		return nil, &APIError{Message: invalidResponsePrefix + err.Error(), Err: err}
	}
	return &out, nil
}

// Close releases the transport. Subsequent calls are no-ops.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	return c.transport.Close()
}

// WithClient builds a Client, passes it to fn and closes it exactly once on
// every exit path, including a panic in fn. A close error is reported only
// when fn itself succeeded.
func WithClient(baseURL string, fn func(*Client) error, opts ...Option) (err error) {
	c, err := NewClient(baseURL, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(c)
}

// classifyResponse maps a received response onto the result or error kinds.
func classifyResponse(status int, body []byte) (Payload, error) {
	if status == http.StatusUnauthorized {
		return nil, &AuthenticationError{Message: MessageUnauthorized}
	}
	if status == http.StatusInternalServerError {
		if err := knownServerError(body); err != nil {
			return nil, err
		}
	}
	if status >= http.StatusBadRequest {
		return nil, &APIError{
			Message:    fmt.Sprintf("HTTP error %d: %s", status, body),
			StatusCode: status,
			Body:       string(body),
		}
	}

	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &APIError{Message: invalidResponsePrefix + err.Error(), StatusCode: status, Body: string(body), Err: err}
	}
	if payload == nil {
		return nil, &APIError{Message: invalidResponsePrefix + "expected a JSON object", StatusCode: status, Body: string(body)}
	}
	return payload, nil
}

// knownServerError recognizes the structured 500 bodies the API documents.
// Anything else returns nil so the caller falls back to the generic error.
func knownServerError(body []byte) error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return nil
	}
	switch eb.Error {
	case MessageGraphQLFailed, MessageFetchUserFailed:
		return &APIError{Message: eb.Error, StatusCode: http.StatusInternalServerError, Body: string(body)}
	default:
		return nil
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case IsAuthenticationError(err):
		return OutcomeUnauthorized
	default:
		return OutcomeAPIError
	}
}

func (c *Client) finish(outcome string, status int, start time.Time, err error) {
	elapsed := time.Since(start)
	c.metrics.observe(outcome, elapsed)

	fields := map[string]any{
		"path":        userInfoPath,
		"outcome":     outcome,
		"status":      status,
		"duration_ms": elapsed.Milliseconds(),
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	c.log.DebugObj("userinfo request finished", "request", fields)
}

func bearer(token string) string {
	return "Bearer " + token
}
