package authdog

import (
	"errors"
	"fmt"
)

// ErrAuthdog matches every error produced by this package under errors.Is.
var ErrAuthdog = errors.New("authdog")

// ErrInvalidConfig is returned by NewClient for unusable construction input.
var ErrInvalidConfig = fmt.Errorf("%w: invalid configuration", ErrAuthdog)

// Messages carried by the errors GetUserInfo returns for known server replies.
const (
	MessageUnauthorized    = "Unauthorized - invalid or expired token"
	MessageGraphQLFailed   = "GraphQL query failed"
	MessageFetchUserFailed = "Failed to fetch user info"
	requestFailedPrefix    = "Request failed: "
	invalidResponsePrefix  = "Invalid response body: "
)

// AuthenticationError reports that the access token was rejected.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// Is makes AuthenticationError match ErrAuthdog.
func (e *AuthenticationError) Is(target error) bool { return target == ErrAuthdog }

// APIError covers every failure other than a rejected token: transport
// errors, unexpected status codes and known server-side error bodies.
type APIError struct {
	Message string
	// StatusCode is zero when no response was received.
	StatusCode int
	// Body is the raw response body, if any.
	Body string
	// Err is the transport or decoding error behind the failure, if any.
	Err error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.Err }

// Is makes APIError match ErrAuthdog.
func (e *APIError) Is(target error) bool { return target == ErrAuthdog }

// IsAuthenticationError reports whether err is or wraps an *AuthenticationError.
func IsAuthenticationError(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAPIError reports whether err is or wraps an *APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsAuthdogError reports whether err originated in this package.
func IsAuthdogError(err error) bool {
	return errors.Is(err, ErrAuthdog)
}
