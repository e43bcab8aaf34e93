package graph

import (
	"errors"
	"fmt"
)

// Error is an application-level failure reported by the API inside an
// otherwise well-formed JSON body under the "error" key.
type Error struct {
	Type    string `json:"type"    yaml:"type"`
	Message string `json:"message" yaml:"message"`
	Code    int    `json:"code"    yaml:"code"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Type + " - " + e.Message
}

// TransportError wraps a failure to complete the HTTP round trip.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError reports a body or value that could not be decoded.
type ParseError struct {
	// Key is the object key being normalized, empty for whole-body failures.
	Key string
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("parsing response: %v", e.Err)
	}

	return fmt.Sprintf("parsing response key %q: %v", e.Key, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// StatusError is returned for non-2xx responses when Config.StrictStatus is set.
type StatusError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, truncate(e.Body, maxStatusBody))
}

const maxStatusBody = 256

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}

	return string(body[:limit]) + "..."
}

// Common error types.
const (
	ErrorTypeOAuth = "OAuthException"
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrInsecureOnlyInDev   = errors.New("insecure TLS is only allowed in development environments")
	ErrMissingAccessToken  = errors.New("no access token in token response")
	ErrInvalidJSON         = errors.New("invalid JSON")
	ErrUnsupportedTimeType = errors.New("time value must be a string")
)

// IsOAuthError checks if the error is an OAuthException reported by the API.
func IsOAuthError(err error) bool {
	graphErr := &Error{}
	if errors.As(err, &graphErr) {
		return graphErr.Type == ErrorTypeOAuth
	}

	return false
}

// IsTransportError checks if the error came from the HTTP round trip.
func IsTransportError(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}
