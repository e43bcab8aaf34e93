package graph

import (
	"context"
	"crypto/tls"
	"net/http"
)

// Default endpoint settings.
const (
	DefaultHost = "graph.facebook.com"
	DefaultPort = 443
)

// Reader provides the read-side operations of the graph API.
type Reader interface {
	// Fetch issues a GET for path with opts encoded into the query string.
	Fetch(ctx context.Context, path string, opts Options) (any, error)
	// Search fetches "search" with q set to query.
	Search(ctx context.Context, query string, opts Options) (any, error)
}

// Writer provides the write-side operations of the graph API.
type Writer interface {
	// Submit issues a POST for path with opts encoded into the form body.
	// A literal "true" body yields true.
	Submit(ctx context.Context, path string, opts Options) (any, error)
	// Remove is Submit with method=delete added to opts.
	Remove(ctx context.Context, path string, opts Options) (any, error)
}

// Client is the full graph API surface.
type Client interface {
	Reader
	Writer
}

// OAuthClient provides the authorization code flow helpers.
type OAuthClient interface {
	// AuthorizationURL builds the URL users are redirected to for consent.
	// It performs no network call.
	AuthorizationURL(clientID, redirectURI string, opts Options) string
	// ExchangeAuthorizationCode trades a code for an access token.
	ExchangeAuthorizationCode(ctx context.Context, clientID, clientSecret, redirectURI, code string) (string, error)
}

// API is the client returned by hypergraph.New.
type API interface {
	Client
	OAuthClient
	// Bind returns a Client that sends token as access_token on every call
	// unless the call options already carry one.
	Bind(token string) Client
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a graph.Client.
//
// # TLS
//
// Certificates are always verified unless InsecureSkipVerify is set, and
// hypergraph.New only honors that flag when HYPERGRAPH_DEV_MODE is "true" or
// "1". TLSConfig may supply custom roots (for example a test CA) without
// disabling verification.
//
// # Status codes
//
// By default response status codes are ignored: every body is normalized, so
// an error envelope becomes *Error and any other body is returned as data.
// StrictStatus additionally turns non-2xx responses into *StatusError.
type Config struct {
	// Host is the API host. Defaults to DefaultHost. A scheme prefix is
	// stripped by hypergraph.New.
	Host string
	// Port is the HTTPS port. Defaults to DefaultPort.
	Port int
	// AccessToken: if set, the returned client is bound to it and merges it
	// into every call as access_token unless the caller supplies one.
	AccessToken string

	// StrictStatus: return *StatusError for non-2xx responses that do not
	// carry an error envelope.
	StrictStatus bool
	// EscapeValues: percent-encode keys and values when building query
	// strings and form bodies. When false, pairs are sent exactly as given.
	EscapeValues bool

	// InsecureSkipVerify disables certificate verification. Development only.
	InsecureSkipVerify bool
	// TLSConfig overrides the transport TLS settings.
	TLSConfig *tls.Config
	// HTTPClient replaces the underlying HTTP client, typically in tests.
	HTTPClient *http.Client

	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
