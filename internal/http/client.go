// Package http is the single-host HTTPS transport used by the graph client.
package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"io"
	gohttp "net/http"
	"net/url"
	"regexp"

	"github.com/fivetwenty-io/hypergraph/internal/constants"
	"github.com/fivetwenty-io/hypergraph/pkg/graph"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

var redactor = regexp.MustCompile(`(access_token|client_secret)=([^&]*)`)

// Redact masks credential values in a URL or query string.
func Redact(s string) string {
	return redactor.ReplaceAllString(s, "$1="+constants.MaskedSecret)
}

// Logger interface for transport logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request is a single API request. Path carries any query string.
type Request struct {
	Method  string
	Path    string
	Body    []byte
	Headers map[string]string
}

// Response is a fully read API response.
type Response struct {
	StatusCode int
	Headers    gohttp.Header
	Body       []byte
}

// IsSuccess reports whether the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client sends requests to one base URL.
type Client struct {
	baseURL    string
	client     *retryablehttp.Client
	httpClient *gohttp.Client
	tlsConfig  *tls.Config
	logger     Logger
	debug      bool
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug and error output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *gohttp.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTLSConfig sets the TLS configuration of the default transport. It is
// ignored when WithHTTPClient is used.
func WithTLSConfig(tlsConfig *tls.Config) Option {
	return func(c *Client) {
		c.tlsConfig = tlsConfig
	}
}

// NewClient creates a transport for baseURL. Requests are never retried and
// connections are not reused between calls.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   baseURL,
		userAgent: constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = cleanhttp.DefaultClient()
		if c.tlsConfig != nil {
			if transport, ok := c.httpClient.Transport.(*gohttp.Transport); ok {
				transport.TLSClientConfig = c.tlsConfig
			}
		}
	}

	client := retryablehttp.NewClient()
	client.HTTPClient = c.httpClient
	client.RetryMax = 0
	client.CheckRetry = noRetry
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Logger = nil

	if c.logger != nil && c.debug {
		client.RequestLogHook = c.logRequest
		client.ResponseLogHook = c.logResponse
	}

	c.client = client

	return c
}

func noRetry(ctx context.Context, _ *gohttp.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, err
}

// Get issues a GET for target, a path with an optional query string.
func (c *Client) Get(ctx context.Context, target string) (*Response, error) {
	return c.Do(ctx, &Request{Method: gohttp.MethodGet, Path: target})
}

// PostForm issues a POST with a form-encoded body.
func (c *Client) PostForm(ctx context.Context, path string, body string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:  gohttp.MethodPost,
		Path:    path,
		Body:    []byte(body),
		Headers: map[string]string{"Content-Type": constants.FormContentType},
	})
}

// Do sends req and reads the whole response body. The status code is not
// inspected.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path

	var body interface{}
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, c.transportError(req.Method, fullURL, err)
	}

	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, c.transportError(req.Method, fullURL, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(req.Method, fullURL, err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}, nil
}

func (c *Client) transportError(method, rawURL string, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = Redact(urlErr.URL)
	}

	redacted := Redact(rawURL)

	if c.logger != nil {
		c.logger.Error("HTTP Request Failed", map[string]interface{}{
			"method": method,
			"url":    redacted,
			"error":  err.Error(),
		})
	}

	return &graph.TransportError{Method: method, URL: redacted, Err: err}
}

func (c *Client) logRequest(_ retryablehttp.Logger, req *gohttp.Request, attempt int) {
	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":  req.Method,
		"url":     Redact(req.URL.String()),
		"attempt": attempt,
	})
}

func (c *Client) logResponse(_ retryablehttp.Logger, resp *gohttp.Response) {
	c.logger.Debug("HTTP Response", map[string]interface{}{
		"method":      resp.Request.Method,
		"url":         Redact(resp.Request.URL.String()),
		"status_code": resp.StatusCode,
	})
}
