package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/hypergraph/internal/constants"
	"github.com/fivetwenty-io/hypergraph/internal/http"
	"github.com/fivetwenty-io/hypergraph/internal/normalize"
	"github.com/fivetwenty-io/hypergraph/pkg/graph"
)

// Client implements graph.API over a single-host transport.
type Client struct {
	httpClient   *http.Client
	host         string
	accessToken  string
	strictStatus bool
	escapeValues bool
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *graph.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.TLSConfig != nil {
		httpOpts = append(httpOpts, http.WithTLSConfig(config.TLSConfig))
	}

	return httpOpts
}

// hostPort returns host with the port appended unless it is the default.
func hostPort(config *graph.Config) string {
	if config.Port == 0 || config.Port == graph.DefaultPort {
		return config.Host
	}

	return config.Host + ":" + strconv.Itoa(config.Port)
}

// New creates a graph client from an already normalized config. TLS policy is
// enforced by the caller.
func New(config *graph.Config) (*Client, error) {
	if config == nil {
		return nil, graph.ErrConfigRequired
	}

	host := hostPort(config)

	return &Client{
		httpClient:   http.NewClient(constants.HTTPSScheme+host, createHTTPClientOptions(config)...),
		host:         host,
		accessToken:  config.AccessToken,
		strictStatus: config.StrictStatus,
		escapeValues: config.EscapeValues,
	}, nil
}

// Bind returns a client that merges token into every call as access_token.
// An access_token passed explicitly in the call options is left untouched.
func (c *Client) Bind(token string) graph.Client {
	bound := *c
	bound.accessToken = token

	return &bound
}

// AccessToken returns the bound credential, if any.
func (c *Client) AccessToken() string {
	return c.accessToken
}

// Fetch implements graph.Reader.Fetch.
func (c *Client) Fetch(ctx context.Context, path string, opts graph.Options) (any, error) {
	target := requestPath(path)
	if query := c.encode(c.withCredential(opts)); query != "" {
		target += "?" + query
	}

	resp, err := c.httpClient.Get(ctx, escapeTarget(target))
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}

	return c.decode(resp)
}

// Search implements graph.Reader.Search.
func (c *Client) Search(ctx context.Context, query string, opts graph.Options) (any, error) {
	return c.Fetch(ctx, constants.APIPathSearch, opts.With(graph.ParamQuery, query))
}

// Submit implements graph.Writer.Submit.
func (c *Client) Submit(ctx context.Context, path string, opts graph.Options) (any, error) {
	resp, err := c.httpClient.PostForm(ctx, requestPath(path), c.encode(c.withCredential(opts)))
	if err != nil {
		return nil, fmt.Errorf("posting %s: %w", path, err)
	}

	if string(resp.Body) == constants.TrueBody {
		if err := c.checkStatus(resp); err != nil {
			return nil, err
		}

		return true, nil
	}

	return c.decode(resp)
}

// Remove implements graph.Writer.Remove.
func (c *Client) Remove(ctx context.Context, path string, opts graph.Options) (any, error) {
	return c.Submit(ctx, path, opts.With(graph.ParamMethod, constants.MethodOverrideDelete))
}

func (c *Client) withCredential(opts graph.Options) graph.Options {
	if c.accessToken == "" {
		return opts
	}

	return opts.WithDefault(graph.ParamAccessToken, c.accessToken)
}

func (c *Client) encode(opts graph.Options) string {
	if c.escapeValues {
		return opts.EncodeEscaped()
	}

	return opts.Encode()
}

// decode normalizes the body first so an error envelope wins over the
// status policy.
func (c *Client) decode(resp *http.Response) (any, error) {
	value, err := normalize.Normalize(resp.Body)
	if err != nil {
		return nil, err
	}

	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	return value, nil
}

func (c *Client) checkStatus(resp *http.Response) error {
	if !c.strictStatus || resp.IsSuccess() {
		return nil
	}

	return &graph.StatusError{StatusCode: resp.StatusCode, Body: resp.Body}
}

func requestPath(path string) string {
	return "/" + strings.TrimPrefix(path, "/")
}
