package client

import (
	"context"
	"fmt"
	"regexp"

	"github.com/fivetwenty-io/hypergraph/internal/constants"
	"github.com/fivetwenty-io/hypergraph/internal/normalize"
	"github.com/fivetwenty-io/hypergraph/pkg/graph"
	"github.com/tidwall/gjson"
)

var tokenSeparators = regexp.MustCompile(`[=&]`)

// AuthorizationURL implements graph.OAuthClient.AuthorizationURL.
func (c *Client) AuthorizationURL(clientID, redirectURI string, opts graph.Options) string {
	query := c.encode(opts.Merge(graph.Options{
		graph.ParamClientID:    clientID,
		graph.ParamRedirectURI: redirectURI,
	}))

	return constants.HTTPSScheme + c.host + constants.APIPathAuthorize + "?" + query
}

// ExchangeAuthorizationCode implements graph.OAuthClient.ExchangeAuthorizationCode.
func (c *Client) ExchangeAuthorizationCode(ctx context.Context, clientID, clientSecret, redirectURI, code string) (string, error) {
	query := c.encode(graph.Options{
		graph.ParamClientID:     clientID,
		graph.ParamClientSecret: clientSecret,
		graph.ParamRedirectURI:  redirectURI,
		graph.ParamCode:         code,
	})

	resp, err := c.httpClient.Get(ctx, escapeTarget(constants.APIPathAccessToken+"?"+query))
	if err != nil {
		return "", fmt.Errorf("exchanging authorization code: %w", err)
	}

	if gjson.ValidBytes(resp.Body) && gjson.ParseBytes(resp.Body).IsObject() {
		token, err := tokenFromJSON(resp.Body)
		if err != nil {
			return "", err
		}

		if err := c.checkStatus(resp); err != nil {
			return "", err
		}

		return token, nil
	}

	if err := c.checkStatus(resp); err != nil {
		return "", err
	}

	return ParseAccessToken(string(resp.Body))
}

// ParseAccessToken extracts the access token from a key=value&key=value
// token response: the value following the first '='.
func ParseAccessToken(body string) (string, error) {
	tokens := tokenSeparators.Split(body, -1)
	if len(tokens) < constants.KeyValueSplitParts || tokens[1] == "" {
		return "", &graph.ParseError{Err: graph.ErrMissingAccessToken}
	}

	return tokens[1], nil
}

// tokenFromJSON handles servers that answer the exchange with a JSON object,
// including error envelopes.
func tokenFromJSON(body []byte) (string, error) {
	value, err := normalize.Normalize(body)
	if err != nil {
		return "", err
	}

	obj, _ := value.(graph.Object)

	token := obj.String(graph.ParamAccessToken)
	if token == "" {
		return "", &graph.ParseError{Key: graph.ParamAccessToken, Err: graph.ErrMissingAccessToken}
	}

	return token, nil
}
