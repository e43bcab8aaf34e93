package graph

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Well-known parameter names.
const (
	ParamAccessToken  = "access_token"
	ParamMethod       = "method"
	ParamQuery        = "q"
	ParamClientID     = "client_id"
	ParamClientSecret = "client_secret"
	ParamRedirectURI  = "redirect_uri"
	ParamCode         = "code"
)

// Options maps request parameter names to values. Values are stringified with
// fmt's %v verb when encoded. A nil Options is valid and empty.
type Options map[string]any

// Encode joins every key=value pair with '&', sorted by the full pair string.
// Keys and values are emitted exactly as given.
func (o Options) Encode() string {
	return o.encode(false)
}

// EncodeEscaped is Encode with keys and values query-escaped before pairing.
func (o Options) EncodeEscaped() string {
	return o.encode(true)
}

func (o Options) encode(escape bool) string {
	if len(o) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(o))

	for key, value := range o {
		k, v := key, fmt.Sprint(value)
		if escape {
			k, v = url.QueryEscape(k), url.QueryEscape(v)
		}

		pairs = append(pairs, k+"="+v)
	}

	sort.Strings(pairs)

	return strings.Join(pairs, "&")
}

// With returns a copy of o with key set to value.
func (o Options) With(key string, value any) Options {
	out := o.clone(1)
	out[key] = value

	return out
}

// WithDefault returns a copy of o with key set to value only when o has no
// entry for key.
func (o Options) WithDefault(key string, value any) Options {
	out := o.clone(1)
	if _, ok := out[key]; !ok {
		out[key] = value
	}

	return out
}

// Merge returns a copy of o with every entry of other layered on top.
func (o Options) Merge(other Options) Options {
	out := o.clone(len(other))
	for key, value := range other {
		out[key] = value
	}

	return out
}

func (o Options) clone(extra int) Options {
	out := make(Options, len(o)+extra)
	for key, value := range o {
		out[key] = value
	}

	return out
}
