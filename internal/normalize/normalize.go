// Package normalize converts raw graph API JSON into normalized graph values.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/hypergraph/pkg/graph"
	"github.com/tidwall/gjson"
)

const (
	envelopeKey = "data"
	errorKey    = "error"
	idKey       = "id"
	timeSuffix  = "_time"
)

// timeLayouts are tried in order for keys ending in _time.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

type keyKind int

const (
	keyPlain keyKind = iota
	keyError
	keyID
	keyTime
)

func classify(key string) keyKind {
	switch {
	case key == errorKey:
		return keyError
	case key == idKey:
		return keyID
	case strings.HasSuffix(key, timeSuffix):
		return keyTime
	default:
		return keyPlain
	}
}

// Normalize parses body and returns its normalized form: a graph.Object,
// graph.Array, or scalar. An error envelope anywhere in the body aborts with
// *graph.Error and no partial value.
func Normalize(body []byte) (any, error) {
	if !gjson.ValidBytes(body) {
		return nil, &graph.ParseError{Err: graph.ErrInvalidJSON}
	}

	return Value(gjson.ParseBytes(body))
}

// Value normalizes an already parsed JSON value. The value is envelope
// unwrapped before dispatch.
func Value(result gjson.Result) (any, error) {
	result = Unwrap(result)

	switch {
	case result.IsObject():
		return object(result)
	case result.IsArray():
		return array(result)
	default:
		return scalar(result), nil
	}
}

// Unwrap returns the value under the "data" key when result is an object
// containing one, and result unchanged otherwise.
func Unwrap(result gjson.Result) gjson.Result {
	if !result.IsObject() {
		return result
	}

	if data := result.Get(envelopeKey); data.Exists() {
		return data
	}

	return result
}

func object(result gjson.Result) (graph.Object, error) {
	out := graph.Object{}

	var err error

	result.ForEach(func(k, v gjson.Result) bool {
		key := k.String()

		var normalized any

		switch classify(key) {
		case keyError:
			err = domainError(v)
		case keyID:
			normalized = id(v)
		case keyTime:
			normalized, err = timestamp(key, v)
		case keyPlain:
			normalized, err = Value(v)
		}

		if err != nil {
			return false
		}

		out[graph.Key(key)] = normalized

		return true
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func array(result gjson.Result) (graph.Array, error) {
	out := graph.Array{}

	var err error

	result.ForEach(func(_, v gjson.Result) bool {
		var normalized any

		normalized, err = Value(v)
		if err != nil {
			return false
		}

		out = append(out, normalized)

		return true
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func scalar(result gjson.Result) any {
	switch result.Type {
	case gjson.String:
		return result.Str
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Number:
		if i, err := strconv.ParseInt(result.Raw, 10, 64); err == nil {
			return i
		}

		return result.Num
	case gjson.Null, gjson.JSON:
		return nil
	}

	return nil
}

func domainError(v gjson.Result) error {
	if !v.IsObject() {
		return &graph.Error{Message: v.String()}
	}

	return &graph.Error{
		Type:    v.Get("type").String(),
		Message: v.Get("message").String(),
		Code:    int(v.Get("code").Int()),
	}
}

// id converts a string holding the exact decimal form of an int64. Anything
// else is returned as decoded.
func id(v gjson.Result) any {
	if v.Type == gjson.String {
		n, err := strconv.ParseInt(v.Str, 10, 64)
		if err == nil && strconv.FormatInt(n, 10) == v.Str {
			return n
		}

		return v.Str
	}

	if v.IsObject() || v.IsArray() {
		return v.Value()
	}

	return scalar(v)
}

func timestamp(key string, v gjson.Result) (time.Time, error) {
	if v.Type != gjson.String {
		return time.Time{}, &graph.ParseError{Key: key, Err: fmt.Errorf("%w, got %s", graph.ErrUnsupportedTimeType, v.Type)}
	}

	return ParseTime(key, v.Str)
}

// ParseTime parses an API timestamp using the accepted layouts.
func ParseTime(key, value string) (time.Time, error) {
	var lastErr error

	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}

		lastErr = err
	}

	return time.Time{}, &graph.ParseError{Key: key, Err: lastErr}
}
