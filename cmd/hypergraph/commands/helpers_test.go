package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fivetwenty-io/hypergraph/internal/constants"
	"github.com/fivetwenty-io/hypergraph/pkg/graph"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected graph.Options
		wantErr  bool
	}{
		{name: "none", args: nil, expected: graph.Options{}},
		{name: "pairs", args: []string{"fields=id,name", "limit=5"}, expected: graph.Options{"fields": "id,name", "limit": "5"}},
		{name: "value with equals", args: []string{"next=a=b"}, expected: graph.Options{"next": "a=b"}},
		{name: "empty value", args: []string{"after="}, expected: graph.Options{"after": ""}},
		{name: "missing separator", args: []string{"fields"}, wantErr: true},
		{name: "missing key", args: []string{"=x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts, err := parseOptions(tt.args)
			if tt.wantErr {
				require.ErrorIs(t, err, constants.ErrInvalidParameter)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, opts)
		})
	}
}

func TestMaskToken(t *testing.T) {
	t.Parallel()

	assert.Empty(t, maskToken(""))
	assert.Equal(t, "***", maskToken("short"))
	assert.Equal(t, "EAABwzLi***", maskToken("EAABwzLixnjYBAO"))
}

func TestParseBoolValue(t *testing.T) {
	t.Parallel()

	assert.True(t, parseBoolValue("true"))
	assert.True(t, parseBoolValue("1"))
	assert.False(t, parseBoolValue("yes"))
	assert.False(t, parseBoolValue(""))
}

func TestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := NewLogger(&buf)
	logger.Debug("HTTP Request", map[string]interface{}{"url": "/me", "method": "GET"})
	logger.Error("HTTP Request Failed", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "DEBU")
	assert.Contains(t, lines[0], "HTTP Request")
	assert.Contains(t, lines[0], "method=GET")
	assert.Contains(t, lines[0], "url=/me")
	assert.Less(t, strings.Index(lines[0], "method="), strings.Index(lines[0], "url="))

	assert.Contains(t, lines[1], "ERRO")
	assert.Contains(t, lines[1], "HTTP Request Failed")
}

func TestKeyvals(t *testing.T) {
	t.Parallel()

	assert.Empty(t, keyvals(nil))
	assert.Equal(t,
		[]any{"attempt", 0, "method", "GET", "url", "/me"},
		keyvals(map[string]interface{}{"url": "/me", "method": "GET", "attempt": 0}),
	)
}

func TestCreateClientConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set(keyHost, "graph.example.com")
	viper.Set(keyToken, "tok")
	viper.Set(keyStrictStatus, true)
	viper.Set(keyVerbose, true)

	config := createClientConfig()
	assert.Equal(t, "graph.example.com", config.Host)
	assert.Equal(t, "tok", config.AccessToken)
	assert.True(t, config.StrictStatus)
	assert.False(t, config.EscapeValues)
	assert.True(t, config.Debug)
	assert.NotNil(t, config.Logger)
}
