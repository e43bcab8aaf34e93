package commands

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fivetwenty-io/hypergraph/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

// useTestServer points the CLI at a TLS test server. Certificate checks are
// skipped through the development mode gate.
func useTestServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()

	server := httptest.NewTLSServer(handler)
	t.Cleanup(server.Close)

	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("HYPERGRAPH_DEV_MODE", "true")

	viper.Set(keyHost, server.Listener.Addr().String())
	viper.Set(keyInsecureSkipVerify, true)
	viper.Set(keyOutput, "json")
}

func TestCommandStructure(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "get PATH [key=value...]", NewGetCommand().Use)
	assert.Equal(t, "post PATH [key=value...]", NewPostCommand().Use)
	assert.Equal(t, "delete PATH [key=value...]", NewDeleteCommand().Use)
	assert.Equal(t, []string{"rm"}, NewDeleteCommand().Aliases)
	assert.Equal(t, "search QUERY [key=value...]", NewSearchCommand().Use)

	token := NewTokenCommand()
	assert.Len(t, token.Commands(), 2)

	exchange := findSubcommand(token, "exchange")
	require.NotNil(t, exchange)

	for _, flag := range []string{"client-id", "client-secret", "redirect-uri", "code", "save"} {
		assert.NotNil(t, exchange.Flags().Lookup(flag), "Flag %s should exist", flag)
	}

	assert.NotNil(t, findSubcommand(token, "authorize-url"))

	config := NewConfigCommand()
	assert.NotNil(t, findSubcommand(config, "show"))
	assert.NotNil(t, findSubcommand(config, "set"))
}

func TestGetCommand(t *testing.T) {
	useTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me", r.URL.Path)
		assert.Equal(t, "access_token=tok&fields=id,name", r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"id": "4", "name": "Mark", "updated_time": "2011-01-01T00:00:00+0000"}`))
	})

	viper.Set(keyToken, "tok")

	out, err := execute(t, NewGetCommand(), "me", "fields=id,name")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 4, "name": "Mark", "updated_time": "2011-01-01T00:00:00Z"}`, out)
}

func TestGetCommand_DomainError(t *testing.T) {
	useTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"type": "OAuthException", "message": "An active access token must be used"}}`))
	})

	out, err := execute(t, NewGetCommand(), "me")
	require.EqualError(t, err, "OAuthException - An active access token must be used")
	assert.Empty(t, out)
}

func TestGetCommand_InvalidParameter(t *testing.T) {
	useTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	})

	_, err := execute(t, NewGetCommand(), "me", "fields")
	require.Error(t, err)
}

func TestPostAndDeleteCommands(t *testing.T) {
	var (
		mu     sync.Mutex
		bodies []string
	)

	useTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		mu.Lock()
		bodies = append(bodies, string(body))
		mu.Unlock()

		_, _ = w.Write([]byte("true"))
	})

	out, err := execute(t, NewPostCommand(), "me/feed", "message=hello")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = execute(t, NewDeleteCommand(), "123_456")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"message=hello", "method=delete"}, bodies)
}

func TestSearchCommand(t *testing.T) {
	useTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "q=coffee&type=page", r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"data": [{"id": "7"}]}`))
	})

	out, err := execute(t, NewSearchCommand(), "coffee", "type=page")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id": 7}]`, out)
}

func TestTokenExchangeCommand(t *testing.T) {
	useTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth/access_token", r.URL.Path)
		assert.Equal(t, "client_id=123&client_secret=s3cr3t&code=abc&redirect_uri=cb", r.URL.RawQuery)
		_, _ = w.Write([]byte("access_token=NEWTOKEN&expires=5108"))
	})

	configFile := filepath.Join(t.TempDir(), "hypergraph", "config.yml")
	viper.SetConfigFile(configFile)

	out, err := execute(t, NewTokenCommand(),
		"exchange", "--client-id", "123", "--client-secret", "s3cr3t", "--redirect-uri", "cb", "--code", "abc", "--save")
	require.NoError(t, err)
	assert.JSONEq(t, `{"access_token": "NEWTOKEN"}`, out)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "token: NEWTOKEN")
}

func TestTokenExchangeCommand_NoSecret(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	input, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	t.Cleanup(func() { _ = input.Close() })

	previous := secretInput
	secretInput = input

	t.Cleanup(func() { secretInput = previous })

	_, err = execute(t, NewTokenCommand(),
		"exchange", "--client-id", "123", "--redirect-uri", "cb", "--code", "abc")
	require.ErrorIs(t, err, constants.ErrNoSecretInput)
	assert.Contains(t, err.Error(), "client secret")
}

func TestTokenAuthorizeURLCommand(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	out, err := execute(t, NewTokenCommand(),
		"authorize-url", "--client-id", "123", "--redirect-uri", "https://example.com/cb", "--scope", "email", "display=popup")
	require.NoError(t, err)
	assert.Equal(t,
		"https://graph.facebook.com/oauth/authorize?client_id=123&display=popup&redirect_uri=https://example.com/cb&scope=email\n",
		out,
	)
}

func TestConfigSetAndShow(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "hypergraph", "config.yml")
	viper.SetConfigFile(configFile)
	viper.Set(keyOutput, "json")

	out, err := execute(t, NewConfigCommand(), "set", "token", "EAABwzLixnjYBAO")
	require.NoError(t, err)
	assert.JSONEq(t, `{"action": "set", "key": "token", "value": "EAABwzLi***"}`, out)

	info, err := os.Stat(configFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, viper.ReadInConfig())

	out, err = execute(t, NewConfigCommand(), "show")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"host": "graph.facebook.com",
		"token": "EAABwzLi***",
		"output": "json",
		"strict_status": false,
		"escape_values": false,
		"insecure_skip_verify": false
	}`, out)

	_, err = execute(t, NewConfigCommand(), "set", "colour", "red")
	require.Error(t, err)

	_, err = execute(t, NewConfigCommand(), "set", "output", "xml")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set(keyOutput, "yaml")

	out, err := execute(t, NewVersionCommand("1.2.3", "abc", "today"))
	require.NoError(t, err)
	assert.Equal(t, "built: today\ncommit: abc\nversion: 1.2.3\n", out)
}
