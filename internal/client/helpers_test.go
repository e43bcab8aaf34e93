package client_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/hypergraph/internal/client"
	"github.com/fivetwenty-io/hypergraph/pkg/graph"
	"github.com/stretchr/testify/require"
)

// newTestClient starts a TLS server running handler and returns a client
// that trusts its certificate.
func newTestClient(t *testing.T, handler http.HandlerFunc, configure ...func(*graph.Config)) *client.Client {
	t.Helper()

	server := httptest.NewTLSServer(handler)
	t.Cleanup(server.Close)

	config := &graph.Config{
		Host:       server.Listener.Addr().String(),
		HTTPClient: server.Client(),
	}

	for _, fn := range configure {
		fn(config)
	}

	c, err := client.New(config)
	require.NoError(t, err)

	return c
}

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}
}

func respondStatus(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}
