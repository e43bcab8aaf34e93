package hypergraph

import (
	"crypto/tls"
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/hypergraph/internal/client"
	"github.com/fivetwenty-io/hypergraph/internal/constants"
	"github.com/fivetwenty-io/hypergraph/pkg/graph"
)

// New creates a graph API client. The config is copied; the caller's value is
// not modified. When config.AccessToken is set the client is bound to it.
func New(config *graph.Config) (graph.API, error) {
	if config == nil {
		return nil, graph.ErrConfigRequired
	}

	normalized := *config
	normalized.Host = normalizeHost(config.Host)

	if normalized.Port == 0 {
		normalized.Port = graph.DefaultPort
	}

	tlsConfig, err := createTLSConfig(config)
	if err != nil {
		return nil, err
	}

	normalized.TLSConfig = tlsConfig

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithToken creates a client for the default host bound to token.
func NewWithToken(token string) (graph.API, error) {
	return New(&graph.Config{AccessToken: token})
}

// NewWithHost creates an unauthenticated client for host.
func NewWithHost(host string) (graph.API, error) {
	return New(&graph.Config{Host: host})
}

// normalizeHost strips any scheme prefix and trailing slash.
func normalizeHost(host string) string {
	host = strings.TrimPrefix(host, constants.HTTPSScheme)
	host = strings.TrimPrefix(host, constants.HTTPScheme)
	host = strings.TrimSuffix(host, "/")

	if host == "" {
		return graph.DefaultHost
	}

	return host
}

// isDevelopmentEnvironment checks if we're in a development environment.
func isDevelopmentEnvironment() bool {
	devMode := os.Getenv(constants.DevModeEnv)

	return devMode == constants.BooleanTrue || devMode == constants.DevModeOne
}

// createTLSConfig returns the transport TLS settings. Verification is only
// disabled in an explicit development environment.
func createTLSConfig(config *graph.Config) (*tls.Config, error) {
	if !config.InsecureSkipVerify {
		return config.TLSConfig, nil
	}

	if !isDevelopmentEnvironment() {
		return nil, fmt.Errorf("%w (set %s=true)", graph.ErrInsecureOnlyInDev, constants.DevModeEnv)
	}

	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}
	if config.TLSConfig != nil {
		tlsConfig = config.TLSConfig.Clone()
	}

	tlsConfig.InsecureSkipVerify = true // #nosec G402 -- Protected by development environment check above

	return tlsConfig, nil
}
