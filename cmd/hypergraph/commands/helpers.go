package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/hypergraph/internal/constants"
	"github.com/fivetwenty-io/hypergraph/pkg/graph"
	"github.com/fivetwenty-io/hypergraph/pkg/hypergraph"
	"github.com/spf13/viper"
)

// Viper keys shared by flags, environment and the config file.
const (
	keyHost               = "host"
	keyToken              = "token"
	keyOutput             = "output"
	keyVerbose            = "verbose"
	keyStrictStatus       = "strict_status"
	keyEscapeValues       = "escape_values"
	keyInsecureSkipVerify = "insecure_skip_verify"
)

// parseOptions turns key=value arguments into request options. Values are
// kept verbatim, including any further '=' characters.
func parseOptions(args []string) (graph.Options, error) {
	opts := graph.Options{}

	for _, arg := range args {
		parts := strings.SplitN(arg, "=", constants.KeyValueSplitParts)
		if len(parts) != constants.KeyValueSplitParts || parts[0] == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidParameter, arg)
		}

		opts[parts[0]] = parts[1]
	}

	return opts, nil
}

// createClientConfig builds the library config from flags, environment and
// the config file.
func createClientConfig() *graph.Config {
	config := &graph.Config{
		Host:               viper.GetString(keyHost),
		AccessToken:        viper.GetString(keyToken),
		StrictStatus:       viper.GetBool(keyStrictStatus),
		EscapeValues:       viper.GetBool(keyEscapeValues),
		InsecureSkipVerify: viper.GetBool(keyInsecureSkipVerify),
	}

	if viper.GetBool(keyVerbose) {
		config.Logger = NewLogger(os.Stderr)
		config.Debug = true
	}

	return config
}

func newClient() (graph.API, error) {
	api, err := hypergraph.New(createClientConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return api, nil
}

// parseBoolValue parses a boolean value from string.
func parseBoolValue(value string) bool {
	return value == constants.BooleanTrue || value == constants.DevModeOne
}

// maskToken shows the first few characters of a credential.
func maskToken(token string) string {
	if token == "" {
		return ""
	}

	if len(token) <= constants.TokenPreviewLength {
		return constants.MaskedSecret
	}

	return token[:constants.TokenPreviewLength] + constants.MaskedSecret
}
