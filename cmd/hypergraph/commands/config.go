package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/fivetwenty-io/hypergraph/internal/constants"
	"github.com/fivetwenty-io/hypergraph/pkg/graph"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the persisted CLI configuration.
type Config struct {
	Host               string `json:"host,omitempty"       yaml:"host,omitempty"`
	Token              string `json:"token,omitempty"      yaml:"token,omitempty"`
	Output             string `json:"output,omitempty"     yaml:"output,omitempty"`
	StrictStatus       bool   `json:"strict_status"        yaml:"strict_status"`
	EscapeValues       bool   `json:"escape_values"        yaml:"escape_values"`
	InsecureSkipVerify bool   `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and update the hypergraph CLI configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective CLI configuration with the token masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			return writeValue(cmd.OutOrStdout(), viper.GetString(keyOutput), config.display())
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Set a configuration value and save the config file.

Keys: host, token, output, strict_status, escape_values, insecure_skip_verify`,
		Args: cobra.ExactArgs(constants.KeyValueSplitParts),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			config := loadConfig()

			err := setConfigValue(config, key, value)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			shown := value
			if key == keyToken {
				shown = maskToken(value)
			}

			return writeValue(cmd.OutOrStdout(), viper.GetString(keyOutput), graph.Object{
				"action": "set",
				"key":    key,
				"value":  shown,
			})
		},
	}
}

// loadConfig reads the effective configuration from viper.
func loadConfig() *Config {
	return &Config{
		Host:               viper.GetString(keyHost),
		Token:              viper.GetString(keyToken),
		Output:             viper.GetString(keyOutput),
		StrictStatus:       viper.GetBool(keyStrictStatus),
		EscapeValues:       viper.GetBool(keyEscapeValues),
		InsecureSkipVerify: viper.GetBool(keyInsecureSkipVerify),
	}
}

func (c *Config) display() graph.Object {
	host := c.Host
	if host == "" {
		host = graph.DefaultHost
	}

	return graph.Object{
		keyHost:               host,
		keyToken:              maskToken(c.Token),
		keyOutput:             c.Output,
		keyStrictStatus:       c.StrictStatus,
		keyEscapeValues:       c.EscapeValues,
		keyInsecureSkipVerify: c.InsecureSkipVerify,
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case keyHost:
		config.Host = value
	case keyToken:
		config.Token = value
	case keyOutput:
		if !slices.Contains([]string{constants.FormatJSON, constants.FormatYAML, constants.FormatTable}, value) {
			return fmt.Errorf("%w: %s", constants.ErrUnknownFormat, value)
		}

		config.Output = value
	case keyStrictStatus:
		config.StrictStatus = parseBoolValue(value)
	case keyEscapeValues:
		config.EscapeValues = parseBoolValue(value)
	case keyInsecureSkipVerify:
		config.InsecureSkipVerify = parseBoolValue(value)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// configFilePath returns the file in use, or $HOME/.hypergraph/config.yml.
func configFilePath() (string, error) {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".hypergraph", "config.yml"), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
