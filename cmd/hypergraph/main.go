package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fivetwenty-io/hypergraph/cmd/hypergraph/commands"
	"github.com/fivetwenty-io/hypergraph/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "hypergraph",
	Short: "Social graph API CLI",
	Long: `A command-line interface for the social graph API.

Fetch objects and connections, publish and delete content, search, and run
the authorization code flow. Responses are shown normalized: data envelopes
unwrapped, numeric ids as integers and *_time values as timestamps.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.hypergraph/config.yml)")
	rootCmd.PersistentFlags().String("host", "", "API host (default graph.facebook.com)")
	rootCmd.PersistentFlags().StringP("token", "t", "", "access token")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log requests to stderr")
	rootCmd.PersistentFlags().Bool("strict-status", false, "treat non-2xx responses as errors")
	rootCmd.PersistentFlags().Bool("escape-values", false, "percent-encode parameter keys and values")
	rootCmd.PersistentFlags().Bool("insecure-skip-verify", false, "skip TLS verification (requires "+constants.DevModeEnv+"=true)")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("host", rootCmd.PersistentFlags().Lookup("host"))
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("strict_status", rootCmd.PersistentFlags().Lookup("strict-status"))
	_ = viper.BindPFlag("escape_values", rootCmd.PersistentFlags().Lookup("escape-values"))
	_ = viper.BindPFlag("insecure_skip_verify", rootCmd.PersistentFlags().Lookup("insecure-skip-verify"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewGetCommand())
	rootCmd.AddCommand(commands.NewPostCommand())
	rootCmd.AddCommand(commands.NewDeleteCommand())
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewTokenCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.hypergraph/config.yml
		viper.AddConfigPath(filepath.Join(home, ".hypergraph"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
