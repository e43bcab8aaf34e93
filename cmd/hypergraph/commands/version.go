package commands

import (
	"github.com/fivetwenty-io/hypergraph/pkg/graph"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the hypergraph CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeValue(cmd.OutOrStdout(), viper.GetString(keyOutput), graph.Object{
				"version": version,
				"commit":  commit,
				"built":   date,
			})
		},
	}
}
