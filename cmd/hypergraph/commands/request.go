package commands

import (
	"context"

	"github.com/fivetwenty-io/hypergraph/pkg/graph"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type requestFunc func(ctx context.Context, api graph.API, target string, opts graph.Options) (any, error)

// NewGetCommand creates the get command.
func NewGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PATH [key=value...]",
		Short: "Fetch an object or connection",
		Long:  "Issue a GET for PATH with the given parameters as the query string",
		Example: `  hypergraph get me fields=id,name
  hypergraph get 19292868552/feed limit=5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, args, func(ctx context.Context, api graph.API, path string, opts graph.Options) (any, error) {
				return api.Fetch(ctx, path, opts)
			})
		},
	}
}

// NewPostCommand creates the post command.
func NewPostCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "post PATH [key=value...]",
		Short:   "Publish to a connection",
		Long:    "Issue a POST for PATH with the given parameters as the form body",
		Example: `  hypergraph post me/feed message="Hello"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, args, func(ctx context.Context, api graph.API, path string, opts graph.Options) (any, error) {
				return api.Submit(ctx, path, opts)
			})
		},
	}
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete PATH [key=value...]",
		Aliases: []string{"rm"},
		Short:   "Delete an object",
		Long:    "Issue a POST for PATH with method=delete added to the form body",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, args, func(ctx context.Context, api graph.API, path string, opts graph.Options) (any, error) {
				return api.Remove(ctx, path, opts)
			})
		},
	}
}

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "search QUERY [key=value...]",
		Short:   "Search the graph",
		Long:    "Fetch the search endpoint with q set to QUERY",
		Example: `  hypergraph search coffee type=page`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, args, func(ctx context.Context, api graph.API, query string, opts graph.Options) (any, error) {
				return api.Search(ctx, query, opts)
			})
		},
	}
}

func runRequest(cmd *cobra.Command, args []string, fn requestFunc) error {
	opts, err := parseOptions(args[1:])
	if err != nil {
		return err
	}

	api, err := newClient()
	if err != nil {
		return err
	}

	value, err := fn(cmd.Context(), api, args[0], opts)
	if err != nil {
		return err
	}

	return writeValue(cmd.OutOrStdout(), viper.GetString(keyOutput), value)
}
