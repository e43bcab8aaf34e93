package commands

import (
	"fmt"
	"os"

	"github.com/fivetwenty-io/hypergraph/internal/constants"
	"github.com/fivetwenty-io/hypergraph/pkg/graph"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewTokenCommand creates the token command group.
func NewTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Authorization code flow helpers",
		Long:  "Build authorization URLs and exchange authorization codes for access tokens",
	}

	cmd.AddCommand(newTokenExchangeCommand())
	cmd.AddCommand(newTokenAuthorizeURLCommand())

	return cmd
}

func newTokenExchangeCommand() *cobra.Command {
	var (
		clientID     string
		clientSecret string
		redirectURI  string
		code         string
		save         bool
	)

	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Exchange an authorization code for an access token",
		Long:  "Exchange an authorization code for an access token. The client secret is prompted for when not given.",
		Example: `  hypergraph token exchange --client-id 123 --redirect-uri https://example.com/cb --code AQB...
  hypergraph token exchange --client-id 123 --redirect-uri https://example.com/cb --code AQB... --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if clientSecret == "" {
				secret, err := readSecret(cmd)
				if err != nil {
					return err
				}

				clientSecret = secret
			}

			api, err := newClient()
			if err != nil {
				return err
			}

			token, err := api.ExchangeAuthorizationCode(cmd.Context(), clientID, clientSecret, redirectURI, code)
			if err != nil {
				return fmt.Errorf("failed to exchange authorization code: %w", err)
			}

			if save {
				config := loadConfig()
				config.Token = token

				err := saveConfigStruct(config)
				if err != nil {
					return fmt.Errorf("failed to save token: %w", err)
				}
			}

			return writeValue(cmd.OutOrStdout(), viper.GetString(keyOutput), graph.Object{
				graph.ParamAccessToken: token,
			})
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "application client ID")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "application client secret (prompted if omitted)")
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "redirect URI used for the authorization request")
	cmd.Flags().StringVar(&code, "code", "", "authorization code")
	cmd.Flags().BoolVar(&save, "save", false, "save the token to the config file")

	_ = cmd.MarkFlagRequired("client-id")
	_ = cmd.MarkFlagRequired("redirect-uri")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}

func newTokenAuthorizeURLCommand() *cobra.Command {
	var (
		clientID    string
		redirectURI string
		scope       string
	)

	cmd := &cobra.Command{
		Use:     "authorize-url [key=value...]",
		Short:   "Print the user authorization URL",
		Long:    "Build the URL users are sent to for consent. No request is made.",
		Example: `  hypergraph token authorize-url --client-id 123 --redirect-uri https://example.com/cb --scope email,user_likes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseOptions(args)
			if err != nil {
				return err
			}

			if scope != "" {
				opts["scope"] = scope
			}

			api, err := newClient()
			if err != nil {
				return err
			}

			return writeValue(cmd.OutOrStdout(), viper.GetString(keyOutput), api.AuthorizationURL(clientID, redirectURI, opts))
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "application client ID")
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "redirect URI")
	cmd.Flags().StringVar(&scope, "scope", "", "comma separated permissions")

	_ = cmd.MarkFlagRequired("client-id")
	_ = cmd.MarkFlagRequired("redirect-uri")

	return cmd
}

// secretInput is read for the client secret prompt.
var secretInput = os.Stdin

func readSecret(cmd *cobra.Command) (string, error) {
	fd := int(secretInput.Fd()) // #nosec G115 -- file descriptors fit in int
	if !term.IsTerminal(fd) {
		return "", constants.ErrNoSecretInput
	}

	_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Client secret: ")

	secret, err := term.ReadPassword(fd)

	_, _ = fmt.Fprintln(cmd.ErrOrStderr())

	if err != nil {
		return "", fmt.Errorf("failed to read client secret: %w", err)
	}

	if len(secret) == 0 {
		return "", constants.ErrNoSecretInput
	}

	return string(secret), nil
}
