package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/fivetwenty-io/esig/internal/constants"
	"github.com/fivetwenty-io/esig/pkg/esig"
	"github.com/fivetwenty-io/esig/pkg/esigclient"
)

// NewRootCommand creates the esig command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "esig",
		Short: "eSignatures platform CLI",
		Long: `A command-line interface for the eSignatures web portal API.

Connection settings come from flags or ESIG_* environment variables
(ESIG_ENDPOINT, ESIG_USERNAME, ESIG_PASSWORD, ESIG_API_VERSION).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig()

			return validateOutputFormat(viper.GetString("output"))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("endpoint", "e", "", "platform URL, e.g. https://company.connective.eu")
	flags.StringP("username", "u", "", "API username")
	flags.String("password", "", "API password (prompted for when omitted)")
	flags.String("api-version", string(esig.APIVersionV4), "API version (v4, v3)")
	flags.StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.Duration("timeout", constants.DefaultHTTPTimeout, "HTTP request timeout")
	flags.BoolP("verbose", "v", false, "log requests and responses to stderr")

	for _, name := range []string{"endpoint", "username", "password", "api-version", "output", "timeout", "verbose"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewPackagesCommand())
	rootCmd.AddCommand(NewDocumentsCommand())
	rootCmd.AddCommand(NewSigningMethodsCommand())
	rootCmd.AddCommand(NewAuditTrailCommand())
	rootCmd.AddCommand(NewSanitizeCommand())
	rootCmd.AddCommand(NewUnitsCommand())

	return rootCmd
}

func initConfig() {
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func validateOutputFormat(format string) error {
	switch format {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, format)
	}
}

// newClientConfig builds the client configuration from flags and environment.
// The returned func flushes the verbose logger and must be called when the
// command finishes.
func newClientConfig() (*esig.Config, func(), error) {
	endpoint := viper.GetString("endpoint")
	if endpoint == "" {
		return nil, nil, constants.ErrNoEndpointConfigured
	}

	username := viper.GetString("username")
	if username == "" {
		return nil, nil, constants.ErrNoUsernameConfigured
	}

	password := viper.GetString("password")
	if password == "" {
		prompted, err := promptPassword()
		if err != nil {
			return nil, nil, err
		}

		password = prompted
	}

	config := &esig.Config{
		Endpoint:    endpoint,
		Username:    username,
		Password:    password,
		APIVersion:  esig.APIVersion(viper.GetString("api-version")),
		HTTPTimeout: viper.GetDuration("timeout"),
	}

	if viper.GetBool("verbose") {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create logger: %w", err)
		}

		config.Debug = true
		config.Logger = esig.NewZapLogger(logger)

		return config, func() { _ = logger.Sync() }, nil
	}

	return config, func() {}, nil
}

func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec // file descriptors fit in int

	if !term.IsTerminal(fd) {
		return "", constants.ErrPasswordRequired
	}

	fmt.Fprint(os.Stderr, "Password: ")

	bytePassword, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if len(bytePassword) == 0 {
		return "", constants.ErrPasswordRequired
	}

	return string(bytePassword), nil
}

// createClient returns the configured client and a func to call once the
// command is done with it.
func createClient() (esig.Client, func(), error) {
	config, done, err := newClientConfig()
	if err != nil {
		return nil, nil, err
	}

	client, err := esigclient.New(config)
	if err != nil {
		done()

		return nil, nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, done, nil
}

// requireV4 returns the client's v4 accessors or an error naming the command.
func requireV4(client esig.Client, command string) error {
	if client.Packages() == nil {
		return fmt.Errorf("%w: %s needs --api-version v4", esig.ErrUnsupportedAPIVersion, command)
	}

	return nil
}
