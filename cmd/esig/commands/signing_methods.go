package commands

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/esig/internal/constants"
)

// NewSigningMethodsCommand creates the signing-methods command.
func NewSigningMethodsCommand() *cobra.Command {
	var active string

	cmd := &cobra.Command{
		Use:     "signing-methods",
		Aliases: []string{"sm"},
		Short:   "List signing methods",
		Long:    "List the signing methods configured on the platform, optionally filtered on activation",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			isActive, err := parseActive(active)
			if err != nil {
				return err
			}

			client, done, err := createClient()
			if err != nil {
				return err
			}

			defer done()

			if err := requireV4(client, "signing-methods"); err != nil {
				return err
			}

			methods, err := client.SigningMethods().List(cmd.Context(), isActive)
			if err != nil {
				return fmt.Errorf("failed to list signing methods: %w", err)
			}

			written, err := renderStructured(cmd.OutOrStdout(), methods)
			if written || err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Name", "Active", "Display Name", "Required Properties")

			for _, m := range methods {
				_ = table.Append([]string{m.Name, formatBool(m.IsActive), displayName(m.DisplayNames), strings.Join(m.RequiredProperties, ", ")})
			}

			return renderTable(table)
		},
	}

	cmd.Flags().StringVar(&active, "active", "", "filter on activation (true or false)")

	return cmd
}

func parseActive(value string) (*bool, error) {
	if value == "" {
		return nil, nil //nolint:nilnil // no filter
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrInvalidActive, value)
	}

	return &parsed, nil
}

// displayName picks the English display name, or the first one by language.
func displayName(names map[string]string) string {
	if name, ok := names["en"]; ok {
		return name
	}

	languages := make([]string, 0, len(names))
	for language := range names {
		languages = append(languages, language)
	}

	if len(languages) == 0 {
		return constants.NotAvailable
	}

	sort.Strings(languages)

	return names[languages[0]]
}
