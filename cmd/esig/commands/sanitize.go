package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/esig/pkg/esig"
)

// NewSanitizeCommand creates the sanitize command.
func NewSanitizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize NAME...",
		Short: "Sanitize document and package names",
		Long: `Print each name as the platform accepts it: characters outside Latin-9 are
removed, trailing dots and spaces are dropped, reserved device names are
cleared and the result is cut to 150 characters.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			type sanitizedName struct {
				Input     string `json:"input"     yaml:"input"`
				Sanitized string `json:"sanitized" yaml:"sanitized"`
				Changed   bool   `json:"changed"   yaml:"changed"`
			}

			results := make([]sanitizedName, 0, len(args))
			for _, name := range args {
				sanitized := esig.SanitizeName(name)
				results = append(results, sanitizedName{Input: name, Sanitized: sanitized, Changed: sanitized != name})
			}

			written, err := renderStructured(cmd.OutOrStdout(), results)
			if written || err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Input", "Sanitized", "Changed")

			for _, r := range results {
				_ = table.Append([]string{fmt.Sprintf("%q", r.Input), fmt.Sprintf("%q", r.Sanitized), formatBool(r.Changed)})
			}

			return renderTable(table)
		},
	}
}
