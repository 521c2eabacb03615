package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/esig/internal/constants"
)

// NewAuditTrailCommand creates the audit-trail command.
func NewAuditTrailCommand() *cobra.Command {
	var (
		outputFile string
		language   string
	)

	cmd := &cobra.Command{
		Use:   "audit-trail PACKAGE_ID",
		Short: "Download the audit trail of a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFile == "" {
				return constants.ErrOutputFileRequired
			}

			client, done, err := createClient()
			if err != nil {
				return err
			}

			defer done()

			if err := requireV4(client, "audit-trail"); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), constants.DownloadHTTPTimeout)
			defer cancel()

			stream, err := client.AuditTrails().DownloadStream(ctx, args[0], language)
			if err != nil {
				return fmt.Errorf("failed to download audit trail: %w", err)
			}

			defer func() { _ = stream.Close() }()

			return streamDownload(cmd, outputFile, stream)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output-file", "f", "", "file to write the audit trail to")
	cmd.Flags().StringVarP(&language, "language", "l", constants.DefaultAuditTrailLanguage, "audit trail language")

	return cmd
}
