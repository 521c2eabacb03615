package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/esig/internal/constants"
	"github.com/fivetwenty-io/esig/pkg/esig"
)

// NewDocumentsCommand creates the document command group.
func NewDocumentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "documents",
		Aliases: []string{"document", "doc"},
		Short:   "Inspect package documents",
	}

	cmd.AddCommand(newDocumentsListCommand())
	cmd.AddCommand(newDocumentsDownloadCommand())

	return cmd
}

func newDocumentsListCommand() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list PACKAGE_ID",
		Short: "List the documents of a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, done, err := createClient()
			if err != nil {
				return err
			}

			defer done()

			if err := requireV4(client, "documents list"); err != nil {
				return err
			}

			documents, err := client.Documents().List(cmd.Context(), args[0], esig.DocumentStatus(status))
			if err != nil {
				return fmt.Errorf("failed to list documents: %w", err)
			}

			written, err := renderStructured(cmd.OutOrStdout(), documents)
			if written || err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Index", "ID", "Name", "Status", "Elements", "External Reference")

			for i := range documents {
				d := &documents[i]
				_ = table.Append([]string{
					strconv.Itoa(esig.DocumentOrderIndex(d)),
					d.ID,
					d.Name,
					string(d.Status),
					strconv.Itoa(len(d.Elements)),
					orNotAvailable(d.ExternalReference),
				})
			}

			return renderTable(table)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "only list documents with this status (draft, pending, inProgress, ...)")

	return cmd
}

func newDocumentsDownloadCommand() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "download PACKAGE_ID DOCUMENT_ID",
		Short: "Download a document",
		Args:  cobra.ExactArgs(2), //nolint:mnd // package id and document id
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFile == "" {
				return constants.ErrOutputFileRequired
			}

			client, done, err := createClient()
			if err != nil {
				return err
			}

			defer done()

			if err := requireV4(client, "documents download"); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), constants.DownloadHTTPTimeout)
			defer cancel()

			stream, err := client.Documents().DownloadStream(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to download document: %w", err)
			}

			defer func() { _ = stream.Close() }()

			return streamDownload(cmd, outputFile, stream)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output-file", "f", "", "file to write the document to")

	return cmd
}
