package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/esig/internal/constants"
	"github.com/fivetwenty-io/esig/pkg/esig"
)

// NewPackagesCommand creates the package command group.
func NewPackagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "packages",
		Aliases: []string{"package", "pkg"},
		Short:   "Manage signing packages",
		Long:    "Inspect, download, revoke and delete signing packages",
	}

	cmd.AddCommand(newPackagesGetCommand())
	cmd.AddCommand(newPackagesStatusCommand())
	cmd.AddCommand(newPackagesSetStatusCommand())
	cmd.AddCommand(newPackagesDownloadCommand())
	cmd.AddCommand(newPackagesDeleteCommand())

	return cmd
}

func newPackagesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PACKAGE_ID",
		Short: "Get package details",
		Long:  "Display a package with its documents and stakeholders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, done, err := createClient()
			if err != nil {
				return err
			}

			defer done()

			if err := requireV4(client, "packages get"); err != nil {
				return err
			}

			pkg, err := client.Packages().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get package: %w", err)
			}

			esig.SortPackage(pkg)

			written, err := renderStructured(cmd.OutOrStdout(), pkg)
			if written || err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Property", "Value")
			_ = table.Append("ID", pkg.ID)
			_ = table.Append("Name", pkg.Name)
			_ = table.Append("Status", string(pkg.Status))
			_ = table.Append("Initiator", pkg.Initiator)
			_ = table.Append("Created", pkg.CreationDate)
			_ = table.Append("Expires", orNotAvailable(pkg.ExpiryDate))
			_ = table.Append("External Reference", orNotAvailable(pkg.ExternalReference))
			_ = table.Append("Documents", strconv.Itoa(len(pkg.Documents)))
			_ = table.Append("Stakeholders", strconv.Itoa(len(pkg.Stakeholders)))

			for _, warning := range pkg.Warnings {
				_ = table.Append("Warning", warning.Message)
			}

			return renderTable(table)
		},
	}
}

func newPackagesStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status PACKAGE_ID",
		Short: "Get package status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, done, err := createClient()
			if err != nil {
				return err
			}

			defer done()

			if legacy := client.Legacy(); legacy != nil {
				return runLegacyStatus(cmd, legacy, args[0])
			}

			status, err := client.Packages().GetStatus(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get package status: %w", err)
			}

			written, err := renderStructured(cmd.OutOrStdout(), map[string]esig.PackageStatus{"Status": status})
			if written || err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), status)

			return err
		},
	}
}

func runLegacyStatus(cmd *cobra.Command, legacy esig.LegacyPackagesClient, packageID string) error {
	status, err := legacy.GetStatus(cmd.Context(), packageID)
	if err != nil {
		return fmt.Errorf("failed to get package status: %w", err)
	}

	written, err := renderStructured(cmd.OutOrStdout(), status)
	if written || err != nil {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Stakeholder", "Actor", "Status")

	for _, stakeholder := range status.Stakeholders {
		for _, actor := range stakeholder.Actors {
			_ = table.Append([]string{stakeholder.StakeholderID, string(actor.Type), actor.ActorStatus})
		}
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", status.PackageName, status.PackageStatus); err != nil {
		return err
	}

	return renderTable(table)
}

func newPackagesSetStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status PACKAGE_ID STATUS",
		Short: "Send or revoke a package",
		Long:  "Set the package status to Pending (send it to the stakeholders) or Revoked",
		Args:  cobra.ExactArgs(2), //nolint:mnd // package id and status
		RunE: func(cmd *cobra.Command, args []string) error {
			status := esig.PackageStatus(args[1])
			if status != esig.PackageStatusPending && status != esig.PackageStatusRevoked {
				return fmt.Errorf("%w: %s", constants.ErrInvalidStatusArg, args[1])
			}

			client, done, err := createClient()
			if err != nil {
				return err
			}

			defer done()

			if legacy := client.Legacy(); legacy != nil {
				err = legacy.SetStatus(cmd.Context(), args[0], status)
			} else {
				err = client.Packages().UpdateStatus(cmd.Context(), args[0], status)
			}

			if err != nil {
				return fmt.Errorf("failed to set package status: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Package %s is now %s\n", args[0], status)

			return err
		},
	}
}

func newPackagesDownloadCommand() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "download PACKAGE_ID",
		Short: "Download a package archive",
		Long:  "Download the signed documents of a package as a zip archive",
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

			ctx, cancel := context.WithTimeout(cmd.Context(), constants.DownloadHTTPTimeout)
			defer cancel()

			if legacy := client.Legacy(); legacy != nil {
				data, err := legacy.Download(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to download package: %w", err)
				}

				return writeDownload(cmd, outputFile, data)
			}

			stream, err := client.Packages().DownloadStream(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to download package: %w", err)
			}

			defer func() { _ = stream.Close() }()

			return streamDownload(cmd, outputFile, stream)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output-file", "f", "", "file to write the archive to")

	return cmd
}

func newPackagesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete PACKAGE_ID",
		Short: "Delete a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Refusing to delete package %s without --force\n", args[0])

				return err
			}

			client, done, err := createClient()
			if err != nil {
				return err
			}

			defer done()

			if legacy := client.Legacy(); legacy != nil {
				err = legacy.Delete(cmd.Context(), args[0])
			} else {
				err = client.Packages().Delete(cmd.Context(), args[0])
			}

			if err != nil {
				return fmt.Errorf("failed to delete package: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Package %s deleted\n", args[0])

			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")

	return cmd
}

func writeDownload(cmd *cobra.Command, path string, data []byte) error {
	if err := os.WriteFile(path, data, constants.DownloadFilePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", len(data), path)

	return err
}

func streamDownload(cmd *cobra.Command, path string, stream io.Reader) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.DownloadFilePerm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	written, copyErr := io.Copy(file, stream)
	closeErr := file.Close()

	if copyErr != nil {
		return fmt.Errorf("failed to write %s: %w", path, copyErr)
	}

	if closeErr != nil {
		return fmt.Errorf("failed to write %s: %w", path, closeErr)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", written, path)

	return err
}
