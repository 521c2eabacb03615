package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/esig/pkg/esig"
)

// NewUnitsCommand creates the units command group.
func NewUnitsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units",
		Short: "Convert element coordinates",
		Long:  "Convert between millimeters and the PDF points used by element locations and dimensions",
	}

	cmd.AddCommand(newConvertCommand("mm-to-pt MILLIMETERS", "Convert millimeters to points", esig.MillimetersToPoints))
	cmd.AddCommand(newConvertCommand("pt-to-mm POINTS", "Convert points to millimeters", esig.PointsToMillimeters))

	return cmd
}

func newConvertCommand(use, short string, convert func(float64) float64) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid number %q: %w", args[0], err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(convert(value), 'f', -1, 64))

			return err
		},
	}
}
