package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/esig/internal/constants"
	"github.com/fivetwenty-io/esig/pkg/esig"
)

// renderStructured writes v as JSON or YAML when one of those formats is
// selected. It reports whether it wrote anything.
func renderStructured(w io.Writer, v interface{}) (bool, error) {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return true, encoder.Encode(v)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer func() { _ = encoder.Close() }()

		return true, encoder.Encode(v)
	default:
		return false, nil
	}
}

func renderTable(table *tablewriter.Table) error {
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func orNotAvailable[T any](n esig.Nullable[T]) string {
	if n.IsNull() {
		return constants.NotAvailable
	}

	return n.String()
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}
