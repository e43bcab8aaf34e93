package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/fivetwenty-io/hypergraph/internal/constants"
	"github.com/fivetwenty-io/hypergraph/pkg/graph"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// writeValue renders a normalized value in the requested format. An empty
// format means table.
func writeValue(out io.Writer, format string, value any) error {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", constants.JSONIndent)
		encoder.SetEscapeHTML(false)

		err := encoder.Encode(graph.Plain(value))
		if err != nil {
			return fmt.Errorf("failed to encode output as JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)

		err := encoder.Encode(graph.Plain(value))
		if err != nil {
			return fmt.Errorf("failed to encode output as YAML: %w", err)
		}

		return encoder.Close()
	case constants.FormatTable, "":
		return writeTable(out, value)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownFormat, format)
	}
}

func writeTable(out io.Writer, value any) error {
	table := tablewriter.NewWriter(out)

	switch v := value.(type) {
	case graph.Object:
		table.Header("Property", "Value")

		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, string(key))
		}

		sort.Strings(keys)

		for _, key := range keys {
			_ = table.Append([]string{key, formatCell(v[graph.Key(key)])})
		}
	case graph.Array:
		table.Header("#", "Value")

		for i, item := range v {
			_ = table.Append([]string{strconv.Itoa(i), formatCell(item)})
		}
	default:
		_, err := fmt.Fprintln(out, formatCell(value))

		return err
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// formatCell renders nested objects and arrays as compact JSON.
func formatCell(value any) string {
	switch v := value.(type) {
	case nil:
		return constants.NotAvailable
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	case graph.Object, graph.Array:
		data, err := json.Marshal(graph.Plain(v))
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(data)
	default:
		return fmt.Sprint(v)
	}
}
