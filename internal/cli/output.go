package cli

import (
	"encoding/json"
	"fmt"

	"pdbctl/internal/errors"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// render writes v to the command's stdout in the selected output format.
// The text callback produces the human-readable form.
func (c *CLI) render(cmd *cobra.Command, v interface{}, text func() string) error {
	switch c.output {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return errors.Internal("Failed to encode JSON output", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return errors.Internal("Failed to encode YAML output", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
	case "text":
		fmt.Fprintln(cmd.OutOrStdout(), text())
	default:
		return errors.InvalidInput("output format must be text, json, or yaml")
	}
	return nil
}
