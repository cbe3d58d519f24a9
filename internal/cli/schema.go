package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/tint/internal/theme"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the theme document JSON Schema",
	Long: "Print a JSON Schema describing the theme file format. The schema\n" +
		"advertises only the named colors; the parser additionally accepts\n" +
		"hex RGB and ANSI-256 literals.",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := theme.SchemaJSON()
		if err != nil {
			return fmt.Errorf("generate schema: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}
