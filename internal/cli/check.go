package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/tint/internal/styles"
	"github.com/opencode-ai/tint/internal/theme"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a theme document",
	Long: "Load a theme document, report schema violations or unsupported\n" +
		"colors, and confirm that the full style sheet derives from it.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolveTheme(args)
		if err != nil {
			var schemaErr *theme.SchemaViolationError
			if errors.As(err, &schemaErr) {
				return fmt.Errorf("%w (fix or remove the key in your theme file)", err)
			}
			return err
		}

		styles.Derive(t)
		fmt.Fprintf(cmd.OutOrStdout(), "theme ok: %d style slots derived\n", len(styles.Slots()))
		return nil
	},
}
