// Package cli implements the tint command line interface.
package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opencode-ai/tint/internal/config"
	"github.com/opencode-ai/tint/internal/logging"
	"github.com/opencode-ai/tint/internal/theme"
)

var rootCmd = &cobra.Command{
	Use:   "tint",
	Short: "Theme compiler for terminal UIs",
	Long: "tint expands a small semantic theme document into the complete\n" +
		"per-component style sheet consumed by the rendering layer.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(viper.GetString("log-level"), os.Stderr)
	},
}

func init() {
	rootCmd.PersistentFlags().String("theme", "", "path to a theme file (default: search paths)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (trace|debug|info|warn|error)")

	viper.SetEnvPrefix("TINT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// resolveTheme loads the theme named by flag/env/argument, falling back to
// the search paths and finally to the default theme.
func resolveTheme(args []string) (theme.Theme, error) {
	path := viper.GetString("theme")
	if len(args) > 0 {
		path = args[0]
	}
	if path != "" {
		return config.LoadTheme(path)
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	return config.LoadThemeFromSearchPaths(cwd)
}
