package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var minimumLevel string

var rootCmd = &cobra.Command{
	Use:   "stylelog",
	Short: "stylelog - leveled logging for stylesheet compile passes",
	Long: `stylelog replays log scripts through the stylesheet logger and renders
the accumulated history and the level help table as CSS blocks.

The minimum level comes from --level, or from STYLELOG_LEVEL (a .env file
in the working directory is honored), and defaults to INFO. Messages at
ERROR or FATAL that pass the filter fail the invocation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	// Optional .env in the working directory; absence is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&minimumLevel, "level", "",
		"minimum level: DEBUG, INFO, WARN, ERROR, FATAL, ALL or OFF")
}
