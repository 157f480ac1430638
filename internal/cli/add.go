package cli

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <url> [title]",
	Short: "Save a URL to your list",
	Long: `Save a URL to your list, optionally with a title.

Leading and trailing whitespace is stripped from both. Nothing is printed on
success.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCommand,
}
