package cli

import "github.com/spf13/cobra"

func init() {
	getCmd.Flags().Int("count", 0, "Number of items to retrieve")
	getCmd.Flags().Bool("grep", false, "Print one \"<url> <title>\" line per item")
	getCmd.Flags().Bool("excerpt", false, "Show each item's excerpt, one sentence per line")
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Show your saved list",
	Args:  cobra.NoArgs,
	RunE:  runCommand,
}
