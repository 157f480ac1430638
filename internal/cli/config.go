package cli

import (
	"errors"
	"fmt"

	"github.com/marekjm/pocket/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
	Long: `Read and write the settings file holding consumer_key, access_token,
and the optional base_url and default_command keys.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Locate(configPath)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Set a settings value",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := writablePath()
		if err != nil {
			return err
		}
		key, value := args[0], args[1]
		if err := config.Set(path, key, value); err != nil {
			return fmt.Errorf("setting %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", key, path)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Get a settings value",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Locate(configPath)
		if err != nil {
			return err
		}
		value, err := config.Get(path, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

// writablePath returns the settings file `config set` should write: the one
// in use, or the per-user default when none exists yet.
func writablePath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	path, err := config.Locate("")
	if errors.Is(err, config.ErrNotFound) {
		return config.DefaultPath(), nil
	}
	return path, err
}
