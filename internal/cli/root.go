package cli

import (
	"fmt"

	"github.com/marekjm/pocket/internal/branding"
	"github.com/marekjm/pocket/internal/render"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	configPath string
	colorMode  string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` command line client: save URLs to your list and read it back.

Credentials (consumer_key, access_token) are read from ./pocket.json or
~/.config/pocket/config.json. Running without a command executes the
default_command from the settings file, if one is set.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCommand,
}

func init() {
	// Shortened command names ("ad" for "add") resolve when unambiguous.
	cobra.EnablePrefixMatching = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default ./pocket.json, then ~/.config/pocket/config.json)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", render.ColorAuto, "Colorize output: auto, always or never")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests and dispatch decisions to stderr")
	rootCmd.SetVersionTemplate(fmt.Sprintf("%s command line client {{.Version}}\n", branding.CLIName()))
}

// Execute runs the root command with build info injected via ldflags.
// Errors are reported on stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = displayVersion(version)
	rootCmd.SetOut(colorable.NewColorableStdout())
	return execute()
}

// execute runs the command tree and reports a failure once on its stderr.
func execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "error: %v\n", err)
		return err
	}
	return nil
}
