package cli

import (
	"fmt"
	"os"

	"github.com/marekjm/pocket/internal/commands"
	"github.com/marekjm/pocket/internal/config"
	"github.com/marekjm/pocket/internal/dispatch"
	"github.com/marekjm/pocket/internal/logging"
	"github.com/marekjm/pocket/internal/pocket"
	"github.com/marekjm/pocket/internal/render"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// newDispatcher loads the settings and wires the connection and handlers.
// Any settings problem is fatal here, before a command gets to run.
func newDispatcher(cmd *cobra.Command) (*dispatch.Dispatcher, error) {
	switch colorMode {
	case render.ColorAuto, render.ColorAlways, render.ColorNever:
	default:
		return nil, fmt.Errorf("invalid --color value %q: want auto, always or never", colorMode)
	}

	log := logging.New(cmd.ErrOrStderr(), verbose)

	path, err := config.Locate(configPath)
	if err != nil {
		return nil, err
	}
	settings, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", settings.Path).Msg("settings loaded")

	conn := pocket.NewConnection(settings.ConsumerKey, settings.AccessToken,
		pocket.WithBaseURL(settings.BaseURL),
		pocket.WithLogger(log),
	)
	env := &commands.Env{
		Conn:  conn,
		Out:   cmd.OutOrStdout(),
		Color: render.ColorEnabled(colorMode, os.Stdout),
		Log:   log,
	}

	d := dispatch.New(
		dispatch.WithDefaultCommand(settings.DefaultCommand),
		dispatch.WithLogger(log),
	)
	commands.Register(d, env)
	return d, nil
}

// runCommand is the RunE shared by the root command and every API command.
func runCommand(cmd *cobra.Command, args []string) error {
	d, err := newDispatcher(cmd)
	if err != nil {
		return err
	}
	return d.Dispatch(cmd.Context(), newInvocation(cmd, args))
}

// newInvocation converts a parsed cobra command into a dispatch.Invocation.
// The root command has no name of its own, so it dispatches the default.
func newInvocation(cmd *cobra.Command, args []string) *dispatch.Invocation {
	inv := &dispatch.Invocation{
		Operands: args,
		Options:  make(map[string]string),
	}
	if cmd.HasParent() {
		inv.Command = cmd.Name()
	}
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			inv.Options["--"+f.Name] = f.Value.String()
		}
	})
	return inv
}
