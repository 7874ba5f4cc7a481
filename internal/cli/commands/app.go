// Package commands provides the command-line interface for shellbridge.
package commands

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/shellbridge/internal/cli/commands/config"
	"github.com/mpyw/shellbridge/internal/cli/commands/greet"
	"github.com/mpyw/shellbridge/internal/cli/commands/gui"
	cliinternal "github.com/mpyw/shellbridge/internal/cli/commands/internal"
	"github.com/mpyw/shellbridge/internal/cli/commands/invoke"
	"github.com/mpyw/shellbridge/internal/cli/commands/list"
	"github.com/mpyw/shellbridge/internal/cli/commands/menu"
	appconfig "github.com/mpyw/shellbridge/internal/config"
)

// MakeApp creates a new CLI application instance.
func MakeApp() *cli.Command {
	return &cli.Command{
		Name:    "shellbridge",
		Usage:   "Desktop shell bridging front-end commands and menu events",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    cliinternal.FlagConfig,
				Usage:   "Path to the configuration file",
				Sources: cli.EnvVars(appconfig.EnvPath),
			},
			&cli.StringFlag{
				Name:  cliinternal.FlagLogLevel,
				Usage: "Log level: trace, debug, info, warn, error",
			},
			&cli.StringFlag{
				Name:  cliinternal.FlagLogFormat,
				Usage: "Log format: console or json",
			},
		},
		Commands: []*cli.Command{
			gui.Command(),
			greet.Command(),
			invoke.Command(),
			list.Command(),
			menu.Command(),
			config.Command(),
		},
		CommandNotFound: func(_ context.Context, cmd *cli.Command, command string) {
			_ = cli.ShowAppHelp(cmd)
			w := lo.CoalesceOrEmpty(cmd.Root().ErrWriter, cmd.Root().Writer)
			_, _ = fmt.Fprintf(w, "\nCommand not found: %s\n", command)
		},
	}
}

// App is the main CLI application.
var App = MakeApp()
