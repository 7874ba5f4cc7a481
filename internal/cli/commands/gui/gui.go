// Package gui provides the gui command, which starts the desktop shell.
package gui

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/shellbridge/internal/cli/commands/internal"
	"github.com/mpyw/shellbridge/internal/gui"
)

// Command returns the gui command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "gui",
		Usage: "Launch the desktop shell",
		Description: `Open the main window with the greet command bound to the page and
the View > Toggle Devtools menu installed.

Only desktop builds (-tags production or dev) include the shell.`,
		Action: action,
	}
}

func action(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return fmt.Errorf("usage: shellbridge gui")
	}

	sh, err := cliinternal.NewShell(cmd)
	if err != nil {
		return err
	}

	return gui.Run(sh)
}
