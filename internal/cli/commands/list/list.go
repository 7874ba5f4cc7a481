// Package list provides the commands command, which lists the registered
// commands.
package list

import (
	"context"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/shellbridge/internal/cli/commands/internal"
	"github.com/mpyw/shellbridge/internal/cli/output"
	"github.com/mpyw/shellbridge/internal/command"
)

// Lister returns the registered command names.
type Lister interface {
	Names() []command.Name
}

// Runner executes the commands command.
type Runner struct {
	Commands Lister
	Stdout   io.Writer
}

// Options holds the options for the commands command.
type Options struct {
	Output output.Format
}

// Command returns the commands command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "commands",
		Usage: "List the commands the front end can invoke",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output format: text (default) or json",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return fmt.Errorf("usage: shellbridge commands")
	}

	sh, err := cliinternal.NewShell(cmd)
	if err != nil {
		return err
	}

	r := &Runner{
		Commands: sh.Commands,
		Stdout:   cmd.Root().Writer,
	}

	return r.Run(ctx, Options{Output: output.ParseFormat(cmd.String("output"))})
}

// Run executes the commands command.
func (r *Runner) Run(_ context.Context, opts Options) error {
	names := lo.Map(r.Commands.Names(), func(n command.Name, _ int) string {
		return string(n)
	})

	if opts.Output == output.FormatJSON {
		return output.JSON(r.Stdout, names)
	}

	for _, name := range names {
		output.Println(r.Stdout, name)
	}

	return nil
}
