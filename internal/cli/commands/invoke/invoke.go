// Package invoke provides the invoke command.
package invoke

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/shellbridge/internal/cli/commands/internal"
	"github.com/mpyw/shellbridge/internal/cli/output"
	"github.com/mpyw/shellbridge/internal/command"
)

// Dispatcher invokes registered commands.
type Dispatcher interface {
	Dispatch(ctx context.Context, name string, args json.RawMessage) (any, error)
}

// Runner executes the invoke command.
type Runner struct {
	Commands Dispatcher
	Stdout   io.Writer
	Stderr   io.Writer
}

// Options holds the options for the invoke command.
type Options struct {
	Command string
	Args    json.RawMessage
	Output  output.Format
}

// JSONOutput represents the JSON output structure for the invoke command.
type JSONOutput struct {
	Command string `json:"command"`
	Result  any    `json:"result"`
}

// Command returns the invoke command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "invoke",
		Usage:     "Call a registered command by name",
		ArgsUsage: "<command> [json-args]",
		Description: `Dispatch a command through the registry the way the front end does.
The optional second argument is the JSON argument object.

String results are printed as-is; other results are printed as JSON.

EXAMPLES:
  shellbridge invoke greet '{"name":"World"}'       Call greet
  shellbridge invoke --output=json greet '{}'       Output as JSON`,
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
	if cmd.Args().Len() < 1 || cmd.Args().Len() > 2 {
		return fmt.Errorf("usage: shellbridge invoke <command> [json-args]")
	}

	sh, err := cliinternal.NewShell(cmd)
	if err != nil {
		return err
	}

	r := &Runner{
		Commands: sh.Commands,
		Stdout:   cmd.Root().Writer,
		Stderr:   cliinternal.ErrWriter(cmd),
	}

	return r.Run(ctx, Options{
		Command: cmd.Args().Get(0),
		Args:    json.RawMessage(cmd.Args().Get(1)),
		Output:  output.ParseFormat(cmd.String("output")),
	})
}

// Run executes the invoke command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.Commands.Dispatch(ctx, opts.Command, opts.Args)
	if err != nil {
		if errors.Is(err, command.ErrUnknownCommand) {
			output.Hint(r.Stderr, "Run 'shellbridge commands' to list available commands")
		}

		return err
	}

	if opts.Output == output.FormatJSON {
		return output.JSON(r.Stdout, JSONOutput{Command: opts.Command, Result: result})
	}

	if s, ok := result.(string); ok {
		output.Println(r.Stdout, s)

		return nil
	}

	return output.JSON(r.Stdout, result)
}
