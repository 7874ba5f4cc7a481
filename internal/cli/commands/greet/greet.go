// Package greet provides the greet command.
package greet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/shellbridge/internal/cli/commands/internal"
	"github.com/mpyw/shellbridge/internal/cli/output"
	"github.com/mpyw/shellbridge/internal/command"
	greetcmd "github.com/mpyw/shellbridge/internal/greet"
)

// Dispatcher invokes registered commands.
type Dispatcher interface {
	Dispatch(ctx context.Context, name string, args json.RawMessage) (any, error)
}

// ErrInvalidName is returned for names that cannot travel as JSON text.
var ErrInvalidName = errors.New("name is not valid UTF-8")

// Runner executes the greet command.
type Runner struct {
	Commands Dispatcher
	Stdout   io.Writer
}

// Options holds the options for the greet command.
type Options struct {
	Name   string
	Output output.Format
}

// JSONOutput represents the JSON output structure for the greet command.
type JSONOutput struct {
	Name     string `json:"name"`
	Greeting string `json:"greeting"`
}

// Command returns the greet command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "greet",
		Usage:     "Greet someone through the command registry",
		ArgsUsage: "[name]",
		Description: `Call the greet command exactly as the front end does and print the result.
The name is used verbatim; omitting it greets the empty string.

EXAMPLES:
  shellbridge greet World                Print "Hello, World! You've been greeted from Go!"
  shellbridge greet --output=json World  Output as JSON`,
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
	if cmd.Args().Len() > 1 {
		return fmt.Errorf("usage: shellbridge greet [name]")
	}

	sh, err := cliinternal.NewShell(cmd)
	if err != nil {
		return err
	}

	r := &Runner{
		Commands: sh.Commands,
		Stdout:   cmd.Root().Writer,
	}

	return r.Run(ctx, Options{
		Name:   cmd.Args().First(),
		Output: output.ParseFormat(cmd.String("output")),
	})
}

// Run executes the greet command.
//
// Arguments are sent to the registry as JSON, exactly as the page sends them.
// JSON strings cannot hold invalid UTF-8, so such names are rejected instead
// of being silently rewritten.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	if !utf8.ValidString(opts.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, opts.Name)
	}

	args, err := json.Marshal(greetcmd.Args{Name: opts.Name})
	if err != nil {
		return err
	}

	result, err := r.Commands.Dispatch(ctx, string(command.Greet), args)
	if err != nil {
		return err
	}

	greeting, ok := result.(string)
	if !ok {
		return fmt.Errorf("unexpected greet result of type %T", result)
	}

	if opts.Output == output.FormatJSON {
		return output.JSON(r.Stdout, JSONOutput{Name: opts.Name, Greeting: greeting})
	}

	output.Println(r.Stdout, greeting)

	return nil
}
