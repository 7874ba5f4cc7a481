// Package menu provides the menu command, which prints the application menu.
package menu

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/shellbridge/internal/cli/commands/internal"
	"github.com/mpyw/shellbridge/internal/cli/colors"
	"github.com/mpyw/shellbridge/internal/cli/output"
	"github.com/mpyw/shellbridge/internal/cli/pager"
	"github.com/mpyw/shellbridge/internal/menu"
)

// Runner executes the menu command.
type Runner struct {
	Menu   []menu.Submenu
	Stdout io.Writer
}

// Options holds the options for the menu command.
type Options struct {
	Output output.Format
}

// JSONItem represents one menu item in JSON output.
type JSONItem struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Accelerator string `json:"accelerator,omitempty"`
}

// JSONSubmenu represents one submenu in JSON output.
type JSONSubmenu struct {
	Label string     `json:"label"`
	Items []JSONItem `json:"items"`
}

// Command returns the menu command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "menu",
		Usage: "Show the application menu",
		Description: `Print the menu the desktop shell installs, with item ids and shortcuts.

EXAMPLES:
  shellbridge menu                 Show the menu tree
  shellbridge menu --output=json   Output as JSON`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-pager",
				Usage: "Disable pager output",
			},
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
		return fmt.Errorf("usage: shellbridge menu")
	}

	sh, err := cliinternal.NewShell(cmd)
	if err != nil {
		return err
	}

	opts := Options{Output: output.ParseFormat(cmd.String("output"))}
	noPager := cmd.Bool("no-pager") || opts.Output == output.FormatJSON

	return pager.WithPagerWriter(cmd.Root().Writer, noPager, func(w io.Writer) error {
		r := &Runner{
			Menu:   sh.Menu,
			Stdout: w,
		}

		return r.Run(ctx, opts)
	})
}

// Run executes the menu command.
func (r *Runner) Run(_ context.Context, opts Options) error {
	if opts.Output == output.FormatJSON {
		out := make([]JSONSubmenu, 0, len(r.Menu))
		for _, sub := range r.Menu {
			items := make([]JSONItem, 0, len(sub.Items))
			for _, item := range sub.Items {
				items = append(items, JSONItem{
					ID:          string(item.ID),
					Label:       item.Label,
					Accelerator: item.Accelerator,
				})
			}

			out = append(out, JSONSubmenu{Label: sub.Label, Items: items})
		}

		return output.JSON(r.Stdout, out)
	}

	for _, sub := range r.Menu {
		output.Println(r.Stdout, colors.Submenu(sub.Label))

		// Widths are measured on plain text; color is applied to padded cells.
		labelWidth := lo.Max(lo.Map(sub.Items, func(item menu.Item, _ int) int {
			return uniseg.StringWidth(item.Label)
		}))
		idWidth := lo.Max(lo.Map(sub.Items, func(item menu.Item, _ int) int {
			return uniseg.StringWidth(string(item.ID))
		}))

		for _, item := range sub.Items {
			line := "  " + pad(item.Label, labelWidth) + "  "
			if item.Accelerator == "" {
				line += colors.ItemID(string(item.ID))
			} else {
				line += colors.ItemID(pad(string(item.ID), idWidth)) + "  " + colors.Accelerator(item.Accelerator)
			}

			output.Println(r.Stdout, line)
		}
	}

	return nil
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-uniseg.StringWidth(s)))
}
