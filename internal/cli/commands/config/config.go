// Package config provides the config command.
package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/shellbridge/internal/cli/commands/internal"
	"github.com/mpyw/shellbridge/internal/cli/editor"
	"github.com/mpyw/shellbridge/internal/cli/output"
	appconfig "github.com/mpyw/shellbridge/internal/config"
)

// Runner executes the config subcommands.
type Runner struct {
	Stdout     io.Writer
	Stderr     io.Writer
	OpenEditor editor.OpenFunc
}

// Command returns the config command with its subcommands.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Inspect the configuration file",
		Commands: []*cli.Command{
			{
				Name:   "path",
				Usage:  "Print the configuration file path",
				Action: pathAction,
			},
			{
				Name:  "show",
				Usage: "Print the effective configuration",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "ini",
						Usage: "Print as INI, suitable for saving as the configuration file",
					},
				},
				Action: showAction,
			},
			{
				Name:  "edit",
				Usage: "Edit the configuration file in $VISUAL or $EDITOR",
				Description: `Open the effective configuration in an editor. The result is validated
before it is written; an invalid file is rejected and nothing is saved.`,
				Action: editAction,
			},
		},
		CommandNotFound: cliinternal.CommandNotFound,
	}
}

func pathAction(_ context.Context, cmd *cli.Command) error {
	_, path, err := cliinternal.LoadConfig(cmd)
	if err != nil {
		return err
	}

	r := &Runner{Stdout: cmd.Root().Writer}

	return r.Path(path, fileExists(path))
}

func showAction(_ context.Context, cmd *cli.Command) error {
	cfg, _, err := cliinternal.LoadConfig(cmd)
	if err != nil {
		return err
	}

	r := &Runner{Stdout: cmd.Root().Writer}

	if cmd.Bool("ini") {
		return r.ShowINI(cfg)
	}

	r.Show(cfg)

	return nil
}

func editAction(_ context.Context, cmd *cli.Command) error {
	cfg, path, err := cliinternal.LoadConfig(cmd)
	if err != nil {
		return err
	}

	r := &Runner{
		Stdout:     cmd.Root().Writer,
		Stderr:     cliinternal.ErrWriter(cmd),
		OpenEditor: editor.Open,
	}

	return r.Edit(path, cfg)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

// Path prints the configuration path and whether it exists.
func (r *Runner) Path(path string, exists bool) error {
	if exists {
		output.Println(r.Stdout, path)
	} else {
		output.Printf(r.Stdout, "%s (not found, using defaults)\n", path)
	}

	return nil
}

// Show prints cfg as labeled fields.
func (r *Runner) Show(cfg appconfig.Config) {
	out := output.New(r.Stdout)
	out.Field("Title", cfg.Window.Title)
	out.Field("Size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height))
	out.Field("Devtools shortcut", cfg.Devtools.Accelerator)
	out.Field("Devtools on startup", strconv.FormatBool(cfg.Devtools.OpenOnStartup))
	out.Field("Log level", cfg.Log.Level)
	out.Field("Log format", cfg.Log.Format)
}

// ShowINI prints cfg in configuration file syntax.
func (r *Runner) ShowINI(cfg appconfig.Config) error {
	text, err := cfg.Encode()
	if err != nil {
		return err
	}

	output.Printf(r.Stdout, "%s", text)

	return nil
}

// Edit opens cfg in the editor and saves the validated result at path.
// Nothing is written when the content is left untouched.
func (r *Runner) Edit(path string, cfg appconfig.Config) error {
	current, err := cfg.Encode()
	if err != nil {
		return err
	}

	edited, err := r.OpenEditor(current)
	if err != nil {
		return fmt.Errorf("failed to run editor: %w", err)
	}

	if strings.TrimSpace(edited) == strings.TrimSpace(current) {
		output.Warning(r.Stderr, "no changes made")

		return nil
	}

	if _, err := appconfig.Parse([]byte(edited)); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(edited), 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	output.Printf(r.Stdout, "Saved %s\n", path)

	return nil
}
