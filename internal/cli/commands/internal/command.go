// Package internal provides shared utilities for CLI commands.
package internal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/shellbridge/internal/cli/output"
	"github.com/mpyw/shellbridge/internal/config"
	"github.com/mpyw/shellbridge/internal/logging"
	"github.com/mpyw/shellbridge/internal/shell"
)

// Global flag names shared by every command.
const (
	FlagConfig    = "config"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
)

// CommandNotFound is a shared handler for unknown subcommands.
// It displays the command help and an error message.
func CommandNotFound(_ context.Context, cmd *cli.Command, command string) {
	_ = cli.ShowSubcommandHelp(cmd)
	w := lo.CoalesceOrEmpty(cmd.Root().ErrWriter, cmd.Root().Writer)
	output.Printf(w, "\nUnknown command: %s\n", command)
}

// ErrWriter returns the writer diagnostics go to.
func ErrWriter(cmd *cli.Command) io.Writer {
	return lo.CoalesceOrEmpty(cmd.Root().ErrWriter, io.Writer(os.Stderr))
}

// LoadConfig reads the configuration selected by the global flags and
// applies the logging overrides.
func LoadConfig(cmd *cli.Command) (config.Config, string, error) {
	path := config.Path(cmd.String(FlagConfig))

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, path, err
	}

	if level := cmd.String(FlagLogLevel); level != "" {
		cfg.Log.Level = level
	}

	if format := cmd.String(FlagLogFormat); format != "" {
		cfg.Log.Format = format
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, path, err
	}

	return cfg, path, nil
}

// NewShell builds the application shell from the global flags.
// Diagnostics are logged to the command's error writer.
func NewShell(cmd *cli.Command) (*shell.Shell, error) {
	cfg, _, err := LoadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(ErrWriter(cmd), logging.FromConfig(cfg.Log))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return shell.New(cfg, logger)
}
