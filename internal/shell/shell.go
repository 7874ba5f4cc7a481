// Package shell assembles the command registry, the surface manager and the
// menu bridge into the pieces the desktop runtime and the CLI drive.
package shell

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mpyw/shellbridge/internal/command"
	"github.com/mpyw/shellbridge/internal/config"
	"github.com/mpyw/shellbridge/internal/greet"
	"github.com/mpyw/shellbridge/internal/menu"
	"github.com/mpyw/shellbridge/internal/surface"
)

// Shell holds the application's wiring. It is built once at startup.
type Shell struct {
	Config   config.Config
	Logger   zerolog.Logger
	Commands *command.Registry
	Surfaces *surface.Manager
	Bridge   *menu.Bridge
	Menu     []menu.Submenu
}

// New wires every command and menu item. The returned registry is sealed.
func New(cfg config.Config, logger zerolog.Logger) (*Shell, error) {
	commands := command.NewRegistry(logger)

	for _, register := range []func(*command.Registry) error{
		greet.Register,
	} {
		if err := register(commands); err != nil {
			return nil, fmt.Errorf("failed to register commands: %w", err)
		}
	}

	commands.Seal()

	surfaces := surface.NewManager()

	return &Shell{
		Config:   cfg,
		Logger:   logger,
		Commands: commands,
		Surfaces: surfaces,
		Bridge:   menu.NewBridge(surfaces, logger),
		Menu:     menu.Default(cfg.Devtools.Accelerator),
	}, nil
}
