//go:build production || dev

package gui

import (
	"fmt"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/mpyw/shellbridge/internal/logging"
	"github.com/mpyw/shellbridge/internal/shell"
)

// Run starts the desktop shell and blocks until the window is closed.
func Run(sh *shell.Shell) error {
	if err := checkGUIDependencies(); err != nil {
		return err
	}

	app := NewApp(sh)

	appMenu, err := buildMenu(sh.Menu, app.handleMenu)
	if err != nil {
		return fmt.Errorf("failed to build menu: %w", err)
	}

	opts := &options.App{
		Title:  sh.Config.Window.Title,
		Width:  sh.Config.Window.Width,
		Height: sh.Config.Window.Height,
		AssetServer: &assetserver.Options{
			Assets: Assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		Menu:             appMenu,
		Logger:           logging.NewRuntimeLogger(sh.Logger),
		LogLevel:         logging.RuntimeLevel(sh.Logger.GetLevel()),
		OnStartup:        app.Startup,
		OnDomReady:       app.DomReady,
		OnShutdown:       app.Shutdown,
		Bind: []interface{}{
			app,
		},
	}
	applyPlatformOptions(opts)

	return wails.Run(opts)
}
