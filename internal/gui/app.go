//go:build production || dev

// Package gui provides the Wails-based desktop shell.
package gui

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/mpyw/shellbridge/internal/greet"
	"github.com/mpyw/shellbridge/internal/shell"
	"github.com/mpyw/shellbridge/internal/surface"
)

// =============================================================================
// App Struct
// =============================================================================

// App is bound to the front end. Its exported methods are the commands the
// page can call.
//
//nolint:containedctx // Wails apps require storing context from Startup
type App struct {
	ctx context.Context

	shell  *shell.Shell
	logger zerolog.Logger

	// main window surface, attached between Startup and Shutdown
	window *webviewSurface
}

// NewApp creates a new App bound to sh.
func NewApp(sh *shell.Shell) *App {
	return &App{
		shell:  sh,
		logger: sh.Logger.With().Str("component", "gui").Logger(),
	}
}

// =============================================================================
// Lifecycle
// =============================================================================

// Startup is called when the app starts. It attaches the main window.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	a.attach(newWebviewSurface(surface.Main, runtimeEvents{ctx: ctx}, a.logger))
}

// DomReady is called each time the page has loaded. It opens the devtools
// panel when the configuration asks for it on startup.
func (a *App) DomReady(_ context.Context) {
	if a.window == nil {
		return
	}

	a.window.markReady()

	if !a.shell.Config.Devtools.OpenOnStartup {
		return
	}

	if err := a.window.OpenDevtools(); err != nil {
		a.logger.Warn().Err(err).Msg("failed to open devtools on startup")
	}
}

// Shutdown is called when the app is about to quit. It detaches the main
// window so that late menu events find no surface.
func (a *App) Shutdown(_ context.Context) {
	if a.window == nil {
		return
	}

	a.window.close()
	a.shell.Surfaces.Detach(a.window)
	a.window = nil
}

func (a *App) attach(w *webviewSurface) {
	a.window = w
	a.shell.Surfaces.Attach(w)
}

// =============================================================================
// Commands
// =============================================================================

// Greet returns the greeting for name.
func (a *App) Greet(name string) string {
	return greet.Greet(name)
}

// Invoke dispatches a registered command by name with its JSON argument
// object. Unknown commands are reported to the page as a failed call.
func (a *App) Invoke(command string, args json.RawMessage) (any, error) {
	return a.shell.Commands.Dispatch(a.context(), command, args)
}

// =============================================================================
// Menu
// =============================================================================

// handleMenu applies the menu item id. Failures are logged by the bridge and
// never propagate into the runtime.
func (a *App) handleMenu(id string) {
	_ = a.shell.Bridge.Handle(id)
}

func (a *App) context() context.Context {
	if a.ctx == nil {
		return context.Background()
	}

	return a.ctx
}

// runtimeEvents publishes and subscribes through the wails event bus.
//
//nolint:containedctx // the wails runtime is addressed through its context
type runtimeEvents struct {
	ctx context.Context
}

func (e runtimeEvents) Emit(name string, data ...any) {
	runtime.EventsEmit(e.ctx, name, data...)
}

func (e runtimeEvents) On(name string, callback func(data ...any)) func() {
	return runtime.EventsOn(e.ctx, name, callback)
}
