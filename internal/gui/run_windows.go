//go:build (production || dev) && windows

package gui

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

// WebView2 keeps its profile next to the executable unless told otherwise,
// which fails for installs under Program Files.
func applyPlatformOptions(opts *options.App) {
	opts.Windows = &windows.Options{
		Theme:               windows.SystemDefault,
		WebviewUserDataPath: filepath.Join(xdg.DataHome, "shellbridge", "webview2"),
	}
}
