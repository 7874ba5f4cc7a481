//go:build (production || dev) && darwin

package gui

import (
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/mac"

	"github.com/mpyw/shellbridge/internal/greet"
)

func applyPlatformOptions(opts *options.App) {
	opts.Mac = &mac.Options{
		About: &mac.AboutInfo{
			Title:   opts.Title,
			Message: "Greeted from " + greet.Runtime,
		},
	}
}
