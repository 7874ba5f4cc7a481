//go:build !production && !dev

package gui

import (
	"errors"

	"github.com/mpyw/shellbridge/internal/shell"
)

// ErrUnavailable is returned by Run in builds without the desktop shell.
var ErrUnavailable = errors.New("GUI is not available in this build. Please use a desktop build (-tags production) or run 'wails dev'")

// Run returns ErrUnavailable when GUI is not available in this build.
func Run(_ *shell.Shell) error {
	return ErrUnavailable
}
