// Package terminal provides terminal-related utilities.
package terminal

import (
	"io"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Fder is an interface for types that have a file descriptor.
type Fder interface {
	Fd() uintptr
}

// GetSize returns the terminal width and height for the given file descriptor.
// This is a variable to allow mocking in tests.
//
//nolint:gochecknoglobals // Required for test mocking
var GetSize = term.GetSize

// IsTTY checks if the file descriptor is a TTY.
// This is a variable to allow mocking in tests.
//
//nolint:gochecknoglobals // Required for test mocking
var IsTTY = isatty.IsTerminal

// IsTerminalWriter returns true if the given writer is a terminal.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(Fder)
	if !ok {
		return false
	}

	return IsTTY(f.Fd())
}

// Height returns the number of rows of the terminal behind w.
// Returns false when w is not a terminal or its size is unknown.
func Height(w io.Writer) (int, bool) {
	if !IsTerminalWriter(w) {
		return 0, false
	}

	_, height, err := GetSize(int(w.(Fder).Fd())) //nolint:forcetypeassert // checked by IsTerminalWriter
	if err != nil || height <= 0 {
		return 0, false
	}

	return height, true
}
