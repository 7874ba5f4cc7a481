// Package colors provides pre-configured color functions for CLI output.
package colors

import "github.com/fatih/color"

//nolint:gochecknoglobals // Immutable color definitions initialized at package load
var (
	// Warning formats text in yellow for warning messages.
	Warning = color.New(color.FgYellow).SprintFunc()

	// Error formats text in red for error messages.
	Error = color.New(color.FgRed).SprintFunc()

	// Info formats text in cyan for informational messages.
	Info = color.New(color.FgCyan).SprintFunc()

	// FieldLabel formats field labels (e.g., "Path:", "Title:") in cyan.
	FieldLabel = color.New(color.FgCyan).SprintFunc()

	// Submenu formats top-level menu labels in bold.
	Submenu = color.New(color.Bold).SprintFunc()

	// ItemID formats menu item and command identifiers in green.
	ItemID = color.New(color.FgGreen).SprintFunc()

	// Accelerator formats keyboard shortcuts in yellow.
	Accelerator = color.New(color.FgYellow).SprintFunc()
)
