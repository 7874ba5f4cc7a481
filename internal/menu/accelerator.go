package menu

import (
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
)

// ParseAccelerator converts a shortcut such as "CmdOrCtrl+Shift+I" into a
// wails accelerator. An empty shortcut yields nil, meaning no shortcut.
func ParseAccelerator(shortcut string) (*keys.Accelerator, error) {
	if shortcut == "" {
		return nil, nil //nolint:nilnil // nil accelerator is the valid "no shortcut" value
	}

	return keys.Parse(shortcut)
}

// ValidateAccelerator reports whether shortcut can be parsed.
func ValidateAccelerator(shortcut string) error {
	_, err := ParseAccelerator(shortcut)

	return err
}
