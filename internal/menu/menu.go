// Package menu defines the application menu and the bridge that turns menu
// activations into actions against the main display surface.
package menu

// ItemID identifies a menu item.
type ItemID string

const (
	// ToggleDevtools opens or closes the developer tools of the main window.
	ToggleDevtools ItemID = "toggle-devtools"
)

// DefaultAccelerator is the keyboard shortcut bound to ToggleDevtools when
// the configuration does not name one.
const DefaultAccelerator = "CmdOrCtrl+Shift+I"

// ParseItemID converts a raw menu item id into an ItemID.
// Returns false for ids this program does not handle.
func ParseItemID(s string) (ItemID, bool) {
	switch ItemID(s) {
	case ToggleDevtools:
		return ToggleDevtools, true
	default:
		return "", false
	}
}

// Item is a clickable menu entry.
type Item struct {
	ID          ItemID
	Label       string
	Accelerator string // e.g. "CmdOrCtrl+Shift+I"; empty for none
}

// Submenu is a top-level menu holding items.
type Submenu struct {
	Label string
	Items []Item
}

// Default returns the application menu: a single "View" submenu with the
// devtools toggle bound to accelerator.
func Default(accelerator string) []Submenu {
	return []Submenu{
		{
			Label: "View",
			Items: []Item{
				{ID: ToggleDevtools, Label: "Toggle Devtools", Accelerator: accelerator},
			},
		},
	}
}
