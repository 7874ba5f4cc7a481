//go:build production || dev

package gui

import (
	goruntime "runtime"

	wailsmenu "github.com/wailsapp/wails/v2/pkg/menu"

	"github.com/mpyw/shellbridge/internal/menu"
)

// buildMenu converts the application menu into a wails menu whose items
// call handle with their id. On macOS the standard App and Edit menus come
// first so that the usual shortcuts keep working.
func buildMenu(submenus []menu.Submenu, handle func(id string)) (*wailsmenu.Menu, error) {
	root := wailsmenu.NewMenu()

	if goruntime.GOOS == "darwin" {
		root.Append(wailsmenu.AppMenu())
		root.Append(wailsmenu.EditMenu())
	}

	for _, sub := range submenus {
		m := root.AddSubmenu(sub.Label)

		for _, item := range sub.Items {
			acc, err := menu.ParseAccelerator(item.Accelerator)
			if err != nil {
				return nil, err
			}

			id := string(item.ID)
			m.AddText(item.Label, acc, func(_ *wailsmenu.CallbackData) {
				handle(id)
			})
		}
	}

	return root, nil
}
