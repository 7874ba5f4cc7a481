//go:build (production || dev) && linux

package gui

import (
	"errors"
	"os/exec"
	"strings"
)

// ErrMissingGUILibs is returned when required GUI libraries are not installed.
var ErrMissingGUILibs = errors.New(`GUI dependencies not found

The GUI requires GTK3 and WebKit2GTK to be installed.
See: https://wails.io/docs/guides/linux-distro-support/

After installing the dependencies, try running the GUI again.
Alternatively, use the headless commands (shellbridge greet, shellbridge invoke)`)

// checkGUIDependencies looks for webkit2gtk in the dynamic linker cache.
// When ldconfig is missing or fails, the runtime reports the problem itself.
func checkGUIDependencies() error {
	ldconfig, err := exec.LookPath("ldconfig")
	if err != nil {
		return nil
	}

	out, err := exec.Command(ldconfig, "-p").Output()
	if err != nil || strings.Contains(string(out), "libwebkit2gtk") {
		return nil
	}

	return ErrMissingGUILibs
}
