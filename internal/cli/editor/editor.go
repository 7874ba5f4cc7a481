// Package editor provides functionality for opening external editors.
package editor

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/samber/lo"
)

// OpenFunc is the type for editor functions.
type OpenFunc func(content string) (string, error)

// Command returns the editor to run: VISUAL, then EDITOR, then notepad on
// Windows or vi elsewhere.
func Command() string {
	return lo.CoalesceOrEmpty(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		lo.Ternary(runtime.GOOS == "windows", "notepad", "vi"),
	)
}

// Open opens content in an external editor and returns the edited result.
// The temporary file carries the .ini extension so editors pick the right
// syntax highlighting.
func Open(content string) (string, error) {
	tmpFile, err := os.CreateTemp("", "shellbridge-config-*.ini")
	if err != nil {
		return "", err
	}
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	if _, err := tmpFile.WriteString(content); err != nil {
		_ = tmpFile.Close()

		return "", err
	}

	if err := tmpFile.Close(); err != nil {
		return "", err
	}

	cmd := exec.Command(Command(), tmpFile.Name()) //nolint:gosec // editor is chosen by the user
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", err
	}

	return string(data), nil
}
