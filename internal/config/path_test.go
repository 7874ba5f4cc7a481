package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpyw/shellbridge/internal/config"
)

//nolint:paralleltest // modifies environment variables
func TestPath(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		t.Setenv(config.EnvPath, "/from/env.ini")
		assert.Equal(t, "/explicit.ini", config.Path("/explicit.ini"))
	})

	t.Run("environment variable", func(t *testing.T) {
		t.Setenv(config.EnvPath, "/from/env.ini")
		assert.Equal(t, "/from/env.ini", config.Path(""))
	})

	t.Run("xdg default", func(t *testing.T) {
		t.Setenv(config.EnvPath, "")
		assert.Equal(t, filepath.Join("shellbridge", "config.ini"), lastTwo(config.Path("")))
	})
}

func lastTwo(p string) string {
	return filepath.Join(filepath.Base(filepath.Dir(p)), filepath.Base(p))
}
