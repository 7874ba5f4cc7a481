package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/shellbridge/internal/config"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	assert.Equal(t, "shellbridge", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "CmdOrCtrl+Shift+I", cfg.Devtools.Accelerator)
	assert.False(t, cfg.Devtools.OpenOnStartup)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, config.FormatConsole, cfg.Log.Format)
	require.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		check     func(t *testing.T, cfg config.Config)
		wantErrIs error
	}{
		{
			name:  "empty file yields defaults",
			input: "",
			check: func(t *testing.T, cfg config.Config) {
				t.Helper()
				assert.Equal(t, config.Default(), cfg)
			},
		},
		{
			name: "all keys overridden",
			input: `
[window]
title = Hello
width = 1024
height = 768

[devtools]
accelerator = Ctrl+Shift+J
open_on_startup = true

[log]
level = DEBUG
format = json
`,
			check: func(t *testing.T, cfg config.Config) {
				t.Helper()
				assert.Equal(t, config.Config{
					Window:   config.Window{Title: "Hello", Width: 1024, Height: 768},
					Devtools: config.Devtools{Accelerator: "Ctrl+Shift+J", OpenOnStartup: true},
					Log:      config.Log{Level: "debug", Format: config.FormatJSON},
				}, cfg)
			},
		},
		{
			name:  "partial override keeps other defaults",
			input: "[window]\nwidth = 1280\n",
			check: func(t *testing.T, cfg config.Config) {
				t.Helper()
				assert.Equal(t, 1280, cfg.Window.Width)
				assert.Equal(t, 600, cfg.Window.Height)
				assert.Equal(t, "shellbridge", cfg.Window.Title)
			},
		},
		{
			name:      "non-numeric width",
			input:     "[window]\nwidth = wide\n",
			wantErrIs: config.ErrInvalid,
		},
		{
			name:      "zero height",
			input:     "[window]\nheight = 0\n",
			wantErrIs: config.ErrInvalid,
		},
		{
			name:      "unknown log level",
			input:     "[log]\nlevel = loud\n",
			wantErrIs: config.ErrInvalid,
		},
		{
			name:      "unknown log format",
			input:     "[log]\nformat = xml\n",
			wantErrIs: config.ErrInvalid,
		},
		{
			name:      "invalid accelerator",
			input:     "[devtools]\naccelerator = Hyper+I\n",
			wantErrIs: config.ErrInvalid,
		},
		{
			name:      "invalid boolean",
			input:     "[devtools]\nopen_on_startup = sometimes\n",
			wantErrIs: config.ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.Parse([]byte(tt.input))
			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)

				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.ini"))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.ini")
		require.NoError(t, os.WriteFile(path, []byte("[window]\ntitle = From File\n"), 0o600))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "From File", cfg.Window.Title)
	})

	t.Run("directory is a read error", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config")
	})
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	want := config.Default()
	want.Window.Title = "Round Trip"
	want.Devtools.OpenOnStartup = true

	text, err := want.Encode()
	require.NoError(t, err)
	assert.Contains(t, text, "[window]")

	got, err := config.Parse([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
