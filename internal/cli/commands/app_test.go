package commands_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/shellbridge/internal/cli/commands"
)

func TestMakeApp(t *testing.T) {
	t.Parallel()

	app := commands.MakeApp()
	assert.Equal(t, "shellbridge", app.Name)

	names := make([]string, 0, len(app.Commands))
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}

	assert.ElementsMatch(t, []string{"gui", "greet", "invoke", "commands", "menu", "config"}, names)
}

func TestApp_Help(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer

	app := commands.MakeApp()
	app.Writer = &stdout

	require.NoError(t, app.Run(t.Context(), []string{"shellbridge", "--help"}))
	assert.Contains(t, stdout.String(), "greet")
	assert.Contains(t, stdout.String(), "--config")
}

func TestWithDefaultCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "no arguments",
			args: []string{"shellbridge-gui"},
			want: []string{"shellbridge-gui", "gui"},
		},
		{
			name: "flags with separate values",
			args: []string{"shellbridge-gui", "--config", "a.ini", "--log-level", "debug"},
			want: []string{"shellbridge-gui", "--config", "a.ini", "--log-level", "debug", "gui"},
		},
		{
			name: "flags with inline values",
			args: []string{"shellbridge-gui", "--config=a.ini", "-log-format=json"},
			want: []string{"shellbridge-gui", "--config=a.ini", "-log-format=json", "gui"},
		},
		{
			name: "positional argument stays with the default command",
			args: []string{"shellbridge-gui", "greet"},
			want: []string{"shellbridge-gui", "gui", "greet"},
		},
		{
			name: "positional argument after flags",
			args: []string{"shellbridge-gui", "--config", "a.ini", "menu", "x"},
			want: []string{"shellbridge-gui", "--config", "a.ini", "gui", "menu", "x"},
		},
		{
			name: "terminator",
			args: []string{"shellbridge-gui", "--", "--config"},
			want: []string{"shellbridge-gui", "gui", "--", "--config"},
		},
		{
			name: "empty",
			args: nil,
			want: []string{"gui"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, commands.WithDefaultCommand(tt.args, "gui"))
		})
	}
}

func TestWithDefaultCommand_StrayArgumentIsRejected(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer

	app := commands.MakeApp()
	app.Writer = &stdout
	app.ErrWriter = &bytes.Buffer{}

	err := app.Run(t.Context(), commands.WithDefaultCommand([]string{"shellbridge-gui", "greet"}, "gui"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage: shellbridge gui")
	assert.NotContains(t, stdout.String(), "Hello")
}
