package menu_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/shellbridge/internal/menu"
)

func TestParseItemID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  menu.ItemID
		ok    bool
	}{
		{input: "toggle-devtools", want: menu.ToggleDevtools, ok: true},
		{input: "Toggle-Devtools", ok: false},
		{input: " toggle-devtools", ok: false},
		{input: "", ok: false},
		{input: "quit", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, ok := menu.ParseItemID(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	submenus := menu.Default(menu.DefaultAccelerator)
	require.Len(t, submenus, 1)

	view := submenus[0]
	assert.Equal(t, "View", view.Label)
	require.Len(t, view.Items, 1)
	assert.Equal(t, menu.Item{
		ID:          menu.ToggleDevtools,
		Label:       "Toggle Devtools",
		Accelerator: "CmdOrCtrl+Shift+I",
	}, view.Items[0])
}

func TestDefault_CustomAccelerator(t *testing.T) {
	t.Parallel()

	submenus := menu.Default("F12")
	assert.Equal(t, "F12", submenus[0].Items[0].Accelerator)
}

func TestParseAccelerator(t *testing.T) {
	t.Parallel()

	t.Run("default shortcut", func(t *testing.T) {
		t.Parallel()

		acc, err := menu.ParseAccelerator(menu.DefaultAccelerator)
		require.NoError(t, err)
		require.NotNil(t, acc)
		assert.Equal(t, "i", strings.ToLower(acc.Key))
		assert.Len(t, acc.Modifiers, 2)
	})

	t.Run("empty means no shortcut", func(t *testing.T) {
		t.Parallel()

		acc, err := menu.ParseAccelerator("")
		require.NoError(t, err)
		assert.Nil(t, acc)
		assert.NoError(t, menu.ValidateAccelerator(""))
	})

	t.Run("unknown modifier", func(t *testing.T) {
		t.Parallel()

		assert.Error(t, menu.ValidateAccelerator("Hyper+I"))
	})
}
