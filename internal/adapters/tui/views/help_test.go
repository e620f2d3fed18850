package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpModel_View(t *testing.T) {
	out := NewHelpModel(false).View()
	assert.Contains(t, out, "Navigation")
	assert.Contains(t, out, "show in folder")
	assert.NotContains(t, out, "rename")

	assert.Contains(t, NewHelpModel(true).View(), "rename")
}

func TestHelpModel_Close(t *testing.T) {
	m := NewHelpModel(false)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, SwitchToListMsg{}, cmd())
}
