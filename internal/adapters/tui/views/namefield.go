package views

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tracklist/internal/adapters/tui/styles"
	"tracklist/internal/application"
	"tracklist/internal/domain"
)

// NameFieldKeyMap defines key bindings for the name field
type NameFieldKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

var DefaultNameFieldKeys = NameFieldKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// NameField edits a design file name. The file suffix is shown after the
// input and kept on rename.
type NameField struct {
	input  textinput.Model
	suffix string
	Keys   NameFieldKeyMap
}

// NewNameField creates an empty, focused name field
func NewNameField(charLimit int) *NameField {
	input := textinput.New()
	input.Placeholder = "design name"
	input.CharLimit = charLimit
	input.Prompt = ""
	input.Focus()
	return &NameField{input: input, Keys: DefaultNameFieldKeys}
}

// Reset fills the field with ref's name, cursor at the end
func (f *NameField) Reset(ref domain.DesignRef) {
	f.suffix = ""
	if ref.Path != "" {
		f.suffix = strings.TrimPrefix(filepath.Base(ref.Path), ref.Name)
	}
	f.input.SetValue(ref.Name)
	f.input.CursorEnd()
	f.input.Focus()
}

// Value is the entered name without surrounding spaces
func (f *NameField) Value() string {
	return strings.TrimSpace(f.input.Value())
}

// Problem describes why the current value cannot be used, or is empty
func (f *NameField) Problem() string {
	if err := application.ValidateDesignName("name", f.Value()); err != nil {
		return err.Error()
	}
	return ""
}

// Init returns the cursor blink command
func (f *NameField) Init() tea.Cmd {
	return textinput.Blink
}

// Update passes msg to the text input
func (f *NameField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// View renders the label, the boxed input with the kept suffix and any
// problem with the current value
func (f *NameField) View() string {
	box := styles.InputFocused.Render(f.input.View())
	if f.suffix != "" {
		box = lipgloss.JoinHorizontal(lipgloss.Center, box, " "+styles.MutedText.Render(f.suffix))
	}

	out := styles.InputLabel.Render("New name") + "\n" + box
	if p := f.Problem(); p != "" {
		out += "\n" + styles.WarningText.Render(p)
	}
	return out
}

// Help renders the key hints with submit described as submitText
func (f *NameField) Help(submitText string) string {
	return styles.HelpKey.Render("enter") + " " + styles.HelpDesc.Render(submitText) +
		"  " + styles.HelpKey.Render("esc") + " " + styles.HelpDesc.Render("cancel")
}
