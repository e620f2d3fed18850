package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tracklist/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
	manager bool
}

// NewHelpModel creates a new help view model. Manager mode adds the file
// management keys.
func NewHelpModel(manager bool) *HelpModel {
	return &HelpModel{manager: manager}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToListMsg{}
			}
		}
	}

	return m, nil
}

type helpSection struct {
	title    string
	bindings []key.Binding
}

// sections groups the list keys; manager mode adds rename and delete
func (m *HelpModel) sections() []helpSection {
	files := []key.Binding{ListKeys.Edit, ListKeys.Copy, ListKeys.Reveal}
	if m.manager {
		files = append(files, ListKeys.Rename, ListKeys.Delete)
	}
	return []helpSection{
		{"Navigation", []key.Binding{ListKeys.Up, ListKeys.Down, ListKeys.PageUp, ListKeys.PageDown, ListKeys.Select}},
		{"List", []key.Binding{ListKeys.Filter, ListKeys.Clear, ListKeys.Sort, ListKeys.Order}},
		{"Preview", []key.Binding{ListKeys.Rotate, ListKeys.Scenery}},
		{"Files", files},
		{"General", []key.Binding{ListKeys.Help, ListKeys.Quit}},
	}
}

func (m *HelpModel) View() string {
	v := NewViewBuilder().Title("Track Designs Help")
	for _, sec := range m.sections() {
		v.Line(styles.InputLabel.Render(sec.title))
		for _, b := range sec.bindings {
			h := b.Help()
			v.Line("  " + styles.HelpKey.Render(fmt.Sprintf("%-12s", h.Key)) + styles.HelpDesc.Render(h.Desc))
		}
		v.BlankLine()
	}
	return v.Help(HelpKeys.Close).String()
}
