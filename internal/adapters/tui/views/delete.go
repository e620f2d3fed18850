package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tracklist/internal/adapters/tui/styles"
	"tracklist/internal/application/commands"
	"tracklist/internal/domain"
	"tracklist/internal/ports"
)

// DeleteKeyMap holds the answers to the delete prompt
type DeleteKeyMap struct {
	Yes key.Binding
	No  key.Binding
}

var DeleteKeys = DeleteKeyMap{
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "delete"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "keep"),
	),
}

// DeleteModel asks before deleting one design file
type DeleteModel struct {
	ViewState
	manager ports.DesignManager
	target  domain.DesignRef
}

func NewDeleteModel(manager ports.DesignManager) *DeleteModel {
	return &DeleteModel{manager: manager}
}

// SetTarget points the prompt at ref
func (m *DeleteModel) SetTarget(ref domain.DesignRef) {
	m.target = ref
	m.ClearMessage()
}

func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update answers y by deleting and n/esc by going back to the list
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DeleteKeys.No):
			return m, func() tea.Msg { return SwitchToListMsg{} }
		case key.Matches(msg, DeleteKeys.Yes):
			return m, m.deleteTarget
		}
	}
	return m, nil
}

func (m *DeleteModel) deleteTarget() tea.Msg {
	result, err := commands.NewDeleteDesignCommand(m.manager, m.target.Path).Execute(context.Background())
	if err != nil {
		return DeleteErrMsg{Err: err}
	}
	return DeleteSuccessMsg{Message: result.Message}
}

func (m *DeleteModel) View() string {
	return NewViewBuilder().
		Title("Delete Design").
		Line(RenderDesignRef(m.target)).
		BlankLine().
		Line(styles.WarningText.Render("The file is removed from disk.")).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(DeleteKeys.Yes, DeleteKeys.No).
		String()
}
