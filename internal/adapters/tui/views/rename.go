package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tracklist/internal/application/commands"
	"tracklist/internal/domain"
	"tracklist/internal/ports"
)

// RenameModel is the model for the rename form
type RenameModel struct {
	ViewState
	manager ports.DesignManager
	target  domain.DesignRef
	field   *NameField
}

// NewRenameModel creates a new rename view model
func NewRenameModel(manager ports.DesignManager) *RenameModel {
	return &RenameModel{
		manager: manager,
		field:   NewNameField(128),
	}
}

// SetTarget prepares the form for ref, pre-filled with its current name
func (m *RenameModel) SetTarget(ref domain.DesignRef) {
	m.target = ref
	m.ClearMessage()
	m.field.Reset(ref)
}

// Init initializes the rename view
func (m *RenameModel) Init() tea.Cmd {
	return m.field.Init()
}

// Update handles messages for the rename view
func (m *RenameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.field.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToListMsg{} }
		case key.Matches(msg, m.field.Keys.Submit):
			return m, m.doRename
		}
	}

	return m, m.field.Update(msg)
}

func (m *RenameModel) doRename() tea.Msg {
	cmd := commands.NewRenameDesignCommand(m.manager, m.target.Path, m.field.Value())
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return RenameErrMsg{Err: err}
	}
	return RenameSuccessMsg{Ref: result.Ref, Message: result.Message}
}

// View renders the rename form
func (m *RenameModel) View() string {
	return NewViewBuilder().
		Title("Rename Design").
		Line(RenderDesignRef(m.target)).
		BlankLine().
		Line(m.field.View()).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(m.field.Help("rename")).
		String()
}
