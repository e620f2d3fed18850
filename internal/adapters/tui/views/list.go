package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tracklist/internal/adapters/tui/styles"
	"tracklist/internal/application"
	"tracklist/internal/application/designlist"
)

// ListKeyMap defines key bindings for the design list view
type ListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Select   key.Binding
	Filter   key.Binding
	Clear    key.Binding
	Sort     key.Binding
	Order    key.Binding
	Rotate   key.Binding
	Scenery  key.Binding
	Edit     key.Binding
	Copy     key.Binding
	Reveal   key.Binding
	Rename   key.Binding
	Delete   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var ListKeys = ListKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear filter"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort key"),
	),
	Order: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "direction"),
	),
	Rotate: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rotate"),
	),
	Scenery: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "scenery"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Reveal: key.NewBinding(
		key.WithKeys("O"),
		key.WithHelp("O", "show in folder"),
	),
	Rename: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "rename"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// thumbnailCols is the width of the terminal preview in characters.
const thumbnailCols = 48

// ListModel is the model for the design list window
type ListModel struct {
	ViewState
	ctl      *designlist.Controller
	scroller *Scroller
	filter   textinput.Model
	editing  bool

	// copyText writes to the system clipboard
	copyText func(string) error
}

// NewListModel creates a list view over an opened controller
func NewListModel(ctl *designlist.Controller) *ListModel {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "filter by name"
	input.CharLimit = 64

	return &ListModel{
		ctl:      ctl,
		scroller: NewScroller(10),
		filter:   input,
		copyText: clipboard.WriteAll,
	}
}

// Init initializes the list view
func (m *ListModel) Init() tea.Cmd {
	return nil
}

// Controller returns the design list controller behind the view
func (m *ListModel) Controller() *designlist.Controller {
	return m.ctl
}

// Filtering reports whether the filter input has focus
func (m *ListModel) Filtering() bool {
	return m.editing
}

// Update handles messages for the list view
func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m, m.updateFilter(msg)
		}
		m.ClearMessage()
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *ListModel) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.ctl.ClearFilter()
		m.follow()
		return nil
	case tea.KeyEnter:
		m.editing = false
		m.filter.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.ctl.SetFilter(m.filter.Value())
	m.follow()
	return cmd
}

func (m *ListModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, ListKeys.Quit):
		return tea.Quit

	case key.Matches(msg, ListKeys.Up):
		m.move(m.ctl.Highlighted() - 1)

	case key.Matches(msg, ListKeys.Down):
		m.move(m.ctl.Highlighted() + 1)

	case key.Matches(msg, ListKeys.PageUp):
		m.move(m.scroller.PageUp(m.ctl.Highlighted()))

	case key.Matches(msg, ListKeys.PageDown):
		m.move(m.scroller.PageDown(m.ctl.Highlighted(), m.ctl.RowCount()))

	case key.Matches(msg, ListKeys.Filter):
		m.editing = true
		m.filter.SetValue(m.ctl.Filter())
		m.filter.CursorEnd()
		return m.filter.Focus()

	case key.Matches(msg, ListKeys.Clear):
		if m.ctl.Filter() != "" {
			m.filter.SetValue("")
			m.ctl.ClearFilter()
			m.follow()
		}

	case key.Matches(msg, ListKeys.Select):
		return m.selectHighlighted()

	case key.Matches(msg, ListKeys.Sort):
		keys := m.ctl.SortKeys()
		if len(keys) > 0 {
			m.ctl.SelectSortKey((m.ctl.SortKeyIndex() + 1) % len(keys))
			m.follow()
		}

	case key.Matches(msg, ListKeys.Order):
		m.ctl.ToggleSortDirection()
		m.follow()

	case key.Matches(msg, ListKeys.Rotate):
		m.ctl.Rotate()

	case key.Matches(msg, ListKeys.Scenery):
		m.ctl.ToggleScenery()

	case key.Matches(msg, ListKeys.Edit):
		if ref, ok := m.ctl.HighlightedRef(); ok {
			return func() tea.Msg { return OpenEditorMsg{Path: ref.Path} }
		}

	case key.Matches(msg, ListKeys.Copy):
		if ref, ok := m.ctl.HighlightedRef(); ok {
			if err := m.copyText(ref.Path); err != nil {
				m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
			} else {
				m.SetMessage("Copied "+ref.Path, false)
			}
		}

	case key.Matches(msg, ListKeys.Reveal):
		if ref, ok := m.ctl.HighlightedRef(); ok {
			return func() tea.Msg { return RevealMsg{Path: ref.Path} }
		}

	case key.Matches(msg, ListKeys.Rename):
		if ref, ok := m.ctl.HighlightedRef(); ok && m.ctl.Manager() {
			return func() tea.Msg { return SwitchToRenameMsg{Ref: ref} }
		}

	case key.Matches(msg, ListKeys.Delete):
		if ref, ok := m.ctl.HighlightedRef(); ok && m.ctl.Manager() {
			return func() tea.Msg { return SwitchToDeleteMsg{Ref: ref} }
		}

	case key.Matches(msg, ListKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }
	}
	return nil
}

func (m *ListModel) move(row int) {
	m.ctl.Highlight(row)
	m.follow()
}

func (m *ListModel) follow() {
	m.scroller.Follow(m.ctl.Highlighted(), m.ctl.RowCount())
}

func (m *ListModel) selectHighlighted() tea.Cmd {
	action, err := m.ctl.Select(m.ctl.Highlighted())
	if err != nil {
		if errors.Is(err, application.ErrDesignLoad) {
			m.SetMessage("This design could not be loaded", true)
		} else {
			m.SetMessage(err.Error(), true)
		}
		return nil
	}

	switch action.Kind {
	case designlist.ActionManage:
		m.SetMessage(fmt.Sprintf("%s: R to rename, d to delete", action.Ref.Name), false)
		return nil
	case designlist.ActionPlace, designlist.ActionBuildCustom:
		return func() tea.Msg { return DesignChosenMsg{Action: action} }
	}
	return nil
}

// Reload re-reads the catalogue, keeping the filter
func (m *ListModel) Reload() error {
	err := m.ctl.Reload()
	m.scroller.Reset()
	m.follow()
	return err
}

// SetSize updates the view dimensions and the visible row count
func (m *ListModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	// Title, filter, sort line, message and help take about ten lines.
	m.scroller.SetHeight(height - 10)
	m.follow()
}

// View renders the design list window
func (m *ListModel) View() string {
	v := NewViewBuilder()
	v.Raw(styles.Title.Render(m.ctl.Title()) + "\n")
	v.Subtitle(m.ctl.RideName())

	if m.editing || m.ctl.Filter() != "" {
		v.Line(m.filter.View())
	}
	v.Line(styles.SortStatus(m.ctl.SortKey().Label(), m.ctl.SortArrow()))
	v.BlankLine()

	left := m.renderRows()
	right := m.renderPreview()
	v.Line(lipgloss.JoinHorizontal(lipgloss.Top, left, right))

	if m.Message != "" {
		v.BlankLine()
		v.Line(RenderMessage(m.Message, m.MessageErr))
	}
	v.BlankLine()
	v.Help(m.helpBindings()...)
	return v.String()
}

func (m *ListModel) renderRows() string {
	if m.ctl.Empty() {
		return RenderMuted(designlist.NoDesignsMessage)
	}

	rows := m.ctl.Rows()
	start, end := m.scroller.Range(len(rows))

	var b strings.Builder
	for i := start; i < end; i++ {
		r := rows[i]
		text := r.Text
		if !r.Custom {
			text = highlightMatch(text, m.ctl.Filter())
		}
		switch {
		case r.Highlighted:
			b.WriteString(styles.RowCursor + styles.RowSelected.Render(r.Text))
		case r.Custom:
			b.WriteString(styles.RowIndent + styles.RowCustom.Render(text))
		default:
			b.WriteString(styles.RowIndent + styles.Row.Render(text))
		}
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	if len(rows) > end-start {
		b.WriteString("\n" + RenderMuted(fmt.Sprintf("  %d-%d of %d", start+1, end, len(rows))))
	}
	return b.String()
}

func (m *ListModel) renderPreview() string {
	p, err := m.ctl.Preview()
	if err != nil {
		return styles.Panel.Render(styles.ErrorMsg.Render("Design could not be loaded"))
	}
	if p == nil {
		return ""
	}

	var b strings.Builder
	if p.Pixels != nil {
		if thumb, err := RenderThumbnail(p.Pixels, thumbnailCols); err == nil {
			b.WriteString(thumb)
			b.WriteString("\n\n")
		}
	}
	for _, line := range p.Stats {
		b.WriteString(styles.StatLabel.Render(line.Label+": ") + styles.StatValue.Render(line.Value))
		b.WriteByte('\n')
	}
	for _, w := range p.Warnings {
		b.WriteString(styles.WarningText.Render(w))
		b.WriteByte('\n')
	}
	return styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *ListModel) helpBindings() []key.Binding {
	if m.editing {
		return []key.Binding{ListKeys.Select, ListKeys.Clear}
	}
	bindings := []key.Binding{ListKeys.Up, ListKeys.Down, ListKeys.Select, ListKeys.Filter, ListKeys.Sort, ListKeys.Order}
	if m.ctl.Manager() {
		bindings = append(bindings, ListKeys.Rename, ListKeys.Delete)
	}
	return append(bindings, ListKeys.Help, ListKeys.Quit)
}

// highlightMatch marks the first case-insensitive occurrence of query in text
func highlightMatch(text, query string) string {
	if query == "" {
		return text
	}
	i := strings.Index(strings.ToLower(text), strings.ToLower(query))
	if i < 0 || len(strings.ToLower(text)) != len(text) {
		return text
	}
	j := i + len(query)
	return text[:i] + styles.FilterMatch.Render(text[i:j]) + text[j:]
}
