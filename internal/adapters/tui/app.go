package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"tracklist/internal/adapters/tui/views"
	"tracklist/internal/application/commands"
	"tracklist/internal/application/designlist"
	"tracklist/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewList ViewState = iota
	ViewRename
	ViewDelete
	ViewHelp
)

// Deps are the collaborators of the window. Everything but Controller may
// be nil.
type Deps struct {
	Controller *designlist.Controller
	Editor     ports.EditorOpener
	Revealer   ports.Revealer
	Manager    ports.DesignManager
	Index      ports.DesignIndex
	Changes    <-chan []string
	Log        logrus.FieldLogger
}

// App is the main TUI application model
type App struct {
	deps Deps

	state  ViewState
	list   *views.ListModel
	rename *views.RenameModel
	del    *views.DeleteModel
	help   *views.HelpModel

	chosen *designlist.Action
}

// NewApp creates a new TUI application over an opened controller
func NewApp(deps Deps) *App {
	if deps.Log == nil {
		deps.Log = logrus.StandardLogger()
	}
	return &App{
		deps:   deps,
		state:  ViewList,
		list:   views.NewListModel(deps.Controller),
		rename: views.NewRenameModel(deps.Manager),
		del:    views.NewDeleteModel(deps.Manager),
		help:   views.NewHelpModel(deps.Controller.Manager()),
	}
}

// Chosen returns the action picked before the window closed, if any
func (a *App) Chosen() (designlist.Action, bool) {
	if a.chosen == nil {
		return designlist.Action{}, false
	}
	return *a.chosen, true
}

// designsChangedMsg reports design files changed on disk
type designsChangedMsg struct {
	paths []string
}

type editorFinishedMsg struct{ err error }

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.list.Init(), a.waitForChange())
}

// waitForChange turns the next watcher batch into a designsChangedMsg
func (a *App) waitForChange() tea.Cmd {
	if a.deps.Changes == nil {
		return nil
	}
	return func() tea.Msg {
		paths, ok := <-a.deps.Changes
		if !ok {
			return nil
		}
		return designsChangedMsg{paths: paths}
	}
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.list.SetSize(msg.Width, msg.Height)
		a.rename.SetSize(msg.Width, msg.Height)
		a.del.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case designsChangedMsg:
		a.deps.Log.WithField("count", len(msg.paths)).Debug("design files changed")
		a.syncIndex()
		a.reload()
		return a, a.waitForChange()

	// View switching messages
	case views.SwitchToRenameMsg:
		if a.deps.Manager == nil {
			return a, nil
		}
		a.state = ViewRename
		a.rename.SetTarget(msg.Ref)
		return a, a.rename.Init()

	case views.SwitchToDeleteMsg:
		if a.deps.Manager == nil {
			return a, nil
		}
		a.state = ViewDelete
		a.del.SetTarget(msg.Ref)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToListMsg:
		a.state = ViewList
		return a, nil

	// Manager results
	case views.RenameSuccessMsg:
		a.state = ViewList
		a.reload()
		a.list.SetMessage(msg.Message, false)
		return a, nil

	case views.RenameErrMsg:
		a.rename.SetMessage(msg.Err.Error(), true)
		return a, nil

	case views.DeleteSuccessMsg:
		a.state = ViewList
		a.reload()
		a.list.SetMessage(msg.Message, false)
		return a, nil

	case views.DeleteErrMsg:
		a.del.SetMessage(msg.Err.Error(), true)
		return a, nil

	case views.DesignChosenMsg:
		action := msg.Action
		a.chosen = &action
		return a, tea.Quit

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case views.RevealMsg:
		if a.deps.Revealer == nil {
			return a, nil
		}
		if err := a.deps.Revealer.Reveal(msg.Path); err != nil {
			a.list.SetMessage(err.Error(), true)
		}
		return a, nil

	case editorFinishedMsg:
		if msg.err != nil {
			a.list.SetMessage(fmt.Sprintf("Editor: %v", msg.err), true)
			return a, nil
		}
		a.reload()
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewList:
		_, cmd = a.list.Update(msg)
	case ViewRename:
		_, cmd = a.rename.Update(msg)
	case ViewDelete:
		_, cmd = a.del.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

func (a *App) reload() {
	if err := a.list.Reload(); err != nil {
		a.deps.Log.WithError(err).Warn("failed to reload designs")
		a.list.SetMessage(err.Error(), true)
	}
}

func (a *App) syncIndex() {
	if a.deps.Index == nil {
		return
	}
	result, err := commands.NewSyncIndexCommand(a.deps.Index, false).Execute(context.Background())
	if err != nil {
		a.deps.Log.WithError(err).Warn("index sync failed")
		return
	}
	a.deps.Log.WithFields(logrus.Fields{
		"added":   result.Stats.EntriesAdded,
		"updated": result.Stats.EntriesUpdated,
		"deleted": result.Stats.EntriesDeleted,
	}).Debug("index synced")
}

func (a *App) openEditor(path string) tea.Cmd {
	if a.deps.Editor == nil {
		return nil
	}

	cmd, err := a.deps.Editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewRename:
		return a.rename.View()
	case ViewDelete:
		return a.del.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.list.View()
	}
}
