package tui

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracklist/internal/adapters/filesystem"
	"tracklist/internal/adapters/state"
	"tracklist/internal/adapters/tui/views"
	"tracklist/internal/application/designlist"
	"tracklist/internal/domain"
	"tracklist/internal/logging"
)

type fakeEditor struct {
	opened []string
}

func (e *fakeEditor) Command(path string) (*exec.Cmd, error) {
	e.opened = append(e.opened, path)
	return exec.Command("true"), nil
}

type fakeRevealer struct {
	revealed []string
	err      error
}

func (r *fakeRevealer) Reveal(path string) error {
	r.revealed = append(r.revealed, path)
	return r.err
}

func setupApp(t *testing.T, manager bool) (*App, *filesystem.Repository, string) {
	t.Helper()

	dir := t.TempDir()
	repo, err := filesystem.NewRepository([]string{dir}, nil, logging.Discard())
	require.NoError(t, err)
	for _, name := range []string{"Alpha", "Bravo"} {
		require.NoError(t, repo.SaveDesign(filepath.Join(dir, name+".td.yaml"), &domain.Design{RideType: 52}))
	}

	ctl := designlist.New(repo, state.NewSceneryToggle(false), designlist.WithManagerMode(manager))
	require.NoError(t, ctl.Open(domain.RideSelection{Type: 52}))

	app := NewApp(Deps{
		Controller: ctl,
		Editor:     &fakeEditor{},
		Revealer:   &fakeRevealer{},
		Manager:    repo,
		Log:        logging.Discard(),
	})
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app, repo, dir
}

func catalogueNames(ctl *designlist.Controller) []string {
	var out []string
	for _, r := range ctl.Catalogue() {
		out = append(out, r.Name)
	}
	return out
}

// run executes cmd and feeds its message back into the app, the way the
// bubbletea runtime would.
func run(a *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		a.Update(msg)
	}
}

func TestApp_HelpRoundTrip(t *testing.T) {
	app, _, _ := setupApp(t, false)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	run(app, cmd)
	assert.Equal(t, ViewHelp, app.state)
	assert.Contains(t, app.View(), "Help")

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	run(app, cmd)
	assert.Equal(t, ViewList, app.state)
}

func TestApp_RenameFlow(t *testing.T) {
	app, _, dir := setupApp(t, true)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("R")})
	run(app, cmd)
	require.Equal(t, ViewRename, app.state)
	assert.Contains(t, app.View(), "Alpha")

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" II")})
	run(app, cmd)
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(app, cmd)

	assert.Equal(t, ViewList, app.state)
	assert.FileExists(t, filepath.Join(dir, "Alpha II.td.yaml"))
	assert.Equal(t, []string{"Alpha II", "Bravo"}, catalogueNames(app.list.Controller()))
	assert.Contains(t, app.list.Message, "Renamed to Alpha II")
}

func TestApp_RenameInvalidNameStaysInForm(t *testing.T) {
	app, _, _ := setupApp(t, true)

	app.Update(views.SwitchToRenameMsg{Ref: app.list.Controller().Catalogue()[0]})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/x")})
	run(app, cmd)
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(app, cmd)

	assert.Equal(t, ViewRename, app.state)
	assert.True(t, app.rename.MessageErr)
}

func TestApp_DeleteFlow(t *testing.T) {
	app, _, dir := setupApp(t, true)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	run(app, cmd)
	require.Equal(t, ViewDelete, app.state)

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	run(app, cmd)
	assert.Equal(t, ViewList, app.state)
	assert.FileExists(t, filepath.Join(dir, "Alpha.td.yaml"))

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	run(app, cmd)
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	run(app, cmd)

	assert.Equal(t, ViewList, app.state)
	assert.NoFileExists(t, filepath.Join(dir, "Alpha.td.yaml"))
	assert.Equal(t, []string{"Bravo"}, catalogueNames(app.list.Controller()))
}

func TestApp_ChoosingDesignQuits(t *testing.T) {
	app, _, _ := setupApp(t, false)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, quit := app.Update(cmd())
	require.NotNil(t, quit)
	assert.IsType(t, tea.QuitMsg{}, quit())

	action, ok := app.Chosen()
	require.True(t, ok)
	assert.Equal(t, designlist.ActionPlace, action.Kind)
	assert.Equal(t, "Alpha", action.Ref.Name)
}

func TestApp_DesignsChangedReloads(t *testing.T) {
	app, repo, dir := setupApp(t, false)

	changes := make(chan []string, 1)
	app.deps.Changes = changes

	require.NoError(t, repo.SaveDesign(filepath.Join(dir, "Charlie.td.yaml"), &domain.Design{RideType: 52}))
	require.NoError(t, os.Remove(filepath.Join(dir, "Bravo.td.yaml")))

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	changes <- []string{filepath.Join(dir, "Charlie.td.yaml")}

	cmd := app.waitForChange()
	msg := cmd()
	require.IsType(t, designsChangedMsg{}, msg)

	_, next := app.Update(msg)
	assert.NotNil(t, next, "the app keeps listening for changes")
	assert.Equal(t, []string{"Alpha", "Charlie"}, catalogueNames(app.list.Controller()))
	assert.Equal(t, 0, app.list.Controller().Highlighted(), "reload resets the highlight")
}

func TestApp_WaitForChangeWithoutWatcher(t *testing.T) {
	app, _, _ := setupApp(t, false)
	assert.Nil(t, app.waitForChange())
}

func TestApp_OpenEditor(t *testing.T) {
	app, _, dir := setupApp(t, false)
	ed := app.deps.Editor.(*fakeEditor)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	require.NotNil(t, cmd)
	_, execCmd := app.Update(cmd())
	assert.NotNil(t, execCmd)
	assert.Equal(t, []string{filepath.Join(dir, "Alpha.td.yaml")}, ed.opened)

	app.Update(editorFinishedMsg{err: assert.AnError})
	assert.True(t, app.list.MessageErr)
}

func TestApp_Reveal(t *testing.T) {
	app, _, dir := setupApp(t, false)
	rv := app.deps.Revealer.(*fakeRevealer)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("O")})
	run(app, cmd)
	assert.Equal(t, []string{filepath.Join(dir, "Alpha.td.yaml")}, rv.revealed)
	assert.False(t, app.list.MessageErr)

	rv.err = assert.AnError
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("O")})
	run(app, cmd)
	assert.True(t, app.list.MessageErr)
}
