package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draalcore/devtool/internal/app"
	"github.com/draalcore/devtool/internal/domain"
	"github.com/draalcore/devtool/internal/testutil"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	c := app.NewWithDeps(app.Config{}, testutil.NewMockGit(), testutil.NewMockConfigLoader(), testutil.NewMockConfigManager(), nil)
	m := New(c)

	msg := m.Init()()
	loaded, ok := msg.(MsgTasksLoaded)
	require.True(t, ok, "expected MsgTasksLoaded, got %T", msg)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(loaded)
	return m
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_LoadsTaskCatalog(t *testing.T) {
	m := newTestModel(t)

	task, ok := m.SelectedTask()
	require.True(t, ok)
	assert.Equal(t, domain.TaskLint, task.Name)
	assert.Contains(t, task.Script, "flake8")
	assert.Contains(t, m.View(), "lint")
}

func TestModel_EnterSelectsTask(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, isQuit(cmd))
	sel, ok := m.Selection()
	require.True(t, ok)
	assert.Equal(t, domain.TaskUnitTest, sel.Task)
	assert.False(t, sel.DryRun)
	assert.Equal(t, []string{"unittest"}, sel.Args())
}

func TestModel_DryRunKey(t *testing.T) {
	m := newTestModel(t)

	cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})

	assert.True(t, isQuit(cmd))
	sel, ok := m.Selection()
	require.True(t, ok)
	assert.Equal(t, []string{"lint", "--dry-run"}, sel.Args())
}

func TestModel_QuitWithoutSelection(t *testing.T) {
	m := newTestModel(t)

	cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.True(t, isQuit(cmd))
	_, ok := m.Selection()
	assert.False(t, ok)
}

func TestModel_ReleasePromptsForVersion(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 3; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	task, _ := m.SelectedTask()
	require.Equal(t, domain.TaskRelease, task.Name)

	// Enter opens the version prompt instead of quitting
	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, isQuit(cmd))
	assert.Equal(t, ModeInputVersion, m.Mode())

	// Invalid version keeps the prompt open
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1.2")})
	cmd = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, isQuit(cmd))
	assert.ErrorIs(t, m.err, domain.ErrInvalidVersion)
	assert.Contains(t, m.View(), "invalid version")

	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(".3")})
	cmd = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, isQuit(cmd))
	sel, ok := m.Selection()
	require.True(t, ok)
	assert.Equal(t, []string{"release", "--version", "1.2.3"}, sel.Args())
}

func TestModel_EscapeLeavesVersionPrompt(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 3; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ModeInputVersion, m.Mode())

	// q is text in the prompt, not quit
	cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.False(t, isQuit(cmd))

	press(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ModeNormal, m.Mode())
	_, ok := m.Selection()
	assert.False(t, ok)
}

func TestModel_LoadErrorIsShown(t *testing.T) {
	m := newTestModel(t)

	m.Update(MsgError{Err: errors.New("broken config")})

	assert.Contains(t, m.View(), "broken config")
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "normal", ModeNormal.String())
	assert.Equal(t, "input_version", ModeInputVersion.String())
	assert.Equal(t, "unknown", Mode(99).String())
	assert.True(t, ModeInputVersion.IsInputMode())
	assert.False(t, ModeNormal.IsInputMode())
}
