package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/draalcore/devtool/internal/app"
	"github.com/draalcore/devtool/internal/domain"
	"github.com/draalcore/devtool/internal/usecase"
)

// Selection is the task the user picked.
type Selection struct {
	Task    domain.TaskName
	Version string // Release version, only set for release
	DryRun  bool
}

// Args returns the command line that runs the selection.
func (s Selection) Args() []string {
	args := []string{string(s.Task)}
	if s.Version != "" {
		args = append(args, "--version", s.Version)
	}
	if s.DryRun {
		args = append(args, "--dry-run")
	}
	return args
}

var _ tea.Model = (*Model)(nil)

// Model is the bubbletea model of the task picker.
// Fields are ordered to minimize memory padding.
type Model struct {
	err       error
	selection *Selection
	lister    *usecase.ListTasks
	styles    Styles
	keys      KeyMap
	pending   domain.TaskInfo // Task waiting for its version
	input     textinput.Model
	list      list.Model
	mode      Mode
	dryRun    bool // Pending selection is a dry run
}

// New creates a picker that lists the tasks known to the container.
func New(c *app.Container) *Model {
	styles := DefaultStyles()
	keys := DefaultKeyMap()

	l := list.New(nil, newTaskDelegate(styles), 0, 0)
	l.Title = "devtool"
	l.Styles.Title = styles.Header
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.DryRun}
	}

	input := textinput.New()
	input.Placeholder = "1.2.3"
	input.Prompt = "version: "
	input.PromptStyle = styles.InputPrompt
	input.CharLimit = 32

	return &Model{
		lister: c.ListTasksUseCase(),
		styles: styles,
		keys:   keys,
		input:  input,
		list:   l,
		mode:   ModeNormal,
	}
}

// Init loads the task catalog.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.lister.Execute(context.Background(), usecase.ListTasksInput{WithScripts: true})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks}
	}
}

// Selection returns the picked task once the picker has quit.
// ok is false when the user quit without picking.
func (m *Model) Selection() (Selection, bool) {
	if m.selection == nil {
		return Selection{}, false
	}
	return *m.selection, true
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// SelectedTask returns the task under the cursor.
func (m *Model) SelectedTask() (domain.TaskInfo, bool) {
	item, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return domain.TaskInfo{}, false
	}
	return item.info, true
}
