package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/draalcore/devtool/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		frameW, frameH := m.styles.App.GetFrameSize()
		m.list.SetSize(msg.Width-frameW, msg.Height-frameH)
		return m, nil

	case MsgTasksLoaded:
		items := make([]list.Item, len(msg.Tasks))
		for i, t := range msg.Tasks {
			items[i] = taskItem{info: t}
		}
		return m, m.list.SetItems(items)

	case MsgError:
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		if m.mode == ModeInputVersion {
			return m.handleInputVersionMode(msg)
		}
		return m.handleNormalMode(msg)
	}

	var cmd tea.Cmd
	if m.mode == ModeInputVersion {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.DryRun):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		dryRun := key.Matches(msg, m.keys.DryRun)
		if task.RequiresArgs {
			m.pending = task
			m.dryRun = dryRun
			m.err = nil
			m.mode = ModeInputVersion
			m.input.Reset()
			return m, m.input.Focus()
		}
		m.selection = &Selection{Task: task.Name, DryRun: dryRun}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleInputVersionMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.mode = ModeNormal
		m.err = nil
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		version := strings.TrimSpace(m.input.Value())
		if _, err := domain.ParseVersion(version); err != nil {
			m.err = err
			return m, nil
		}
		m.selection = &Selection{Task: m.pending.Name, Version: version, DryRun: m.dryRun}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
