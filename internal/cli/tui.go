package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/draalcore/devtool/internal/app"
	"github.com/draalcore/devtool/internal/tui"
)

// launchTUI runs the task picker and returns the picked task's command line.
func launchTUI(c *app.Container) ([]string, error) {
	model := tui.New(c)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return nil, err
	}
	sel, ok := model.Selection()
	if !ok {
		return nil, nil
	}
	return sel.Args(), nil
}
