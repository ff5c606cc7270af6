package tui

import "strings"

// View renders the picker.
func (m *Model) View() string {
	if m.mode == ModeInputVersion {
		return m.styles.App.Render(m.versionView())
	}

	var b strings.Builder
	b.WriteString(m.list.View())
	if m.err != nil {
		b.WriteString("\n" + m.styles.ErrorMsg.Render("Error: "+m.err.Error()))
	}
	return m.styles.App.Render(b.String())
}

func (m *Model) versionView() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Version for " + string(m.pending.Name)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	if m.err != nil {
		b.WriteString("\n\n" + m.styles.ErrorMsg.Render(m.err.Error()))
	}
	b.WriteString("\n\n" + m.styles.TaskScript.Render("enter confirm • esc back"))
	return b.String()
}
