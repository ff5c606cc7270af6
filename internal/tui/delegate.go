package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/draalcore/devtool/internal/domain"
)

type taskItem struct {
	info domain.TaskInfo
}

func (t taskItem) FilterValue() string {
	return string(t.info.Name)
}

type taskDelegate struct {
	styles Styles
}

func newTaskDelegate(styles Styles) taskDelegate {
	return taskDelegate{styles: styles}
}

func (d taskDelegate) Height() int {
	return 2
}

func (d taskDelegate) Spacing() int {
	return 1
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	selected := index == m.Index()

	cursor := "  "
	nameStyle := d.styles.TaskName
	descStyle := d.styles.TaskDesc
	if selected {
		cursor = d.styles.CursorSelected.Render("> ")
		nameStyle = d.styles.TaskNameSelected
		descStyle = d.styles.TaskDescSelected
	}

	name := fmt.Sprintf("%-10s", ti.info.Name)
	line1 := cursor + nameStyle.Render(name) + " " + descStyle.Render(ti.info.Description)

	detail := ti.info.Script
	if ti.info.RequiresArgs {
		detail = "asks for a version"
	}
	maxWidth := m.Width() - 4
	if maxWidth < 10 {
		maxWidth = 10
	}
	line2 := "  " + d.styles.TaskScript.Render(runewidth.Truncate(escapeNewlines(detail), maxWidth, "…"))

	_, _ = fmt.Fprint(w, line1+"\n"+line2)
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
