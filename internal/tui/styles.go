package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette.
var Colors = struct {
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Info          lipgloss.Color
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color
	DescSelected  lipgloss.Color
}{
	Primary:       lipgloss.Color("#6C5CE7"), // Purple
	Muted:         lipgloss.Color("#636E72"), // Gray
	Error:         lipgloss.Color("#D63031"), // Red
	Success:       lipgloss.Color("#00B894"), // Green
	Warning:       lipgloss.Color("#FDCB6E"), // Yellow
	Info:          lipgloss.Color("#74B9FF"), // Light blue
	TitleNormal:   lipgloss.Color("#DFE6E9"),
	TitleSelected: lipgloss.Color("#FFEAA7"),
	DescNormal:    lipgloss.Color("#636E72"),
	DescSelected:  lipgloss.Color("#B2BEC3"),
}

// Styles contains the lipgloss styles for the picker and console output.
type Styles struct {
	App    lipgloss.Style
	Header lipgloss.Style

	// Task list
	TaskName         lipgloss.Style
	TaskNameSelected lipgloss.Style
	TaskDesc         lipgloss.Style
	TaskDescSelected lipgloss.Style
	TaskScript       lipgloss.Style
	CursorSelected   lipgloss.Style

	// Version prompt
	DialogTitle lipgloss.Style
	InputPrompt lipgloss.Style
	ErrorMsg    lipgloss.Style

	// Console symbols
	Success lipgloss.Style
	Failure lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		TaskName: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskNameSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		TaskDesc: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),

		TaskDescSelected: lipgloss.NewStyle().
			Foreground(Colors.DescSelected),

		TaskScript: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		CursorSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error),

		Success: lipgloss.NewStyle().Foreground(Colors.Success).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(Colors.Error).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(Colors.Info),
		Warning: lipgloss.NewStyle().Foreground(Colors.Warning),
	}
}

// Console status symbols.
const (
	SymbolSuccess = "✓"
	SymbolFailure = "✗"
	SymbolInfo    = "→"
	SymbolWarning = "!"
)
