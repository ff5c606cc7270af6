// Package tui provides the interactive task picker for devtool.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal       Mode = iota // Task list navigation
	ModeInputVersion             // Version prompt before release
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInputVersion:
		return "input_version"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	return m == ModeInputVersion
}
