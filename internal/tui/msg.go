package tui

import "github.com/draalcore/devtool/internal/domain"

// MsgTasksLoaded is sent when the task catalog has been loaded.
type MsgTasksLoaded struct {
	Tasks []domain.TaskInfo
}

// MsgError is sent when loading fails.
type MsgError struct {
	Err error
}
