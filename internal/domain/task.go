package domain

import "fmt"

// TaskName identifies a developer task.
type TaskName string

// Available tasks.
const (
	TaskLint       TaskName = "lint"
	TaskUnitTest   TaskName = "unittest"
	TaskRelease    TaskName = "release"
	TaskVirtualenv TaskName = "virtualenv"
)

// TaskInfo describes a task for listings and the task picker.
type TaskInfo struct {
	Name        TaskName `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Script      string   `json:"script,omitempty" yaml:"script,omitempty"`
	// RequiresArgs is true when the task cannot run with defaults alone.
	RequiresArgs bool `json:"requires_args,omitempty" yaml:"requires_args,omitempty"`
}

// AllTasks returns the task catalog in display order.
func AllTasks() []TaskInfo {
	return []TaskInfo{
		{Name: TaskLint, Description: "Check code style with flake8"},
		{Name: TaskUnitTest, Description: "Run unit tests with coverage report"},
		{Name: TaskVirtualenv, Description: "Set up a virtual environment for local development"},
		{Name: TaskRelease, Description: "Bump version, tag and push a release", RequiresArgs: true},
	}
}

// FindTask looks up a task by name.
func FindTask(name string) (TaskInfo, error) {
	for _, t := range AllTasks() {
		if string(t.Name) == name {
			return t, nil
		}
	}
	return TaskInfo{}, fmt.Errorf("%w: %s", ErrTaskNotFound, name)
}
