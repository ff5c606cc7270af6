package domain

import (
	"fmt"
	"path/filepath"
)

// RepoToolDir returns the directory devtool keeps its state in: <git dir>/devtool.
func RepoToolDir(gitDir string) string {
	return filepath.Join(gitDir, "devtool")
}

// GlobalToolDir returns the global config directory under configHome.
func GlobalToolDir(configHome string) string {
	return filepath.Join(configHome, "devtool")
}

// RepoConfigPath returns the path of the project config file.
func RepoConfigPath(root string) string {
	return filepath.Join(root, RepoConfigFileName)
}

// TaskLogPath returns the path to the log file of a task.
func TaskLogPath(toolDir string, task TaskName) string {
	return filepath.Join(toolDir, "logs", fmt.Sprintf("task-%s.log", task))
}

// GlobalLogPath returns the path to the global log file.
func GlobalLogPath(toolDir string) string {
	return filepath.Join(toolDir, "logs", "devtool.log")
}
