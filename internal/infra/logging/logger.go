// Package logging provides file-based logging for devtool.
// It outputs logs to both a global log file (<git dir>/devtool/logs/devtool.log)
// and task-specific log files (<git dir>/devtool/logs/task-<name>.log).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/draalcore/devtool/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes log entries to files under the devtool directory.
// Fields are ordered to minimize memory padding.
type Logger struct {
	globalFile *os.File
	taskFiles  map[domain.TaskName]*os.File
	now        func() time.Time
	toolDir    string
	mu         sync.Mutex
	level      slog.Level
}

// New creates a new Logger that writes to the devtool log directory.
// If toolDir is empty, logging is disabled (returns a no-op logger).
func New(toolDir string, level slog.Level) *Logger {
	return &Logger{
		toolDir:   toolDir,
		level:     level,
		now:       time.Now,
		taskFiles: make(map[domain.TaskName]*os.File),
	}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureLogsDir creates the logs directory if it doesn't exist.
func (l *Logger) ensureLogsDir() error {
	return os.MkdirAll(filepath.Join(l.toolDir, "logs"), 0o750)
}

// openLogFile opens a log file for appending.
func openLogFile(path string) (*os.File, error) {
	// G302: Log files are append-only and need read access by repository users
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
}

// ensureGlobalFile opens or returns the global log file.
func (l *Logger) ensureGlobalFile() (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.globalFile != nil {
		return l.globalFile, nil
	}

	if err := l.ensureLogsDir(); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	f, err := openLogFile(domain.GlobalLogPath(l.toolDir))
	if err != nil {
		return nil, fmt.Errorf("open global log file: %w", err)
	}
	l.globalFile = f
	return f, nil
}

// ensureTaskFile opens or returns the task log file.
func (l *Logger) ensureTaskFile(task domain.TaskName) (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if f, ok := l.taskFiles[task]; ok {
		return f, nil
	}

	if err := l.ensureLogsDir(); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	f, err := openLogFile(domain.TaskLogPath(l.toolDir, task))
	if err != nil {
		return nil, fmt.Errorf("open task log file: %w", err)
	}
	l.taskFiles[task] = f
	return f, nil
}

// Close closes all open log files.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lastErr error
	if l.globalFile != nil {
		if err := l.globalFile.Close(); err != nil {
			lastErr = err
		}
		l.globalFile = nil
	}
	for name, f := range l.taskFiles {
		if err := f.Close(); err != nil {
			lastErr = err
		}
		delete(l.taskFiles, name)
	}
	return lastErr
}

// formatLog formats a log entry.
// Format: [2025-12-30 09:32:51] [INFO] [lint] [category] message
func formatLog(t time.Time, level slog.Level, task domain.TaskName, category, msg string) string {
	taskStr := "global"
	if task != "" {
		taskStr = string(task)
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		taskStr,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// log writes a log entry to appropriate files based on task.
// An empty task logs only to the global log.
func (l *Logger) log(level slog.Level, task domain.TaskName, category, msg string) {
	if l.toolDir == "" {
		return // Logging disabled
	}

	if level < l.level {
		return
	}

	entry := formatLog(l.now(), level, task, category, msg)

	if gf, err := l.ensureGlobalFile(); err == nil {
		_, _ = io.WriteString(gf, entry)
	}

	if task != "" {
		if tf, err := l.ensureTaskFile(task); err == nil {
			_, _ = io.WriteString(tf, entry)
		}
	}
}

// Info logs an info message.
func (l *Logger) Info(task domain.TaskName, category, msg string) {
	l.log(slog.LevelInfo, task, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(task domain.TaskName, category, msg string) {
	l.log(slog.LevelDebug, task, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(task domain.TaskName, category, msg string) {
	l.log(slog.LevelWarn, task, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(task domain.TaskName, category, msg string) {
	l.log(slog.LevelError, task, category, msg)
}
