package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/draalcore/devtool/internal/domain"
	"github.com/draalcore/devtool/internal/tui"
)

var styles = tui.DefaultStyles()

func printSuccess(w io.Writer, format string, args ...any) {
	printStatus(w, styles.Success.Render(tui.SymbolSuccess), format, args...)
}

func printFailure(w io.Writer, format string, args ...any) {
	printStatus(w, styles.Failure.Render(tui.SymbolFailure), format, args...)
}

func printInfo(w io.Writer, format string, args ...any) {
	printStatus(w, styles.Info.Render(tui.SymbolInfo), format, args...)
}

func printWarning(w io.Writer, format string, args ...any) {
	printStatus(w, styles.Warning.Render(tui.SymbolWarning), format, args...)
}

func printStatus(w io.Writer, symbol, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", symbol, fmt.Sprintf(format, args...))
}

// reportTask prints the outcome of a task run and passes err through.
// Setup errors are left to main, which prints them once.
// Dry runs print nothing so stdout carries only the script.
func reportTask(w io.Writer, task domain.TaskName, dryRun bool, err error) error {
	if dryRun && err == nil {
		return nil
	}
	if err != nil {
		var exitErr *domain.ExitError
		if errors.As(err, &exitErr) {
			printFailure(w, "%s failed (exit code %d)", task, exitErr.Code)
		}
		return err
	}
	printSuccess(w, "%s finished", task)
	return nil
}
