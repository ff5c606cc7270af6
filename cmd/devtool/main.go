// Package main is the entry point for the devtool CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/draalcore/devtool/internal/app"
	"github.com/draalcore/devtool/internal/cli"
	"github.com/draalcore/devtool/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	err := run()
	if err != nil {
		// A failed child already wrote its own diagnostics
		var exitErr *domain.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	os.Exit(domain.ExitCode(err))
}

func run() error {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Create dependency injection container
	container, err := app.New(cwd)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.ExecuteContext(context.Background())
}
