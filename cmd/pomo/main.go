// Package main is the entry point for the pomo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pomo-dev/pomo/internal/app"
	"github.com/pomo-dev/pomo/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is optional; it can set POMO_USER for the identity gate.
	_ = godotenv.Load()

	container, err := app.New()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
