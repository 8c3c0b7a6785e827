// Package main is the entry point for the remindersbot CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/kittyjosh111/discord-reminders-bot/internal/app"
	"github.com/kittyjosh111/discord-reminders-bot/internal/cli"
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
	// Load .env if present; REMINDERS_* variables override the config
	// file.
	_ = loadDotEnv()

	container, err := app.New()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// loadDotEnv loads a .env file from the working directory, falling back
// to the directory of the executable.
func loadDotEnv() error {
	if err := godotenv.Load(); err == nil || !errors.Is(err, os.ErrNotExist) {
		return err
	}
	exe, err := os.Executable()
	if err != nil {
		return err
	}
	return godotenv.Load(filepath.Join(filepath.Dir(exe), ".env"))
}
