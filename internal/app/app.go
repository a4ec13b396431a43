// Package app wires configuration, logging, and the CLI together.
package app

import (
	"context"
	"fmt"

	"pdbctl/internal/cli"
	"pdbctl/internal/config"
	"pdbctl/internal/logger"
)

// App represents the main application
type App struct {
	Config *config.Config
	CLI    *cli.CLI
}

// New creates a new application instance
func New() *App {
	return &App{}
}

// Run starts the application
func (a *App) Run(args []string) error {
	return a.RunWithContext(context.Background(), args)
}

// RunWithContext starts the application with a context for cancellation
func (a *App) RunWithContext(ctx context.Context, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.Config = cfg

	logger.SetLevel(cfg.Log.Level)
	logger.SetFormat(cfg.Log.Format)
	logger.Debug("configuration loaded")

	a.CLI = cli.New(cfg)
	return a.CLI.Execute(ctx, args)
}
