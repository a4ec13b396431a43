// Package cli implements the pdbctl command tree.
package cli

import (
	"context"

	"pdbctl/internal/config"
	"pdbctl/internal/project"

	"github.com/spf13/cobra"
)

// CLI wires the cobra command tree to the resolver and server
type CLI struct {
	cfg     *config.Config
	rootCmd *cobra.Command
	output  string
}

// New creates the CLI from the global configuration
func New(cfg *config.Config) *CLI {
	c := &CLI{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:   "pdbctl",
		Short: "Resolve Python project environments for debugger control",
		Long: `pdbctl locates the root of a Python project, discovers the interpreter of
its virtual environment, and sanitizes command-line argument strings before
they are used to construct a pdb invocation. It prefers a project's own
.venv/venv over whatever VIRTUAL_ENV happens to point at, so debugging a
project from inside another tool's environment still targets the right
interpreter.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to showing help if no subcommand
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&c.output, "output", "o", "text",
		"output format (text, json, yaml)")

	rootCmd.AddCommand(
		newProjectRootCommand(c),
		newVenvCommand(c),
		newArgsCommand(c),
		newExecCommand(c),
		newServerCommand(c),
	)

	c.rootCmd = rootCmd
	return c
}

// Execute runs the command tree
func (c *CLI) Execute(ctx context.Context, args []string) error {
	c.rootCmd.SetArgs(args)
	return c.rootCmd.ExecuteContext(ctx)
}

// resolver builds a project resolver honoring configured extra markers
func (c *CLI) resolver() *project.Resolver {
	return &project.Resolver{
		ExtraMarkers:   c.cfg.Resolver.ExtraMarkers,
		ExtraVenvNames: c.cfg.Resolver.ExtraVenvNames,
	}
}
