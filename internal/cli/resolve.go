package cli

import (
	"fmt"
	"strings"

	"pdbctl/internal/errors"
	"pdbctl/internal/logger"

	"github.com/spf13/cobra"
)

// rootResult is the output of `pdbctl root`
type rootResult struct {
	Path        string `json:"path" yaml:"path"`
	ProjectRoot string `json:"project_root" yaml:"project_root"`
}

// venvResult is the output of `pdbctl venv`
type venvResult struct {
	Path        string `json:"path" yaml:"path"`
	ProjectRoot string `json:"project_root" yaml:"project_root"`
	Python      string `json:"python,omitempty" yaml:"python,omitempty"`
	BinDir      string `json:"bin_dir,omitempty" yaml:"bin_dir,omitempty"`
}

func newProjectRootCommand(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "root [path]",
		Short: "Locate the project root enclosing a path",
		Long: `Walks upward from the given path (default: current directory) and prints
the closest ancestor containing a project marker. When no marker is found
anywhere up to the filesystem root, the start path itself is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := "."
			if len(args) == 1 {
				start = args[0]
			}

			result := rootResult{
				Path:        start,
				ProjectRoot: c.resolver().FindRoot(start),
			}
			logger.Debugf("resolved project root %s for %s", result.ProjectRoot, start)

			return c.render(cmd, result, func() string {
				return result.ProjectRoot
			})
		},
	}
}

func newVenvCommand(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "venv [path]",
		Short: "Discover the virtual environment of the enclosing project",
		Long: `Resolves the project root for the given path (default: current directory)
and prints the python executable and bin directory of its virtual
environment. Project-local .venv/venv directories take precedence over the
VIRTUAL_ENV and CONDA_PREFIX environment variables. Fails when no
environment resolves.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := "."
			if len(args) == 1 {
				start = args[0]
			}

			resolver := c.resolver()
			root := resolver.FindRoot(start)
			python, binDir := resolver.FindVenv(root)
			if python == "" {
				return errors.VenvNotFound(root)
			}
			logger.Debugf("resolved venv python %s for %s", python, root)

			result := venvResult{
				Path:        start,
				ProjectRoot: root,
				Python:      python,
				BinDir:      binDir,
			}
			return c.render(cmd, result, func() string {
				var b strings.Builder
				fmt.Fprintf(&b, "python:  %s\n", result.Python)
				fmt.Fprintf(&b, "bin dir: %s", result.BinDir)
				return b.String()
			})
		},
	}
}
