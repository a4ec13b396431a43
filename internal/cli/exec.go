package cli

import (
	"fmt"
	"strings"

	"pdbctl/internal/invocation"
	"pdbctl/internal/logger"

	"github.com/spf13/cobra"
)

func newExecCommand(c *CLI) *cobra.Command {
	var startPath string
	var rawArgs string

	cmd := &cobra.Command{
		Use:   "exec <script>",
		Short: "Construct the pdb invocation for a script",
		Long: `Resolves the project around --path (default: current directory), discovers
its virtual environment, sanitizes --args, and prints the full pdb command
invocation. The command is only constructed, never executed; pass it to
your spawner of choice.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := &invocation.Builder{Resolver: c.resolver()}
			inv, err := builder.Build(startPath, args[0], rawArgs)
			if err != nil {
				return err
			}
			logger.Debugf("built invocation %s for %s", inv.ID, inv.Script)

			return c.render(cmd, inv, func() string {
				var b strings.Builder
				fmt.Fprintf(&b, "id:      %s\n", inv.ID)
				fmt.Fprintf(&b, "root:    %s\n", inv.ProjectRoot)
				if inv.Python != "" {
					fmt.Fprintf(&b, "python:  %s\n", inv.Python)
				}
				fmt.Fprintf(&b, "argv:    %s", strings.Join(inv.Argv, " "))
				for _, kv := range inv.Env {
					fmt.Fprintf(&b, "\nenv:     %s", kv)
				}
				return b.String()
			})
		},
	}

	cmd.Flags().StringVar(&startPath, "path", ".", "start path for project resolution")
	cmd.Flags().StringVar(&rawArgs, "args", "", "raw argument string passed to the script")
	return cmd
}
