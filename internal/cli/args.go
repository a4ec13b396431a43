package cli

import (
	"strings"

	"pdbctl/internal/validation"

	"github.com/spf13/cobra"
)

// argsResult is the output of `pdbctl args`
type argsResult struct {
	Raw    string   `json:"raw" yaml:"raw"`
	Tokens []string `json:"tokens" yaml:"tokens"`
}

func newArgsCommand(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "args <raw>",
		Short: "Sanitize and tokenize a raw argument string",
		Long: `Rejects the input outright when it contains a shell metacharacter sequence
(;, &&, ||, backtick, $(, |, >, <) anywhere, including inside quotes.
Otherwise splits it on whitespace, honoring double-quoted spans, and prints
the resulting tokens.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := validation.Arguments(args[0])
			if err != nil {
				return err
			}

			result := argsResult{Raw: args[0], Tokens: tokens}
			return c.render(cmd, result, func() string {
				if len(result.Tokens) == 0 {
					return "(no arguments)"
				}
				return strings.Join(result.Tokens, "\n")
			})
		},
	}
}
