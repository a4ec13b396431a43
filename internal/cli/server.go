package cli

import (
	"pdbctl/internal/server"

	"github.com/spf13/cobra"
)

func newServerCommand(c *CLI) *cobra.Command {
	var host string
	var port int

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Run the pdbctl HTTP API server",
		Long: `Serves project resolution, venv discovery, and argument sanitization as a
JSON API. Endpoints: GET /healthz, POST /api/v1/resolve,
POST /api/v1/arguments, POST /api/v1/invocation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *c.cfg
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			srv := server.New(&cfg)
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&host, "host", c.cfg.Server.Host, "bind address")
	cmd.Flags().IntVar(&port, "port", c.cfg.Server.Port, "listen port")
	return cmd
}
