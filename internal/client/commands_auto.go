package client

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func (c *cli) autoCommand() *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "auto",
		Short: "Run automatic backups in the foreground",
		Long: `Ask for the backup PIN once, keep it in memory for the session and run an
automatic backup every --interval, keeping the newest --retention-count
copies. With --metrics-address set, /status and /metrics are served there.

SIGINT or SIGTERM stops the daemon and forgets the PIN.`,
		Args: cobra.NoArgs,
		RunE: c.withApp(func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if once {
				return c.app.runOnce(ctx)
			}
			return c.app.runDaemon(ctx)
		}),
	}
	cmd.Flags().BoolVar(&once, "once", false, "run a single automatic backup and exit")
	return cmd
}
