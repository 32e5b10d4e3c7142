package client

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-snapshot-keeper/internal/store"
)

func (c *cli) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List remote backups, newest first",
		Args:  cobra.NoArgs,
		RunE: c.withApp(func(cmd *cobra.Command, args []string) error {
			return c.app.runList(cmd.Context())
		}),
	}
}

func (c *cli) historyCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the local backup journal",
		Args:  cobra.NoArgs,
		RunE: c.withApp(func(cmd *cobra.Command, args []string) error {
			return c.app.runHistory(cmd.Context(), limit)
		}),
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", store.DefaultJournalLimit, "number of entries to show")
	return cmd
}
