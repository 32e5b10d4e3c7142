package client

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-snapshot-keeper/internal/ui"
)

const flagPlaintext = "plaintext"

func (c *cli) backupCommand() *cobra.Command {
	var plaintext bool

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Upload a manual backup of the current snapshot",
		Long: `Seal the current snapshot and upload it under the manual prefix.
Manual backups are never removed by retention.`,
		Args: cobra.NoArgs,
		RunE: c.withApp(func(cmd *cobra.Command, args []string) error {
			return c.app.runBackup(cmd.Context(), !plaintext)
		}),
	}
	cmd.Flags().BoolVar(&plaintext, flagPlaintext, false, "store the backup unencrypted")
	return cmd
}

func (c *cli) exportCommand() *cobra.Command {
	var plaintext bool

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write a backup of the current snapshot to a local file",
		Args:  cobra.ExactArgs(1),
		RunE: c.withApp(func(cmd *cobra.Command, args []string) error {
			return c.app.runExport(cmd.Context(), args[0], !plaintext)
		}),
	}
	cmd.Flags().BoolVar(&plaintext, flagPlaintext, false, "write the backup unencrypted")
	return cmd
}

func (c *cli) restoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <key>",
		Short: "Replace local state with a remote backup",
		Long: `Download the backup stored under key, decrypt it and, after confirmation,
replace the local snapshot with it. Run "keeper list" to see the keys.`,
		Args: cobra.ExactArgs(1),
		RunE: c.withApp(func(cmd *cobra.Command, args []string) error {
			return c.app.runRestore(cmd.Context(), args[0], restoreFromKey)
		}),
	}
}

func (c *cli) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace local state with a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: c.withApp(func(cmd *cobra.Command, args []string) error {
			return c.app.runRestore(cmd.Context(), args[0], restoreFromFile)
		}),
	}
}

// commandError is printed by main; it carries the humanized message.
type commandError struct {
	err error
}

func (e *commandError) Error() string {
	return ui.HumanizeError(e.err)
}

func (e *commandError) Unwrap() error {
	return e.err
}

func failed(err error) error {
	if err == nil {
		return nil
	}
	return &commandError{err: err}
}

func encryptionLabel(encrypted bool) string {
	if encrypted {
		return "encrypted"
	}
	return "plaintext"
}

