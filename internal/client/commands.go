package client

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-snapshot-keeper/internal/config"
	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
	"github.com/MKhiriev/go-snapshot-keeper/internal/tui"
	"github.com/MKhiriev/go-snapshot-keeper/models"
)

// appFactory builds the App once flags are parsed.
type appFactory func(ctx context.Context, cmd *cobra.Command) (*App, error)

type cli struct {
	buildInfo models.AppBuildInfo
	in        io.Reader
	out       io.Writer
	logDir    string

	newApp appFactory
	app    *App
}

// NewRootCommand returns the keeper command tree. Prompts read from in and
// command output goes to out.
func NewRootCommand(buildInfo models.AppBuildInfo, in io.Reader, out io.Writer) *cobra.Command {
	c := &cli{buildInfo: buildInfo, in: in, out: out}
	c.newApp = c.defaultApp
	return c.rootCommand()
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "keeper",
		Short: "Encrypted snapshot backups of application state",
		Long: `keeper seals the application snapshot into a PIN-protected envelope and
stores it in a remote object store.

Automatic backups keep a rolling window of the newest copies; manual backups
and exported files are never pruned.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	root.SetIn(c.in)
	root.SetOut(c.out)

	config.RegisterFlags(root.PersistentFlags())
	root.PersistentFlags().StringVar(&c.logDir, "log-dir", "", "Directory of the keeper log file (default: next to the binary)")

	root.AddCommand(
		c.backupCommand(),
		c.exportCommand(),
		c.restoreCommand(),
		c.importCommand(),
		c.listCommand(),
		c.historyCommand(),
		c.autoCommand(),
		c.versionCommand(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[annotationNoApp] != "" {
		return nil
	}
	app, err := c.newApp(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	c.app = app
	return nil
}

// withApp closes the App once run returns, whatever the outcome.
func (c *cli) withApp(run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer func() {
			if err := c.app.Close(); err != nil {
				c.app.logger.Err(err).Str("func", "cli.withApp").Msg("error closing app")
			}
			c.app = nil
		}()
		return run(cmd, args)
	}
}

func (c *cli) defaultApp(ctx context.Context, cmd *cobra.Command) (*App, error) {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return nil, err
	}
	log := logger.NewClientLogger("keeper", c.logDir, cfg.App.LogLevel)
	return NewApp(ctx, cfg, tui.New(c.in, c.out, log), c.buildInfo, c.out, log)
}

// annotationNoApp marks commands that run without config and storage.
const annotationNoApp = "no-app"

func (c *cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoApp: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), tui.RenderBuildInfo(c.buildInfo)+"\n")
			return err
		},
	}
}
