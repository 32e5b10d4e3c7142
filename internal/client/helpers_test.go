package client

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-snapshot-keeper/internal/adapter"
	"github.com/MKhiriev/go-snapshot-keeper/internal/config"
	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
	"github.com/MKhiriev/go-snapshot-keeper/internal/service"
	"github.com/MKhiriev/go-snapshot-keeper/internal/store"
	"github.com/MKhiriev/go-snapshot-keeper/models"
)

const testSnapshot = `{"entries":[{"id":1,"title":"mail"}]}`

type stubPrompter struct {
	pins     []string
	pinErr   error
	prompts  []string
	confirm  bool
	previews []service.RestorePreview
}

func (p *stubPrompter) PromptPIN(_ context.Context, title string, _ bool) (string, error) {
	p.prompts = append(p.prompts, title)
	if p.pinErr != nil {
		return "", p.pinErr
	}
	if len(p.pins) == 0 {
		return "", context.Canceled
	}
	pin := p.pins[0]
	p.pins = p.pins[1:]
	return pin, nil
}

func (p *stubPrompter) ConfirmFunc() service.ConfirmFunc {
	return func(_ context.Context, preview service.RestorePreview) bool {
		p.previews = append(p.previews, preview)
		return p.confirm
	}
}

type testEnv struct {
	cfg          *config.ClientConfig
	blobs        *adapter.MemoryBlobStore
	prompter     *stubPrompter
	out          *bytes.Buffer
	snapshotPath string
	dir          string
}

func testClientConfig(dir string) *config.ClientConfig {
	return &config.ClientConfig{
		Backup: config.ClientBackup{
			Enabled:            true,
			RetentionCount:     3,
			AutoPrefix:         "auto_backup",
			ManualPrefix:       "manual_backup",
			EncryptionRequired: true,
			Interval:           time.Hour,
			OperationTimeout:   5 * time.Second,
		},
		Adapter: config.ClientAdapter{Kind: config.AdapterMemory},
		Storage: config.ClientStorage{
			JournalDSN:   filepath.Join(dir, "journal.db"),
			SnapshotPath: filepath.Join(dir, "snapshot.json"),
		},
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	dir := t.TempDir()
	env := &testEnv{
		cfg:      testClientConfig(dir),
		blobs:    adapter.NewMemoryBlobStore(),
		prompter: &stubPrompter{},
		out:      &bytes.Buffer{},
		dir:      dir,
	}
	env.snapshotPath = env.cfg.Storage.SnapshotPath
	require.NoError(t, os.WriteFile(env.snapshotPath, []byte(testSnapshot), 0o600))
	return env
}

func (e *testEnv) newApp(ctx context.Context, _ *cobra.Command) (*App, error) {
	storages, err := store.NewStorages(ctx, e.cfg.Storage, logger.Nop())
	if err != nil {
		return nil, err
	}
	return newApp(e.cfg, e.blobs, adapter.AlwaysOnline{}, storages, e.prompter,
		models.NewAppBuildInfo("v1.0.0", "2026-03-14", "abc"), e.out, logger.Nop()), nil
}

// run executes the keeper command line args against env.
func (e *testEnv) run(t *testing.T, args ...string) error {
	t.Helper()

	c := &cli{buildInfo: models.NewAppBuildInfo("v1.0.0", "2026-03-14", "abc"), in: strings.NewReader(""), out: e.out}
	c.newApp = e.newApp

	root := c.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func (e *testEnv) keys(t *testing.T, prefix string) []string {
	t.Helper()
	keys, err := e.blobs.List(context.Background(), prefix)
	require.NoError(t, err)
	return keys
}
