package client

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-snapshot-keeper/internal/crypto"
	"github.com/MKhiriev/go-snapshot-keeper/internal/service"
)

func TestVersionCommand(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.run(t, "version"))
	assert.Contains(t, env.out.String(), "Version: v1.0.0")
	assert.Contains(t, env.out.String(), "Commit: abc")
}

func TestBackupCommand_Encrypted(t *testing.T) {
	env := newTestEnv(t)
	env.prompter.pins = []string{"1234"}

	require.NoError(t, env.run(t, "backup"))

	keys := env.keys(t, "manual_backup")
	require.Len(t, keys, 1)
	assert.Empty(t, env.keys(t, "auto_backup"))
	assert.Equal(t, []string{"BACKUP PIN"}, env.prompter.prompts)
	assert.Contains(t, env.out.String(), "✓ Backup uploaded as "+keys[0])
	assert.Contains(t, env.out.String(), "(encrypted)")

	raw, err := env.blobs.Get(t.Context(), keys[0])
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "mail")
}

func TestBackupCommand_Plaintext(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.run(t, "backup", "--plaintext"))

	keys := env.keys(t, "manual_backup")
	require.Len(t, keys, 1)
	assert.Empty(t, env.prompter.prompts)
	assert.Contains(t, env.out.String(), "(plaintext)")
}

func TestBackupCommand_PromptCancelled(t *testing.T) {
	env := newTestEnv(t)
	env.prompter.pinErr = errors.New("cancelled by user")

	err := env.run(t, "backup")
	require.Error(t, err)
	assert.Empty(t, env.keys(t, "manual_backup"))
}

func TestExportImportCommands(t *testing.T) {
	env := newTestEnv(t)
	env.prompter.pins = []string{"1234", "1234"}
	env.prompter.confirm = true
	file := filepath.Join(env.dir, "export.json")

	require.NoError(t, env.run(t, "export", file))
	assert.FileExists(t, file)

	require.NoError(t, os.WriteFile(env.snapshotPath, []byte(`{"entries":[]}`), 0o600))

	require.NoError(t, env.run(t, "import", file))
	restored, err := os.ReadFile(env.snapshotPath)
	require.NoError(t, err)
	assert.JSONEq(t, testSnapshot, string(restored))

	require.Len(t, env.prompter.previews, 1)
	assert.True(t, env.prompter.previews[0].Encrypted)
	assert.Equal(t, file, env.prompter.previews[0].Source)
	assert.Contains(t, env.out.String(), "✓ Restored from "+file)
}

func TestImportCommand_WrongPIN(t *testing.T) {
	env := newTestEnv(t)
	env.prompter.pins = []string{"1234", "9999"}
	env.prompter.confirm = true
	file := filepath.Join(env.dir, "export.json")

	require.NoError(t, env.run(t, "export", file))
	require.NoError(t, os.WriteFile(env.snapshotPath, []byte(`{"entries":[]}`), 0o600))

	err := env.run(t, "import", file)
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrAuthentication)
	assert.Equal(t, "incorrect PIN or corrupted backup", err.Error())
	assert.Empty(t, env.prompter.previews)

	current, rerr := os.ReadFile(env.snapshotPath)
	require.NoError(t, rerr)
	assert.JSONEq(t, `{"entries":[]}`, string(current))
}

func TestRestoreCommand_Declined(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.run(t, "backup", "--plaintext"))
	key := env.keys(t, "manual_backup")[0]
	require.NoError(t, os.WriteFile(env.snapshotPath, []byte(`{"entries":[]}`), 0o600))

	require.NoError(t, env.run(t, "restore", key))

	current, err := os.ReadFile(env.snapshotPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"entries":[]}`, string(current))
	assert.Empty(t, env.prompter.prompts, "plaintext restore needs no PIN")
	require.Len(t, env.prompter.previews, 1)
	assert.Contains(t, env.out.String(), "Restore cancelled")
}

func TestRestoreCommand_Confirmed(t *testing.T) {
	env := newTestEnv(t)
	env.prompter.pins = []string{"2468", "2468"}
	env.prompter.confirm = true

	require.NoError(t, env.run(t, "backup"))
	key := env.keys(t, "manual_backup")[0]
	require.NoError(t, os.WriteFile(env.snapshotPath, []byte(`{"entries":[]}`), 0o600))

	require.NoError(t, env.run(t, "restore", key))

	restored, err := os.ReadFile(env.snapshotPath)
	require.NoError(t, err)
	assert.JSONEq(t, testSnapshot, string(restored))
	assert.Len(t, env.prompter.prompts, 2)
}

func TestRestoreCommand_NotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.run(t, "restore", "manual_backup_1.json")
	require.Error(t, err)
	assert.Equal(t, service.KindNotFound, service.ErrorKind(err))
}

func TestListCommand(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.run(t, "list"))
	assert.Contains(t, env.out.String(), "No backups found")

	require.NoError(t, env.run(t, "backup", "--plaintext"))
	env.out.Reset()

	require.NoError(t, env.run(t, "list"))
	key := env.keys(t, "manual_backup")[0]
	assert.Contains(t, env.out.String(), key)
	assert.Contains(t, env.out.String(), "manual")
}

func TestHistoryCommand(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.run(t, "history"))
	assert.Contains(t, env.out.String(), "Journal is empty")

	require.NoError(t, env.run(t, "backup", "--plaintext"))
	key := env.keys(t, "manual_backup")[0]
	env.out.Reset()

	require.NoError(t, env.run(t, "history", "--limit", "5"))
	assert.Contains(t, env.out.String(), key)
	assert.Contains(t, env.out.String(), "manual")
}

func TestCommands_ArgsValidation(t *testing.T) {
	env := newTestEnv(t)

	assert.Error(t, env.run(t, "restore"))
	assert.Error(t, env.run(t, "export"))
	assert.Error(t, env.run(t, "list", "extra"))
}
