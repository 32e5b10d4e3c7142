package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-snapshot-keeper/internal/service"
	"github.com/MKhiriev/go-snapshot-keeper/internal/ui"
)

func (a *App) runBackup(ctx context.Context, encrypt bool) error {
	secret, err := a.sealSecret(ctx, encrypt)
	if err != nil {
		return failed(err)
	}

	s, cleanup := startSpinner(a.out, "Uploading backup...")
	defer cleanup()

	key, err := a.services.Backups.BackupNow(ctx, service.ManualBackupOptions{EncryptIfConfigured: encrypt, Secret: secret})
	if err != nil {
		a.logger.Err(err).Str("func", "*App.runBackup").Msg("manual backup failed")
		return failed(err)
	}

	s.FinalMSG = ui.SuccessLine("Backup uploaded as " + ui.Path.Sprint(key) + " " +
		ui.Muted.Sprint(encryptionLabel(secret != nil)))
	return nil
}

func (a *App) runExport(ctx context.Context, path string, encrypt bool) error {
	secret, err := a.sealSecret(ctx, encrypt)
	if err != nil {
		return failed(err)
	}

	if err = a.services.Backups.ExportToFile(ctx, path, service.ManualBackupOptions{EncryptIfConfigured: encrypt, Secret: secret}); err != nil {
		a.logger.Err(err).Str("func", "*App.runExport").Msg("export failed")
		return failed(err)
	}

	a.printf("%s\n", ui.SuccessLine("Backup written to "+ui.Path.Sprint(path)+" "+ui.Muted.Sprint(encryptionLabel(secret != nil))))
	return nil
}

type restoreSource int

const (
	restoreFromKey restoreSource = iota
	restoreFromFile
)

func (a *App) runRestore(ctx context.Context, source string, from restoreSource) error {
	confirm := a.prompter.ConfirmFunc()

	err := a.withPINRetry(ctx, func(secret *string) error {
		if from == restoreFromFile {
			return a.services.Backups.ImportFromFile(ctx, source, secret, confirm)
		}

		s, cleanup := startSpinner(a.out, "Downloading backup...")
		defer cleanup()

		// the spinner must not draw over the confirmation prompt
		confirmStopped := func(ctx context.Context, preview service.RestorePreview) bool {
			s.Stop()
			return confirm(ctx, preview)
		}
		return a.services.Backups.RestoreFromKey(ctx, source, secret, confirmStopped)
	})
	if err != nil {
		a.logger.Err(err).Str("func", "*App.runRestore").Str("source", source).Msg("restore failed")
		if service.ErrorKind(err) == service.KindNotConfirmed {
			a.printf("%s\n", ui.WarningLine("Restore cancelled, local data unchanged"))
			return nil
		}
		return failed(err)
	}

	a.printf("%s\n", ui.SuccessLine("Restored from "+ui.Path.Sprint(source)))
	return nil
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
