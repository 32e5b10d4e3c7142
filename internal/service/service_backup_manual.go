package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-snapshot-keeper/internal/envelope"
	"github.com/MKhiriev/go-snapshot-keeper/models"
)

func (s *backupService) BackupNow(ctx context.Context, opts ManualBackupOptions) (string, error) {
	log := s.logger.WithRunID(ctx)
	start := s.now()

	if s.store == nil {
		return "", ErrStoreNotConfigured
	}

	encrypt := s.manualEncryption(opts)
	key, body, err := s.buildEnvelope(ctx, s.cfg.ManualPrefix, s.manualSecret(opts), encrypt)
	if err == nil {
		putCtx, cancel := s.withOperationTimeout(ctx)
		err = s.store.Put(putCtx, key, body)
		cancel()
		if err != nil {
			err = fmt.Errorf("upload %s: %w", key, err)
		}
	}

	if err != nil {
		log.Err(err).Str("func", "backupService.BackupNow").Msg("manual backup failed")
		s.metrics.ObserveBackup(models.BackupModeManual, string(StateFailed), s.now().Sub(start))
		s.record(ctx, models.JournalEntry{
			Mode:      models.BackupModeManual,
			Encrypted: encrypt,
			Outcome:   string(StateFailed),
			Detail:    err.Error(),
		})
		return "", err
	}

	s.metrics.ObserveBackup(models.BackupModeManual, string(StateDone), s.now().Sub(start))
	s.record(ctx, models.JournalEntry{
		ObjectKey: key,
		Mode:      models.BackupModeManual,
		Encrypted: encrypt,
		Outcome:   string(StateDone),
	})
	log.Info().Str("object_key", key).Bool("encrypted", encrypt).Msg("manual backup uploaded")

	return key, nil
}

func (s *backupService) ExportToFile(ctx context.Context, path string, opts ManualBackupOptions) error {
	encrypt := s.manualEncryption(opts)

	env, err := s.sealSnapshot(ctx, s.manualSecret(opts), encrypt)
	if err != nil {
		return err
	}

	if err = s.envelopes.SaveEnvelope(ctx, path, env); err != nil {
		return fmt.Errorf("export to %s: %w", path, err)
	}

	s.logger.Info().Str("path", path).Bool("encrypted", encrypt).Msg("backup exported")
	return nil
}

func (s *backupService) RestoreFrom(ctx context.Context, env models.BackupEnvelope, secret *string, confirm ConfirmFunc) error {
	return s.restore(ctx, "", env, secret, confirm)
}

func (s *backupService) RestoreFromKey(ctx context.Context, key string, secret *string, confirm ConfirmFunc) error {
	if s.store == nil {
		return ErrStoreNotConfigured
	}

	getCtx, cancel := s.withOperationTimeout(ctx)
	body, err := s.store.Get(getCtx, key)
	cancel()
	if err != nil {
		return fmt.Errorf("download %s: %w", key, err)
	}

	env, err := envelope.Decode(body)
	if err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}

	return s.restore(ctx, key, env, secret, confirm)
}

func (s *backupService) ImportFromFile(ctx context.Context, path string, secret *string, confirm ConfirmFunc) error {
	env, err := s.envelopes.LoadEnvelope(ctx, path)
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}

	return s.restore(ctx, path, env, secret, confirm)
}

// restore opens env before asking for confirmation so a wrong PIN is reported
// without prompting. The snapshot provider is called once with the whole
// payload.
func (s *backupService) restore(ctx context.Context, source string, env models.BackupEnvelope, secret *string, confirm ConfirmFunc) (err error) {
	start := s.now()
	outcome := string(StateFailed)
	defer func() {
		s.metrics.ObserveRestore(outcome, s.now().Sub(start))
	}()

	if env.Encrypted && !hasSecret(secret) {
		if cached, ok := s.cache.Get(); ok {
			secret = &cached
		}
	}

	snapshot, err := s.sealer.Open(env, secret)
	if err != nil {
		return fmt.Errorf("open backup: %w", err)
	}

	preview := RestorePreview{
		Source:    source,
		Encrypted: env.Encrypted,
		Timestamp: env.Timestamp,
		Size:      len(snapshot),
	}
	if confirm == nil || !confirm(ctx, preview) {
		outcome = "declined"
		return ErrRestoreNotConfirmed
	}

	if err = s.snapshots.RestoreSnapshot(ctx, models.Snapshot(snapshot)); err != nil {
		return fmt.Errorf("restore snapshot: %w", err)
	}

	outcome = string(StateDone)
	s.logger.Info().Str("source", source).Bool("encrypted", env.Encrypted).Msg("backup restored")
	return nil
}

func (s *backupService) ListBackups(ctx context.Context) ([]models.BackupObject, error) {
	if s.store == nil {
		return nil, ErrStoreNotConfigured
	}

	var objects []models.BackupObject
	for _, group := range []struct {
		prefix string
		mode   models.BackupMode
	}{
		{s.cfg.AutoPrefix, models.BackupModeAutomatic},
		{s.cfg.ManualPrefix, models.BackupModeManual},
	} {
		listCtx, cancel := s.withOperationTimeout(ctx)
		keys, err := s.store.List(listCtx, group.prefix)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", group.prefix, err)
		}
		for _, key := range keys {
			createdAt, ok := ParseBackupKey(group.prefix, key)
			if !ok {
				continue
			}
			objects = append(objects, models.BackupObject{Key: key, Mode: group.mode, CreatedAt: createdAt})
		}
	}

	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].CreatedAt.After(objects[j].CreatedAt)
	})
	return objects, nil
}

// manualEncryption reports whether a manual backup is encrypted: the
// configuration must require it and the caller must not opt out.
func (s *backupService) manualEncryption(opts ManualBackupOptions) bool {
	return opts.EncryptIfConfigured && s.cfg.EncryptionRequired
}

// manualSecret prefers the secret given for this operation over the cached one.
func (s *backupService) manualSecret(opts ManualBackupOptions) *string {
	if hasSecret(opts.Secret) {
		return opts.Secret
	}
	if cached, ok := s.cache.Get(); ok {
		return &cached
	}
	return nil
}

func hasSecret(secret *string) bool {
	return secret != nil && *secret != ""
}
