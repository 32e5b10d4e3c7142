package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-snapshot-keeper/internal/envelope"
	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
	"github.com/MKhiriev/go-snapshot-keeper/internal/utils"
	"github.com/MKhiriev/go-snapshot-keeper/models"
)

func (s *backupService) TriggerAutomaticBackup(ctx context.Context) AutoBackupResult {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Debug().Msg("automatic backup already running, trigger coalesced")
		return skipped(SkipAlreadyRunning)
	}
	defer s.running.Store(false)

	runID := ""
	if s.ids != nil {
		runID = s.ids.Generate()
	}
	ctx = utils.WithRunID(ctx, runID)
	log := s.logger.WithRunID(ctx)
	start := s.now()

	var result AutoBackupResult
	outcome := BestEffort(ctx, log, "automatic backup", func(ctx context.Context) error {
		result = s.runAutomatic(ctx, log)
		return result.Err
	})
	if outcome.Panicked {
		result = failed(result.FailedAt, outcome.Err)
		if result.FailedAt == "" {
			result.FailedAt = StateIdle
		}
	}
	result.RunID = runID

	s.metrics.ObserveBackup(models.BackupModeAutomatic, string(result.State), s.now().Sub(start))
	s.metrics.AddPruned(len(result.Pruned))
	s.metrics.AddPruneFailures(len(result.PruneFailures))

	s.record(ctx, models.JournalEntry{
		ObjectKey: result.Key,
		Mode:      models.BackupModeAutomatic,
		Encrypted: s.cfg.EncryptionRequired && result.Uploaded(),
		Outcome:   string(result.State),
		Detail:    result.detail(),
	})

	event := log.Info()
	if result.State == StateFailed {
		event = log.Warn().Str("failed_at", string(result.FailedAt))
	}
	event.
		Str("state", string(result.State)).
		Str("skip_reason", string(result.SkipReason)).
		Str("object_key", result.Key).
		Int("pruned", len(result.Pruned)).
		Int("prune_failures", len(result.PruneFailures)).
		Msg("automatic backup finished")

	return result
}

// runAutomatic walks the state machine:
// CheckPolicy -> ObtainSecret -> BuildEnvelope -> Upload -> ListExisting -> Prune -> Done.
func (s *backupService) runAutomatic(ctx context.Context, log *logger.Logger) AutoBackupResult {
	state := StateCheckPolicy
	log.Debug().Str("state", string(state)).Msg("automatic backup state")

	if !s.cfg.Enabled {
		return skipped(SkipDisabled)
	}
	if s.store == nil {
		return skipped(SkipNotConfigured)
	}
	if !s.online(ctx) {
		return skipped(SkipOffline)
	}

	state = StateObtainSecret
	log.Debug().Str("state", string(state)).Msg("automatic backup state")

	var secret *string
	if s.cfg.EncryptionRequired {
		pin, ok := s.cache.Get()
		if !ok {
			log.Info().Msg("no PIN available, automatic backup skipped")
			return skipped(SkipNoSecret)
		}
		secret = &pin
	}

	state = StateBuildEnvelope
	log.Debug().Str("state", string(state)).Msg("automatic backup state")

	key, body, err := s.buildEnvelope(ctx, s.cfg.AutoPrefix, secret, s.cfg.EncryptionRequired)
	if err != nil {
		return failed(state, err)
	}

	state = StateUpload
	log.Debug().Str("state", string(state)).Str("object_key", key).Msg("automatic backup state")

	putCtx, cancel := s.withOperationTimeout(ctx)
	err = s.store.Put(putCtx, key, body)
	cancel()
	if err != nil {
		return failed(state, fmt.Errorf("upload %s: %w", key, err))
	}

	state = StateListExisting
	log.Debug().Str("state", string(state)).Msg("automatic backup state")

	listCtx, cancel := s.withOperationTimeout(ctx)
	keys, err := s.store.List(listCtx, s.cfg.AutoPrefix)
	cancel()
	if err != nil {
		result := failed(state, fmt.Errorf("list %s: %w", s.cfg.AutoPrefix, err))
		result.Key = key
		return result
	}

	state = StatePrune
	log.Debug().Str("state", string(state)).Int("existing", len(keys)).Msg("automatic backup state")

	result := AutoBackupResult{State: StateDone, Key: key}
	result.Pruned, result.PruneFailures = s.prune(ctx, log, keys)

	return result
}

// prune deletes the oldest automatic backups beyond the retention count. Each
// deletion is independent; failures are logged and reported, never retried.
func (s *backupService) prune(ctx context.Context, log *logger.Logger, keys []string) (deleted, failures []string) {
	for _, key := range selectForPruning(s.cfg.AutoPrefix, keys, s.cfg.RetentionCount) {
		outcome := BestEffort(ctx, log, "prune "+key, func(ctx context.Context) error {
			delCtx, cancel := s.withOperationTimeout(ctx)
			defer cancel()
			return s.store.Delete(delCtx, key)
		})
		if outcome.Failed() {
			failures = append(failures, key)
			continue
		}
		deleted = append(deleted, key)
	}
	return deleted, failures
}

func (s *backupService) online(ctx context.Context) bool {
	checkCtx, cancel := s.withOperationTimeout(ctx)
	defer cancel()
	return s.connectivity.Online(checkCtx)
}

// buildEnvelope snapshots the application state and seals it. The key
// timestamp is taken when the envelope is built.
func (s *backupService) buildEnvelope(ctx context.Context, prefix string, secret *string, encrypt bool) (string, []byte, error) {
	env, err := s.sealSnapshot(ctx, secret, encrypt)
	if err != nil {
		return "", nil, err
	}

	key := BackupKey(prefix, s.now())

	body, err := envelope.Encode(env)
	if err != nil {
		return "", nil, err
	}
	return key, body, nil
}

func (s *backupService) sealSnapshot(ctx context.Context, secret *string, encrypt bool) (models.BackupEnvelope, error) {
	snapCtx, cancel := s.withOperationTimeout(ctx)
	snapshot, err := s.snapshots.GetSnapshot(snapCtx)
	cancel()
	if err != nil {
		return models.BackupEnvelope{}, fmt.Errorf("get snapshot: %w", err)
	}

	env, err := s.sealer.Seal(string(snapshot), secret, encrypt)
	if err != nil {
		return models.BackupEnvelope{}, fmt.Errorf("seal snapshot: %w", err)
	}
	return env, nil
}
