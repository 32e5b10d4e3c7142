package client

import (
	"context"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-snapshot-keeper/internal/handler"
	"github.com/MKhiriev/go-snapshot-keeper/internal/metrics"
	"github.com/MKhiriev/go-snapshot-keeper/internal/server"
	"github.com/MKhiriev/go-snapshot-keeper/internal/service"
	"github.com/MKhiriev/go-snapshot-keeper/internal/ui"
)

// unlock caches the session PIN when backups are encrypted.
func (a *App) unlock(ctx context.Context) error {
	if !a.cfg.Backup.Enabled || !a.cfg.Backup.EncryptionRequired || a.services.Backups.HasCachedSecret() {
		return nil
	}

	pin, err := a.prompter.PromptPIN(ctx, "BACKUP PIN", false)
	if err != nil {
		return err
	}
	return a.services.Backups.CacheSecretForSession(pin)
}

func (a *App) runOnce(ctx context.Context) error {
	if err := a.unlock(ctx); err != nil {
		return failed(err)
	}

	result := a.services.Backups.TriggerAutomaticBackup(ctx)
	a.printf("%s\n", describeResult(result))
	if result.State == service.StateFailed {
		return failed(result.Err)
	}
	return nil
}

// runDaemon triggers automatic backups until ctx is done. The PIN is
// forgotten on return.
func (a *App) runDaemon(ctx context.Context) error {
	if err := a.unlock(ctx); err != nil {
		return failed(err)
	}
	defer a.services.Backups.ClearCachedSecret()

	a.printf("%s\n", ui.Info.Sprint("→")+" Automatic backups every "+ui.Highlight.Sprint(a.cfg.Backup.Interval.String())+
		", keeping "+ui.Highlight.Sprint(strconv.Itoa(a.cfg.Backup.RetentionCount))+" "+ui.Muted.Sprint("ctrl+c to stop"))

	status := handler.NewStatus()
	reportCtx, stopReport := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.report(reportCtx, status)
	}()
	defer func() {
		stopReport()
		wg.Wait()
	}()

	a.services.Job.Start(ctx, a.cfg.Backup.Interval)
	defer a.services.Job.Stop()

	if a.cfg.Metrics.Address == "" {
		<-ctx.Done()
		return nil
	}

	h := handler.NewHandler(a.services.Backups, status, a.buildInfo, metrics.Handler(a.registry), a.logger)
	srv, err := server.NewServer(h.Init(), a.cfg.Metrics.Address, a.logger)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

// report prints every automatic run result and feeds it to status.
func (a *App) report(ctx context.Context, status *handler.Status) {
	for {
		select {
		case <-ctx.Done():
			return
		case result := <-a.results:
			status.Observe(result)
			a.printf("%s\n", describeResult(result))
		}
	}
}

func describeResult(r service.AutoBackupResult) string {
	switch r.State {
	case service.StateDone:
		msg := "Backup uploaded as " + ui.Path.Sprint(r.Key)
		if len(r.Pruned) > 0 {
			msg += ", pruned " + strconv.Itoa(len(r.Pruned))
		}
		if len(r.PruneFailures) > 0 {
			msg += ", " + strconv.Itoa(len(r.PruneFailures)) + " could not be pruned"
		}
		return ui.SuccessLine(msg)
	case service.StateSkipped:
		return ui.WarningLine("Backup skipped " + ui.Muted.Sprint(string(r.SkipReason)))
	}
	msg := "Backup failed at " + string(r.FailedAt) + ": " + ui.HumanizeError(r.Err)
	if r.Uploaded() {
		msg += " " + ui.Muted.Sprint("uploaded as "+r.Key)
	}
	return ui.FailureLine(msg)
}
