package client

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-snapshot-keeper/internal/ui"
)

const timeLayout = "2006-01-02 15:04:05"

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func (a *App) runList(ctx context.Context) error {
	_, cleanup := startSpinner(a.out, "Listing backups...")
	objects, err := a.services.Backups.ListBackups(ctx)
	cleanup()
	if err != nil {
		a.logger.Err(err).Str("func", "*App.runList").Msg("list backups failed")
		return failed(err)
	}

	if len(objects) == 0 {
		a.printf("%s\n", ui.WarningLine("No backups found"))
		return nil
	}

	t := newTable("KEY", "MODE", "CREATED")
	for _, o := range objects {
		t.Row(o.Key, string(o.Mode), o.CreatedAt.Local().Format(timeLayout))
	}
	a.printf("%s\n", t.String())
	return nil
}

func (a *App) runHistory(ctx context.Context, limit int) error {
	entries, err := a.services.Backups.History(ctx, limit)
	if err != nil {
		a.logger.Err(err).Str("func", "*App.runHistory").Msg("read journal failed")
		return failed(err)
	}

	if len(entries) == 0 {
		a.printf("%s\n", ui.WarningLine("Journal is empty"))
		return nil
	}

	t := newTable("TIME", "MODE", "OUTCOME", "KEY", "ENCRYPTED", "DETAIL")
	for _, e := range entries {
		t.Row(
			e.CreatedAt.In(time.Local).Format(timeLayout),
			string(e.Mode),
			e.Outcome,
			e.ObjectKey,
			strconv.FormatBool(e.Encrypted),
			e.Detail,
		)
	}
	a.printf("%s\n", t.String())
	return nil
}
