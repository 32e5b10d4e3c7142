package handler

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
	"github.com/MKhiriev/go-snapshot-keeper/internal/service"
	"github.com/MKhiriev/go-snapshot-keeper/models"
)

// stubBackups implements the calls the handler makes; anything else panics
// through the nil embedded interface.
type stubBackups struct {
	service.BackupService

	objects    []models.BackupObject
	listErr    error
	entries    []models.JournalEntry
	historyErr error
	gotLimit   int
	result     service.AutoBackupResult
	pinCached  bool
}

func (s *stubBackups) ListBackups(context.Context) ([]models.BackupObject, error) {
	return s.objects, s.listErr
}

func (s *stubBackups) History(_ context.Context, limit int) ([]models.JournalEntry, error) {
	s.gotLimit = limit
	return s.entries, s.historyErr
}

func (s *stubBackups) TriggerAutomaticBackup(context.Context) service.AutoBackupResult {
	return s.result
}

func (s *stubBackups) HasCachedSecret() bool {
	return s.pinCached
}

func newTestHandler(backups *stubBackups) *Handler {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("keeper_backups_total 1\n"))
	})
	return NewHandler(backups, NewStatus(), models.NewAppBuildInfo("v1.0.0", "2026-03-14", "abc"), metrics, logger.Nop())
}

func serve(h *Handler, method, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}
