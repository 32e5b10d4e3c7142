package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
	"github.com/MKhiriev/go-snapshot-keeper/internal/service"
	"github.com/MKhiriev/go-snapshot-keeper/internal/store"
	"github.com/MKhiriev/go-snapshot-keeper/internal/utils"
	"github.com/MKhiriev/go-snapshot-keeper/models"
)

const maxHistoryLimit = 500

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.status.report(h.backups.HasCachedSecret()), http.StatusOK)
}

type backupItem struct {
	Key       string    `json:"key"`
	Mode      string    `json:"mode"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *Handler) listBackups(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	objects, err := h.backups.ListBackups(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listBackups").Msg("error listing backups")
		h.writeServiceError(w, err)
		return
	}

	items := make([]backupItem, 0, len(objects))
	for _, o := range objects {
		items = append(items, backupItem{Key: o.Key, Mode: string(o.Mode), CreatedAt: o.CreatedAt})
	}
	_, _ = utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit := store.DefaultJournalLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxHistoryLimit {
			utils.WriteError(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	entries, err := h.backups.History(r.Context(), limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getHistory").Msg("error reading journal")
		utils.WriteError(w, "journal unavailable", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	_, _ = utils.WriteJSON(w, entries, http.StatusOK)
}

// triggerBackup runs an automatic backup synchronously and reports its
// result. Coalesced triggers come back as skipped with 409.
func (h *Handler) triggerBackup(w http.ResponseWriter, r *http.Request) {
	result := h.backups.TriggerAutomaticBackup(r.Context())
	h.status.Observe(result)

	status := http.StatusOK
	switch {
	case result.State == service.StateSkipped && result.SkipReason == service.SkipAlreadyRunning:
		status = http.StatusConflict
	case result.State == service.StateFailed:
		status = http.StatusBadGateway
	}
	_, _ = utils.WriteJSON(w, newRunReport(result, time.Now().UTC()), status)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	kind := service.ErrorKind(err)
	status := http.StatusInternalServerError
	switch {
	case kind == service.KindNotConfigured:
		status = http.StatusServiceUnavailable
	case kind.Retryable():
		status = http.StatusBadGateway
	}
	utils.WriteError(w, kind.UserMessage(), status)
}
