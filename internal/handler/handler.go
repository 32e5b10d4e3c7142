package handler

import (
	"net/http"

	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
	"github.com/MKhiriev/go-snapshot-keeper/internal/service"
	"github.com/MKhiriev/go-snapshot-keeper/models"
)

type Handler struct {
	backups   service.BackupService
	status    *Status
	buildInfo models.AppBuildInfo
	metrics   http.Handler

	logger *logger.Logger
}

// NewHandler creates the daemon handler. metrics may be nil, in which case
// /metrics is not routed.
func NewHandler(backups service.BackupService, status *Status, buildInfo models.AppBuildInfo, metrics http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		backups:   backups,
		status:    status,
		buildInfo: buildInfo,
		metrics:   metrics,
		logger:    logger,
	}
}
