package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID, h.withLogging)

	router.Get("/status", h.getStatus)
	router.Get("/version", h.getVersion)
	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics)
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/backups", h.listBackups)
		r.Get("/history", h.getHistory)
		r.Post("/backup", h.triggerBackup)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
