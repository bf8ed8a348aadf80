package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Get("/api/access", h.access)
	router.Get("/api/assets", h.listAssets)
	router.Get("/api/assets/{id}/image", h.assetImage)
	router.Post("/api/assets/delete", h.deleteAssets)

	return router
}
