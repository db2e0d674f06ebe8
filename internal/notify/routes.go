package notify

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Post("/v1/signals/remote-change", h.remoteChange)
	router.Post("/v1/signals/account-change", h.accountChange)

	return router
}
