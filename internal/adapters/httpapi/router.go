// Package httpapi serves the design catalogue over HTTP using chi.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates a chi router with all API routes mounted.
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.log))

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/designs", h.ListDesigns)
		r.Get("/designs/keys", h.SortKeys)
		r.Get("/design", h.GetDesign)
		r.Get("/design/preview", h.Preview)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
	})
	return r
}
