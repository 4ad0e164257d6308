// Package api exposes the earnings engine over HTTP for the two
// consumer kinds: server-side page generation and browser-side
// interactive calculators. Handlers do request decoding, error-to-
// status mapping and DTO shaping; all computation happens in the
// engine.
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a router with all routes and middleware configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/healthz", h.Health)
		r.Get("/tools", h.ListTools)
		r.Get("/roles", h.ListRoles)
		r.Get("/cities", h.ListCities)
		r.Get("/differentials", h.ListDifferentials)

		r.Route("/compute", func(r chi.Router) {
			r.Post("/{toolID}", h.Compute)
			r.Post("/{toolID}/variants", h.ComputeVariants)
		})
	})

	return r
}
