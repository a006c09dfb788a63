package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"led-proposal-engine/app/controller"
)

type Controllers struct {
	Quote    *controller.QuoteController
	Artifact *controller.ArtifactController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// NewRouter builds the HTTP routes of the application
func NewRouter(controllers *Controllers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", pingHandler)

	r.Route("/api", func(r chi.Router) {
		// Quote generation
		r.Post("/quotes/calculate", controllers.Quote.Calculate)
		r.Post("/quotes/extract", controllers.Quote.Extract)

		// Generated file downloads
		r.Get("/artifacts/{id}", controllers.Artifact.Download)
	})

	return r
}
