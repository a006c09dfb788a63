package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"led-proposal-engine/repository"
	"led-proposal-engine/service"
)

// ArtifactController serves generated files
type ArtifactController struct {
	service service.QuoteServiceInterface
}

// NewArtifactController creates a new ArtifactController
func NewArtifactController(svc service.QuoteServiceInterface) *ArtifactController {
	return &ArtifactController{
		service: svc,
	}
}

// Download handles GET /api/artifacts/{id}
func (c *ArtifactController) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	log.Printf("📥 Download: Received request for artifact %s", id)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if id == "" {
		http.Error(w, "artifact id parameter is required", http.StatusBadRequest)
		return
	}

	artifact, err := c.service.Artifact(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrArtifactNotFound) {
			http.Error(w, "artifact not found or expired", http.StatusNotFound)
			return
		}
		log.Printf("❌ Download: %v", err)
		http.Error(w, "failed to load artifact", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", artifact.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(artifact.Data)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(artifact.Data); err != nil {
		log.Printf("❌ Download: Failed to write artifact %s: %v", id, err)
		return
	}
	log.Printf("✅ Download: Served %s (%d bytes)", artifact.Filename, len(artifact.Data))
}
