package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"led-proposal-engine/models"
)

// ErrArtifactNotFound is returned for unknown and expired artifacts
var ErrArtifactNotFound = errors.New("artifact not found")

// ArtifactRepositoryInterface defines the contract for the artifact hand-off store
type ArtifactRepositoryInterface interface {
	// Save assigns the artifact an ID and expiry and stores it
	Save(ctx context.Context, artifact *models.Artifact) error
	Get(ctx context.Context, id string) (*models.Artifact, error)
}

// newArtifactID returns a time-ordered UUID, falling back to a random one
func newArtifactID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}

func stamp(artifact *models.Artifact, now time.Time, ttl time.Duration) {
	artifact.ID = newArtifactID()
	artifact.CreatedAt = now
	artifact.ExpiresAt = now.Add(ttl)
}
