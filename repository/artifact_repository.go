package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"led-proposal-engine/db"
	"led-proposal-engine/models"
)

// ArtifactRepository stores artifacts in the artifacts table
type ArtifactRepository struct {
	ttl time.Duration
}

// NewArtifactRepository creates a Postgres backed store whose entries live for ttl
func NewArtifactRepository(ttl time.Duration) *ArtifactRepository {
	return &ArtifactRepository{ttl: ttl}
}

// Ensure ArtifactRepository implements ArtifactRepositoryInterface
var _ ArtifactRepositoryInterface = (*ArtifactRepository)(nil)

// Save inserts the artifact and deletes rows that have expired
func (r *ArtifactRepository) Save(ctx context.Context, artifact *models.Artifact) error {
	now := time.Now().UTC()
	stamp(artifact, now, r.ttl)

	if _, err := db.DB.ExecContext(ctx, `DELETE FROM artifacts WHERE expires_at <= $1`, now); err != nil {
		log.Printf("⚠️  Save artifact: failed to purge expired rows: %v", err)
	}

	query := `
		INSERT INTO artifacts (id, kind, filename, content_type, data, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := db.DB.ExecContext(ctx, query,
		artifact.ID, string(artifact.Kind), artifact.Filename, artifact.ContentType,
		artifact.Data, artifact.CreatedAt, artifact.ExpiresAt)
	if err != nil {
		log.Printf("❌ Save artifact: %v", err)
		return fmt.Errorf("failed to insert artifact: %w", err)
	}
	return nil
}

// Get returns a live artifact by ID
func (r *ArtifactRepository) Get(ctx context.Context, id string) (*models.Artifact, error) {
	query := `
		SELECT id, kind, filename, content_type, data, created_at, expires_at
		FROM artifacts
		WHERE id = $1 AND expires_at > $2
	`
	var a models.Artifact
	var kind string
	err := db.DB.QueryRowContext(ctx, query, id, time.Now().UTC()).
		Scan(&a.ID, &kind, &a.Filename, &a.ContentType, &a.Data, &a.CreatedAt, &a.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtifactNotFound
		}
		return nil, fmt.Errorf("failed to fetch artifact: %w", err)
	}
	a.Kind = models.ArtifactKind(kind)
	return &a, nil
}
