package repository

import (
	"context"
	"log"
	"sync"
	"time"

	"led-proposal-engine/models"
)

// MemoryArtifactRepository keeps artifacts in process memory.
// Expired entries are dropped lazily on access; no background goroutine runs.
type MemoryArtifactRepository struct {
	mu        sync.Mutex
	artifacts map[string]*models.Artifact
	ttl       time.Duration
	now       func() time.Time
}

// NewMemoryArtifactRepository creates an in-memory store whose entries live for ttl
func NewMemoryArtifactRepository(ttl time.Duration) *MemoryArtifactRepository {
	return &MemoryArtifactRepository{
		artifacts: make(map[string]*models.Artifact),
		ttl:       ttl,
		now:       time.Now,
	}
}

// Ensure MemoryArtifactRepository implements ArtifactRepositoryInterface
var _ ArtifactRepositoryInterface = (*MemoryArtifactRepository)(nil)

// Save stores a copy of the artifact
func (r *MemoryArtifactRepository) Save(ctx context.Context, artifact *models.Artifact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.evictExpired(now)
	stamp(artifact, now, r.ttl)

	stored := *artifact
	stored.Data = append([]byte(nil), artifact.Data...)
	r.artifacts[artifact.ID] = &stored
	return nil
}

// Get returns a copy of a live artifact
func (r *MemoryArtifactRepository) Get(ctx context.Context, id string) (*models.Artifact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	artifact, ok := r.artifacts[id]
	if !ok {
		return nil, ErrArtifactNotFound
	}
	if !r.now().Before(artifact.ExpiresAt) {
		delete(r.artifacts, id)
		return nil, ErrArtifactNotFound
	}

	out := *artifact
	out.Data = append([]byte(nil), artifact.Data...)
	return &out, nil
}

// Len returns the number of entries held, expired or not
func (r *MemoryArtifactRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.artifacts)
}

func (r *MemoryArtifactRepository) evictExpired(now time.Time) {
	evicted := 0
	for id, a := range r.artifacts {
		if !now.Before(a.ExpiresAt) {
			delete(r.artifacts, id)
			evicted++
		}
	}
	if evicted > 0 {
		log.Printf("🧹 Evicted %d expired artifacts", evicted)
	}
}
