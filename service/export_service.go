package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"led-proposal-engine/models"
	"led-proposal-engine/repository"
)

// ExportService copies the artifacts of a generation from the store to a local directory
// Implements ExportServiceInterface
type ExportService struct {
	artifacts repository.ArtifactRepositoryInterface
}

// NewExportService creates a new ExportService instance
func NewExportService(artifacts repository.ArtifactRepositoryInterface) *ExportService {
	return &ExportService{artifacts: artifacts}
}

// Ensure ExportService implements ExportServiceInterface
var _ ExportServiceInterface = (*ExportService)(nil)

// ExportResult lists the files written and skipped by one export
type ExportResult struct {
	Written []string
	Skipped []string
	Errors  []string
}

// Export writes every successful artifact of resp into dir. Existing files
// are skipped unless overwrite is set.
func (es *ExportService) Export(ctx context.Context, resp *models.GenerationResponse, dir string, overwrite bool) (*ExportResult, error) {
	log.Printf("📥 Exporting artifacts to %s", dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	refs := []models.ArtifactRef{resp.Artifacts.Workbook, resp.Artifacts.PDF}
	if resp.Artifacts.Archive != nil {
		refs = append(refs, *resp.Artifacts.Archive)
	}

	result := &ExportResult{}
	for _, ref := range refs {
		if !ref.OK {
			continue
		}
		path := filepath.Join(dir, ref.Filename)

		if _, err := os.Stat(path); err == nil && !overwrite {
			log.Printf("⏭️  Skipping %s (already exists on disk)", ref.Filename)
			result.Skipped = append(result.Skipped, path)
			continue
		}

		artifact, err := es.artifacts.Get(ctx, ref.ID)
		if err != nil {
			msg := fmt.Sprintf("failed to load %s: %v", ref.Filename, err)
			log.Printf("❌ %s", msg)
			result.Errors = append(result.Errors, msg)
			continue
		}
		if err := os.WriteFile(path, artifact.Data, 0644); err != nil {
			msg := fmt.Sprintf("failed to write %s: %v", path, err)
			log.Printf("❌ %s", msg)
			result.Errors = append(result.Errors, msg)
			continue
		}
		log.Printf("✓ Saved %s", path)
		result.Written = append(result.Written, path)
	}
	return result, nil
}
