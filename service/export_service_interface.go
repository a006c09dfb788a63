package service

import (
	"context"

	"led-proposal-engine/models"
)

// ExportServiceInterface defines the contract for writing generated artifacts to disk
type ExportServiceInterface interface {
	Export(ctx context.Context, resp *models.GenerationResponse, dir string, overwrite bool) (*ExportResult, error)
}
