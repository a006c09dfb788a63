package service

import (
	"context"

	"led-proposal-engine/models"
)

// QuoteServiceInterface defines the contract for quote generation
type QuoteServiceInterface interface {
	// Calculate prices a display from calculator inputs and generates its artifacts
	Calculate(ctx context.Context, req *models.QuoteRequest) (*models.GenerationResponse, error)
	// Extract reads a cost spreadsheet and generates the artifacts of the quote it holds
	Extract(ctx context.Context, req *models.ExtractRequest) (*models.GenerationResponse, error)
	// Artifact returns a stored artifact for download
	Artifact(ctx context.Context, id string) (*models.Artifact, error)
}
