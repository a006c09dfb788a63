package app

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"led-proposal-engine/app/controller"
	"led-proposal-engine/app/router"
	"led-proposal-engine/config"
	"led-proposal-engine/db"
	"led-proposal-engine/pricing"
	"led-proposal-engine/proposal"
	"led-proposal-engine/repository"
	"led-proposal-engine/service"
)

// Initialize wires the application from its configuration and returns the HTTP handler
func Initialize(ctx context.Context, cfg *config.Config) (http.Handler, error) {
	svc, err := NewQuoteService(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Create controllers
	controllers := &router.Controllers{
		Quote:    controller.NewQuoteController(svc),
		Artifact: controller.NewArtifactController(svc),
	}

	return router.NewRouter(controllers), nil
}

// NewQuoteService builds the quote service on the configured artifact store
func NewQuoteService(ctx context.Context, cfg *config.Config) (*service.QuoteService, error) {
	artifacts, err := NewArtifactRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewQuoteServiceWithStore(cfg, artifacts)
}

// NewQuoteServiceWithStore builds the quote service and its pricing engine,
// printer and brand on the given store. The CLI shares it with the server.
func NewQuoteServiceWithStore(cfg *config.Config, artifacts repository.ArtifactRepositoryInterface) (*service.QuoteService, error) {
	engine, err := pricing.NewEngine(cfg.Pricing.RatesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize pricing engine: %w", err)
	}

	logo, err := proposal.LoadLogo(cfg.Brand.LogoPath)
	if err != nil {
		// a missing logo should not stop quoting
		log.Printf("⚠️  Brand logo unavailable, proposals print without it: %v", err)
	}

	printer := proposal.NewChromePrinter(cfg.PDF.ChromePath, cfg.PDF.Timeout)
	return service.NewQuoteService(engine, printer, artifacts, service.QuoteServiceOptions{
		Brand: proposal.Brand{
			Name:   cfg.Brand.Name,
			Logo:   logo,
			Accent: cfg.Brand.Accent,
		},
		FooterLabel: cfg.Brand.FooterLabel,
		BaseURL:     cfg.Server.BaseURL,
	}), nil
}

// NewArtifactRepository returns the artifact store selected by ARTIFACT_STORE
func NewArtifactRepository(ctx context.Context, cfg *config.Config) (repository.ArtifactRepositoryInterface, error) {
	if cfg.Artifacts.Store != config.StorePostgres {
		log.Printf("✅ Artifact store: memory (ttl=%s)", cfg.Artifacts.TTL)
		return repository.NewMemoryArtifactRepository(cfg.Artifacts.TTL), nil
	}

	dsn, err := cfg.Database.DSN()
	if err != nil {
		return nil, err
	}
	if err := db.InitDB(ctx, dsn); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	log.Printf("✅ Artifact store: postgres (ttl=%s)", cfg.Artifacts.TTL)
	return repository.NewArtifactRepository(cfg.Artifacts.TTL), nil
}
