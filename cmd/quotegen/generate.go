package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"led-proposal-engine/app"
	"led-proposal-engine/config"
	"led-proposal-engine/extraction"
	"led-proposal-engine/models"
	"led-proposal-engine/service"
)

// newServices builds the quote service on an in-memory artifact store
// regardless of ARTIFACT_STORE; files only live until they are exported.
func newServices(ctx context.Context) (*service.QuoteService, *service.ExportService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	cfg.Artifacts.Store = config.StoreMemory

	artifacts, err := app.NewArtifactRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	svc, err := app.NewQuoteServiceWithStore(cfg, artifacts)
	if err != nil {
		return nil, nil, err
	}
	return svc, service.NewExportService(artifacts), nil
}

// export writes the artifacts and prints the response followed by the files written
func export(ctx context.Context, out io.Writer, exporter *service.ExportService, resp *models.GenerationResponse) error {
	result, err := exporter.Export(ctx, resp, outDir, force)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("failed to print response: %w", err)
	}
	for _, path := range result.Written {
		fmt.Fprintf(out, "wrote   %s\n", path)
	}
	for _, path := range result.Skipped {
		fmt.Fprintf(out, "skipped %s (exists, use --force)\n", path)
	}

	if len(result.Errors) > 0 {
		return fmt.Errorf("export failed: %s", strings.Join(result.Errors, "; "))
	}
	if !resp.Success {
		return fmt.Errorf("no artifact could be generated")
	}
	return nil
}

func readNotes(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read notes: %w", err)
	}
	return string(data), nil
}

// readSheets loads one xlsx workbook, or one CSV file per sheet named after the file
func readSheets(paths []string) ([]models.SheetSource, error) {
	if len(paths) == 1 && strings.EqualFold(filepath.Ext(paths[0]), ".xlsx") {
		f, err := os.Open(paths[0])
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", paths[0], err)
		}
		defer f.Close()
		return extraction.SheetsFromXLSX(f)
	}

	sources := make([]models.SheetSource, 0, len(paths))
	for _, path := range paths {
		if strings.EqualFold(filepath.Ext(path), ".xlsx") {
			return nil, fmt.Errorf("%s: pass a single xlsx workbook or CSV files, not both", path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		sources = append(sources, models.SheetSource{Name: name, Content: string(data)})
	}
	return sources, nil
}
