package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"led-proposal-engine/auditbook"
	"led-proposal-engine/extraction"
	"led-proposal-engine/models"
	"led-proposal-engine/pricing"
	"led-proposal-engine/proposal"
	"led-proposal-engine/repository"
	"led-proposal-engine/utils"
)

const (
	contentTypePDF = "application/pdf"
	contentTypeZIP = "application/zip"
)

// QuoteService turns quote requests into an audit workbook, a client
// proposal PDF and, when both succeed, a combined archive.
// Implements QuoteServiceInterface
type QuoteService struct {
	engine      *pricing.Engine
	printer     proposal.PDFPrinter
	artifacts   repository.ArtifactRepositoryInterface
	brand       proposal.Brand
	footerLabel string
	baseURL     string
	now         func() time.Time
}

// QuoteServiceOptions carries the presentation settings of generated proposals
type QuoteServiceOptions struct {
	Brand       proposal.Brand
	FooterLabel string
	BaseURL     string // prefix of artifact download URLs
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(
	engine *pricing.Engine,
	printer proposal.PDFPrinter,
	artifacts repository.ArtifactRepositoryInterface,
	opts QuoteServiceOptions,
) *QuoteService {
	return &QuoteService{
		engine:      engine,
		printer:     printer,
		artifacts:   artifacts,
		brand:       opts.Brand,
		footerLabel: opts.FooterLabel,
		baseURL:     opts.BaseURL,
		now:         time.Now,
	}
}

// Ensure QuoteService implements QuoteServiceInterface
var _ QuoteServiceInterface = (*QuoteService)(nil)

// archiveSummary is the summary.json entry of the combined archive
type archiveSummary struct {
	ClientName  string               `json:"clientName"`
	ProjectName string               `json:"projectName,omitempty"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Estimate    *models.Estimate     `json:"estimate,omitempty"`
	Summary     *models.QuoteSummary `json:"summary,omitempty"`
	Warnings    []string             `json:"warnings"`
}

// Calculate validates a calculator request, prices it and generates its artifacts
func (s *QuoteService) Calculate(ctx context.Context, req *models.QuoteRequest) (*models.GenerationResponse, error) {
	log.Printf("📥 Calculate: client=%q size=%gx%g ft", req.ClientName, req.Width, req.Height)
	if err := Validate(req); err != nil {
		log.Printf("❌ Calculate: %v", err)
		return nil, err
	}

	params, warnings := s.engine.Parameters(*req)
	breakdown := pricing.Estimate(params)
	estimate := pricing.ClientEstimate(breakdown, params.Environment)
	log.Printf("💰 Calculate: area=%.2f sq ft final=%s", breakdown.ScreenArea, utils.FormatUSD(breakdown.FinalPrice))

	in := s.proposalInput(params, req.Notes)
	in.Displays = []models.LineItem{proposal.DisplayFromParameters(params)}
	in.Pricing = proposal.PricingFromBreakdown(breakdown)

	resp := &models.GenerationResponse{
		Estimate: &estimate,
		Warnings: append([]string{}, warnings...),
	}
	s.generate(ctx, resp, params, in, archiveSummary{Estimate: &estimate})
	return resp, nil
}

// Extract validates an extraction request, reads the quote out of its
// sheets and generates its artifacts
func (s *QuoteService) Extract(ctx context.Context, req *models.ExtractRequest) (*models.GenerationResponse, error) {
	log.Printf("📥 Extract: client=%q sheets=%d", req.ClientName, len(req.Sheets))
	if err := Validate(req); err != nil {
		log.Printf("❌ Extract: %v", err)
		return nil, err
	}

	result, err := extraction.Extract(req.Sheets, extraction.WithBondRate(s.engine.Config().BondRate))
	if err != nil {
		return nil, err
	}

	params, paramWarnings := s.engine.ParametersFromQuote(result.Quote, *req)
	warnings := append(result.Quote.Warnings(), paramWarnings...)

	in := s.proposalInput(params, req.Notes)
	in.Displays = result.Quote.Displays()
	in.Pricing = proposal.PricingFromTotals(result.Quote.Pricing())

	summary := result.Summary
	resp := &models.GenerationResponse{
		Summary:  &summary,
		Warnings: append([]string{}, warnings...),
	}
	s.generate(ctx, resp, params, in, archiveSummary{Summary: &summary})
	return resp, nil
}

// Artifact returns a stored artifact
func (s *QuoteService) Artifact(ctx context.Context, id string) (*models.Artifact, error) {
	return s.artifacts.Get(ctx, id)
}

func (s *QuoteService) proposalInput(params models.CostParameters, notes string) proposal.Input {
	return proposal.Input{
		Brand:       s.brand,
		FooterLabel: s.footerLabel,
		ClientName:  params.ClientName,
		ProjectName: params.ProjectName,
		Date:        s.now(),
		Notes:       notes,
	}
}

// generate attempts the workbook and the PDF independently. A failure of
// one never discards the other; the archive needs both.
func (s *QuoteService) generate(ctx context.Context, resp *models.GenerationResponse, params models.CostParameters, in proposal.Input, summary archiveSummary) {
	base := utils.ArtifactBaseName(params.ClientName, params.ProjectName)
	workbookName := base + "-audit.xlsx"
	pdfName := base + "-proposal.pdf"

	workbook, wbErr := buildWorkbook(params)
	if wbErr == nil {
		resp.Artifacts.Workbook, wbErr = s.store(ctx, models.ArtifactWorkbook, workbookName, auditbook.ContentType, workbook)
	}
	if wbErr != nil {
		log.Printf("❌ Workbook generation failed for %q: %v", params.ClientName, wbErr)
		resp.Artifacts.Workbook = models.ArtifactRef{Error: wbErr.Error()}
	}

	pdf, pdfErr := s.buildPDF(ctx, in)
	if pdfErr == nil {
		resp.Artifacts.PDF, pdfErr = s.store(ctx, models.ArtifactPDF, pdfName, contentTypePDF, pdf)
	}
	if pdfErr != nil {
		log.Printf("❌ PDF generation failed for %q: %v", params.ClientName, pdfErr)
		resp.Artifacts.PDF = models.ArtifactRef{Error: pdfErr.Error()}
	}

	resp.Success = wbErr == nil || pdfErr == nil
	resp.Partial = (wbErr == nil) != (pdfErr == nil)
	if wbErr != nil || pdfErr != nil {
		return
	}

	summary.ClientName = params.ClientName
	summary.ProjectName = params.ProjectName
	summary.GeneratedAt = s.now().UTC()
	summary.Warnings = resp.Warnings
	ref, err := s.buildArchive(ctx, base, summary, []ArchiveFile{
		{Name: workbookName, Data: workbook},
		{Name: pdfName, Data: pdf},
	})
	if err != nil {
		log.Printf("⚠️  Archive skipped for %q: %v", params.ClientName, err)
		resp.Warnings = append(resp.Warnings, "combined archive unavailable: "+err.Error())
		return
	}
	resp.Artifacts.Archive = &ref
}

func buildWorkbook(params models.CostParameters) ([]byte, error) {
	plan, err := auditbook.Build(params)
	if err != nil {
		return nil, fmt.Errorf("failed to plan audit workbook: %w", err)
	}
	return plan.WriteXLSX()
}

func (s *QuoteService) buildPDF(ctx context.Context, in proposal.Input) ([]byte, error) {
	doc, err := proposal.BuildDocument(in)
	if err != nil {
		return nil, err
	}
	page, err := proposal.RenderHTML(doc)
	if err != nil {
		return nil, err
	}
	return s.printer.PrintPDF(ctx, page, doc.FooterLabel)
}

func (s *QuoteService) buildArchive(ctx context.Context, base string, summary archiveSummary, files []ArchiveFile) (models.ArtifactRef, error) {
	summaryJSON, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return models.ArtifactRef{}, fmt.Errorf("failed to encode summary: %w", err)
	}
	files = append(files, ArchiveFile{Name: "summary.json", Data: summaryJSON})

	data, err := BuildArchive(files, summary.GeneratedAt)
	if err != nil {
		return models.ArtifactRef{}, err
	}
	return s.store(ctx, models.ArtifactArchive, base+".zip", contentTypeZIP, data)
}

func (s *QuoteService) store(ctx context.Context, kind models.ArtifactKind, filename, contentType string, data []byte) (models.ArtifactRef, error) {
	artifact := &models.Artifact{
		Kind:        kind,
		Filename:    filename,
		ContentType: contentType,
		Data:        data,
	}
	if err := s.artifacts.Save(ctx, artifact); err != nil {
		return models.ArtifactRef{}, fmt.Errorf("failed to store %s: %w", filename, err)
	}
	log.Printf("✅ Generated %s (%d bytes, id=%s)", filename, len(data), artifact.ID)
	return models.ArtifactRef{
		OK:       true,
		ID:       artifact.ID,
		URL:      s.baseURL + "/api/artifacts/" + artifact.ID,
		Filename: filename,
	}, nil
}
