package models

import "time"

// ArtifactKind identifies a generated output file
type ArtifactKind string

const (
	ArtifactWorkbook ArtifactKind = "workbook"
	ArtifactPDF      ArtifactKind = "pdf"
	ArtifactArchive  ArtifactKind = "archive"
)

// Artifact is a generated file held for download
type Artifact struct {
	ID          string       `json:"id"`
	Kind        ArtifactKind `json:"kind"`
	Filename    string       `json:"filename"`
	ContentType string       `json:"contentType"`
	Data        []byte       `json:"-"`
	CreatedAt   time.Time    `json:"createdAt"`
	ExpiresAt   time.Time    `json:"expiresAt"`
}

// ArtifactRef is the per-artifact entry of a generation response.
// Exactly one of URL or Error is set.
type ArtifactRef struct {
	OK       bool   `json:"ok"`
	ID       string `json:"id,omitempty"`
	URL      string `json:"url,omitempty"`
	Filename string `json:"filename,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ArtifactSet groups the artifact references of one generation
type ArtifactSet struct {
	Workbook ArtifactRef  `json:"workbook"`
	PDF      ArtifactRef  `json:"pdf"`
	Archive  *ArtifactRef `json:"archive,omitempty"`
}

// GenerationResponse is the JSON body returned by the quote endpoints
type GenerationResponse struct {
	Success   bool          `json:"success"`
	Partial   bool          `json:"partial"`
	Estimate  *Estimate     `json:"estimate,omitempty"`
	Summary   *QuoteSummary `json:"summary,omitempty"`
	Warnings  []string      `json:"warnings"`
	Artifacts ArtifactSet   `json:"artifacts"`
}
