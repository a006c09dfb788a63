package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"led-proposal-engine/extraction"
	"led-proposal-engine/models"
	"led-proposal-engine/service"
)

// QuoteController handles HTTP requests for quote generation
type QuoteController struct {
	service service.QuoteServiceInterface
}

// NewQuoteController creates a new QuoteController
func NewQuoteController(svc service.QuoteServiceInterface) *QuoteController {
	return &QuoteController{
		service: svc,
	}
}

// Calculate handles POST /api/quotes/calculate
// Example request:
// {
//   "width": 20,
//   "height": 10,
//   "clientName": "Riverside Stadium",
//   "environment": "outdoor",
//   "productCategory": "scoreboard"
// }
// Example response:
// {
//   "success": true,
//   "partial": false,
//   "estimate": {"screenArea": 200, "environment": "outdoor", "totalCost": 48123.5, "finalPrice": 69779.14, "grossProfit": 20624.21},
//   "warnings": [],
//   "artifacts": {
//     "workbook": {"ok": true, "id": "…", "url": "http://localhost:8080/api/artifacts/…", "filename": "riverside-stadium-audit.xlsx"},
//     "pdf": {"ok": true, ...},
//     "archive": {"ok": true, ...}
//   }
// }
func (c *QuoteController) Calculate(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Calculate: Received %s request to %s", r.Method, r.URL.Path)

	var req models.QuoteRequest
	if !decodeBody(w, r, "Calculate", &req) {
		return
	}
	c.respond(r.Context(), w, "Calculate", func(ctx context.Context) (*models.GenerationResponse, error) {
		return c.service.Calculate(ctx, &req)
	})
}

// Extract handles POST /api/quotes/extract
// Example request:
// {
//   "clientName": "Riverside Stadium",
//   "desiredMargin": 0.3,
//   "sheets": [{"name": "Cost Analysis", "content": "Description,Selling Price\n..."}]
// }
// The response has the shape of Calculate with "summary" in place of "estimate".
func (c *QuoteController) Extract(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Extract: Received %s request to %s", r.Method, r.URL.Path)

	var req models.ExtractRequest
	if !decodeBody(w, r, "Extract", &req) {
		return
	}
	c.respond(r.Context(), w, "Extract", func(ctx context.Context) (*models.GenerationResponse, error) {
		return c.service.Extract(ctx, &req)
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, op string, dst any) bool {
	if r.Method != http.MethodPost {
		log.Printf("❌ %s: Method not allowed: %s", op, r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Printf("❌ %s: Failed to decode request body: %v", op, err)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}
	return true
}

func (c *QuoteController) respond(ctx context.Context, w http.ResponseWriter, op string, run func(context.Context) (*models.GenerationResponse, error)) {
	resp, err := run(ctx)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error(), Fields: verr.Fields})
		case errors.Is(err, extraction.ErrNoLineItems), errors.Is(err, extraction.ErrNoUsableSheets):
			log.Printf("❌ %s: %v", op, err)
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			log.Printf("❌ %s: %v", op, err)
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	status := http.StatusOK
	if !resp.Success {
		status = http.StatusInternalServerError
	}
	log.Printf("✅ %s: success=%v partial=%v warnings=%d", op, resp.Success, resp.Partial, len(resp.Warnings))
	writeJSON(w, status, resp)
}
