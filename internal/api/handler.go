// Package api exposes the upload/convert surface over HTTP. All
// classification decisions live in the validation engine; this layer only
// runs the pipeline and reports its output.
package api

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/extractor"
	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/models"
	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/parser"
	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/security"
	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/validate"
	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/writer"
)

const version = "1.0.0"

// ConvertResponse is the JSON response from the /api/convert endpoint.
type ConvertResponse struct {
	Success     bool            `json:"success"`
	Error       string          `json:"error,omitempty"`
	Records     []models.Record `json:"records"`
	Issues      []models.Issue  `json:"issues"`
	Summary     models.Summary  `json:"summary"`
	CSV         string          `json:"csv,omitempty"`
	CSVFilename string          `json:"csvFilename,omitempty"`
	TotalDebit  string          `json:"totalDebit"`
	TotalCredit string          `json:"totalCredit"`
	Count       int             `json:"count"`
	Decryption  security.Result `json:"decryption"`
	Version     string          `json:"version"`
}

// Handler holds the API dependencies.
type Handler struct {
	Log zerolog.Logger
	Geo extractor.TableGeometry
}

// RegisterRoutes sets up the HTTP routes.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/health", h.HandleHealth)
	app.Post("/api/convert", h.HandleConvert)
}

func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": version,
	})
}

// HandleConvert accepts a multipart upload (field "file", optional field
// "password") and runs the full pipeline: decrypt, extract, standardize,
// validate. The CSV payload is included only when the export gate allows.
func (h *Handler) HandleConvert(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return writeError(c, fiber.StatusBadRequest, "Only PDF files are supported.")
	}
	password := c.FormValue("password")

	tmpDir, err := os.MkdirTemp("", "statement-upload-")
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, "Failed to create temp dir.")
	}
	defer os.RemoveAll(tmpDir)

	tmpPath := filepath.Join(tmpDir, "statement.pdf")
	if err := c.SaveFile(fileHeader, tmpPath); err != nil {
		return writeError(c, fiber.StatusInternalServerError, "Failed to save uploaded file.")
	}

	f, reader, decryption, err := security.Open(tmpPath, password)
	if err != nil {
		status := fiber.StatusUnprocessableEntity
		if errors.Is(err, security.ErrEncrypted) {
			status = fiber.StatusForbidden
		}
		return writeError(c, status, err.Error())
	}
	defer f.Close()

	records, issues := parser.Extract(extractor.NewDocument(reader), h.Geo)
	records, validationIssues := validate.Records(records)
	issues = append(issues, validationIssues...)
	summary := models.Summarize(issues)

	h.Log.Info().
		Str("file", fileHeader.Filename).
		Int("records", len(records)).
		Int("errors", summary.Errors).
		Int("warnings", summary.Warnings).
		Msg("converted statement")

	totals := models.SumAmounts(records)
	resp := ConvertResponse{
		Success:     true,
		Records:     records,
		Issues:      issues,
		Summary:     summary,
		TotalDebit:  totals.Debit.StringFixed(2),
		TotalCredit: totals.Credit.StringFixed(2),
		Count:       len(records),
		Decryption:  decryption,
		Version:     version,
	}
	// nil slices marshal to JSON null, not [].
	if resp.Records == nil {
		resp.Records = []models.Record{}
	}
	if resp.Issues == nil {
		resp.Issues = []models.Issue{}
	}

	// Export is gated solely on the error count; warnings are advisory.
	if summary.ExportAllowed() {
		payload, name, err := writer.Bytes(records)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("CSV generation failed: %v", err))
		}
		resp.CSV = string(payload)
		resp.CSVFilename = name
	}

	return c.JSON(resp)
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ConvertResponse{
		Success: false,
		Error:   msg,
		Records: []models.Record{},
		Issues:  []models.Issue{},
		Version: version,
	})
}
