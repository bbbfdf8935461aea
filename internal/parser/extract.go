// Package parser turns an opened statement document into the clean
// eight-column transaction record set. It prefers geometric table extraction
// and falls back to plain-text reconstruction per page, then standardizes
// fields and drops rows that cannot be recovered. Findings are reported as
// issues, never as errors: the only terminal condition is a document that
// yields no rows at all.
package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/extractor"
	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/models"
	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/normalize"
)

// Extract walks the document pages in order and returns the standardized
// record set plus all extraction issues. Pages whose table detection yields
// nothing usable are re-parsed from plain text, with the page number stamped
// onto any resulting issues.
func Extract(doc extractor.Document, geo extractor.TableGeometry) ([]models.Record, []models.Issue) {
	var (
		raw    []models.Record
		issues []models.Issue
	)

	for i, page := range doc.Pages() {
		pageNum := i + 1
		before := len(raw)

		for _, table := range page.ExtractTables(geo) {
			for _, row := range table {
				if rec, ok := mapTableRow(row); ok {
					raw = append(raw, rec)
				}
			}
		}

		// Table detection absent, or present but nothing usable: fall back
		// to reconstructing rows from the page text.
		if len(raw) == before {
			rows, pageIssues := parsePageText(page.ExtractText())
			raw = append(raw, rows...)
			for _, issue := range pageIssues {
				issue.Message = fmt.Sprintf("(page %d) %s", pageNum, issue.Message)
				issues = append(issues, issue)
			}
		}
	}

	if len(raw) == 0 {
		issues = append(issues, models.DocumentIssue(models.LevelError,
			"No transaction rows were extracted from the PDF."))
		return nil, issues
	}

	clean := standardize(raw, &issues)
	return clean, issues
}

// standardize applies the field normalizers, drops rows that cannot be
// recovered (missing serial, unparseable transaction date), removes any
// opening-balance row that slipped through, then sorts by serial number and
// de-duplicates keeping the first occurrence in document order.
func standardize(raw []models.Record, issues *[]models.Issue) []models.Record {
	type keyed struct {
		serial int
		rec    models.Record
	}
	var rows []keyed

	for _, rec := range raw {
		rec.SerialNo = strings.TrimSpace(rec.SerialNo)
		rec.TransactionDate = normalize.Date(rec.TransactionDate)
		rec.ValueDate = normalize.Date(rec.ValueDate)
		rec.Description = normalize.Description(rec.Description)
		rec.ChequeNumber = normalize.ChequeNumber(rec.ChequeNumber)
		rec.Debit = normalize.Amount(rec.Debit, true)
		rec.Credit = normalize.Amount(rec.Credit, true)
		rec.Balance = normalize.Amount(rec.Balance, false)

		serial, serialErr := strconv.Atoi(rec.SerialNo)
		if rec.SerialNo == "" || serialErr != nil || rec.TransactionDate == "" {
			issue := models.Issue{
				Level:   models.LevelWarning,
				Message: "Dropping a row due to missing Serial No or invalid Transaction Date.",
				Context: rowContext(rec),
			}
			if serialErr == nil && rec.SerialNo != "" {
				issue.SerialNo = &serial
			}
			*issues = append(*issues, issue)
			continue
		}

		if strings.EqualFold(rec.Description, "opening balance") {
			continue
		}
		rows = append(rows, keyed{serial: serial, rec: rec})
	}

	// Stable sort keeps document order for rows sharing a serial number, so
	// first-wins dedup below keeps the first occurrence.
	sort.SliceStable(rows, func(a, b int) bool { return rows[a].serial < rows[b].serial })

	var clean []models.Record
	seen := make(map[int]bool, len(rows))
	for _, row := range rows {
		if seen[row.serial] {
			continue
		}
		seen[row.serial] = true
		clean = append(clean, row.rec)
	}
	return clean
}

// rowContext snapshots a record for issue diagnostics.
func rowContext(rec models.Record) map[string]string {
	row := rec.Row()
	ctx := make(map[string]string, len(row))
	for i, col := range models.Columns() {
		ctx[col] = row[i]
	}
	return ctx
}
