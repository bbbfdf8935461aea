package parser

import (
	"strings"

	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/models"
	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/normalize"
)

// looksLikeHeaderRow flags the column-header row of the statement table so
// it is never emitted as data.
func looksLikeHeaderRow(cells []string) bool {
	joined := strings.ToLower(strings.Join(cells, " "))
	return strings.Contains(joined, "sr.no") ||
		strings.Contains(joined, "transaction") ||
		strings.Contains(joined, "value") ||
		strings.Contains(joined, "description")
}

// mapTableRow reshapes one geometric table row onto the eight-field schema.
// No numeric or date validation happens here; that belongs to
// standardization and the validation engine.
//
// The full layout is:
//
//	Sr.No | Transaction Date | Value Date | Description | Cheque Number | Debit | Credit | Balance
//
// Table detection sometimes splits Description across extra columns or loses
// the Cheque Number column, so rows are mapped from both ends: serial and
// dates from the front, amounts from the back, everything between joined
// into the description.
func mapTableRow(raw []string) (models.Record, bool) {
	if len(raw) == 0 {
		return models.Record{}, false
	}

	cells := make([]string, len(raw))
	for i, c := range raw {
		cells[i] = strings.TrimSpace(strings.ReplaceAll(c, "\n", " "))
	}

	if looksLikeHeaderRow(cells) {
		return models.Record{}, false
	}
	if len(cells) < 6 {
		return models.Record{}, false
	}

	var rec models.Record
	if len(cells) >= 8 {
		rec = models.Record{
			SerialNo:        cells[0],
			TransactionDate: cells[1],
			ValueDate:       cells[2],
			ChequeNumber:    cells[len(cells)-4],
			Debit:           cells[len(cells)-3],
			Credit:          cells[len(cells)-2],
			Balance:         cells[len(cells)-1],
			Description:     joinNonEmpty(cells[3 : len(cells)-4]),
		}
	} else {
		// Best effort for 6-7 column extractions. The cheque number is not
		// recoverable from this narrower layout.
		rec = models.Record{
			SerialNo:        cells[0],
			TransactionDate: cells[1],
			ValueDate:       cells[2],
			Debit:           cells[len(cells)-3],
			Credit:          cells[len(cells)-2],
			Balance:         cells[len(cells)-1],
			Description:     joinNonEmpty(cells[3 : len(cells)-3]),
		}
	}

	if strings.EqualFold(normalize.Description(rec.Description), "opening balance") {
		return models.Record{}, false
	}
	return rec, true
}

func joinNonEmpty(parts []string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
