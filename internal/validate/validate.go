// Package validate checks a standardized record set against the export
// schema and classifies every finding as a warning or an error. Checks never
// abort the scan: issues accumulate and the caller gates export on the
// error count.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/models"
	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/normalize"
)

// Records validates the clean record set. It returns a possibly modified
// copy (comma-containing descriptions are rewritten, since the export format
// forbids quoting) together with the issue sequence. The input slice is
// never mutated.
func Records(records []models.Record) ([]models.Record, []models.Issue) {
	var issues []models.Issue

	out := make([]models.Record, len(records))
	copy(out, records)

	// The serial column must be numeric before any row-level checks make
	// sense. A failure here is document-level and short-circuits.
	serials := make([]int, len(out))
	for i, rec := range out {
		sn, err := strconv.Atoi(rec.SerialNo)
		if err != nil {
			issues = append(issues, models.DocumentIssue(models.LevelError,
				fmt.Sprintf("Serial No column is not numeric: %q", rec.SerialNo)))
			return out, issues
		}
		serials[i] = sn
	}

	if len(serials) > 0 && !isSequential(serials) {
		lo, hi := serials[0], serials[0]
		for _, sn := range serials {
			if sn < lo {
				lo = sn
			}
			if sn > hi {
				hi = sn
			}
		}
		issue := models.DocumentIssue(models.LevelWarning,
			"Serial numbers are not perfectly sequential. This may indicate missing/duplicate rows.")
		issue.Context = map[string]string{
			"min": strconv.Itoa(lo),
			"max": strconv.Itoa(hi),
		}
		issues = append(issues, issue)
	}

	for i := range out {
		rec := &out[i]
		sn := serials[i]

		for _, field := range []struct{ name, value string }{
			{"Debit", rec.Debit},
			{"Credit", rec.Credit},
			{"Balance", rec.Balance},
		} {
			if !normalize.ValidNumeric(field.value) {
				issues = append(issues, models.RowIssue(sn, models.LevelError,
					fmt.Sprintf("Invalid numeric format in %s: %s", field.name, field.value)))
			}
		}

		if rec.Balance == "" {
			issues = append(issues, models.RowIssue(sn, models.LevelError, "Missing Balance value"))
		}

		// Some statements legitimately record both or neither side, so this
		// stays a warning.
		if (rec.Debit == "") == (rec.Credit == "") {
			issues = append(issues, models.RowIssue(sn, models.LevelWarning,
				"Expected exactly one of Debit/Credit to be filled for a transaction."))
		}

		if strings.Contains(rec.Description, ",") {
			issues = append(issues, models.RowIssue(sn, models.LevelWarning,
				"Description contains a comma. CSV output is configured to avoid quotes; comma was replaced with a space."))
			rec.Description = strings.ReplaceAll(rec.Description, ",", " ")
		}

		if rec.TransactionDate == "" {
			issues = append(issues, models.RowIssue(sn, models.LevelError, "Missing Transaction Date"))
		}
		if rec.ValueDate == "" {
			issues = append(issues, models.RowIssue(sn, models.LevelWarning, "Missing Value Date"))
		}
	}

	return out, issues
}

// isSequential reports whether the serials form a gap-free ascending run
// from their minimum to their maximum.
func isSequential(serials []int) bool {
	for i := 1; i < len(serials); i++ {
		if serials[i] != serials[i-1]+1 {
			return false
		}
	}
	return true
}
