package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/models"
	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/normalize"
)

var (
	// rowStartPattern matches the line that starts a transaction: serial
	// number, transaction date, optional value date, free-form remainder.
	rowStartPattern = regexp.MustCompile(
		`^\s*(\d{1,4})\s+(\d{2}[-/]\d{2}[-/]\d{4})\s+(?:(\d{2}[-/]\d{2}[-/]\d{4})\s+)?(.*)$`)
	// amountTokenPattern matches a debit/credit/balance token: grouped
	// digits with an optional 2-decimal suffix, or a lone dash.
	amountTokenPattern = regexp.MustCompile(`^[\d,]+(?:\.\d{2})?$|^-$`)
)

// parsePageText reconstructs transaction records from plain page text when
// geometric table detection found nothing usable.
//
// Text extraction for this statement family inverts the visual order: the
// description line(s) of a transaction appear BEFORE the row-start line that
// carries its serial, dates, and amounts. Lines seen while no record is open
// are therefore buffered and handed to the next row start; lines seen while
// a record is open are continuations of that record. The two buffers are
// page-local by construction: every call starts fresh.
func parsePageText(text string) ([]models.Record, []models.Issue) {
	var (
		records   []models.Record
		issues    []models.Issue
		current   *models.Record
		prebuffer []string
	)

	flush := func() {
		if current != nil {
			if !strings.EqualFold(normalize.Description(current.Description), "opening balance") {
				records = append(records, *current)
			}
		}
		current = nil
	}

	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		if isNoise(ln) || looksLikeHeaderRow([]string{ln}) {
			continue
		}

		m := rowStartPattern.FindStringSubmatch(ln)
		if m == nil {
			if current == nil {
				// Orphan description line: it belongs to the NEXT row start.
				prebuffer = append(prebuffer, ln)
			} else {
				current.Description = strings.TrimSpace(current.Description + " " + ln)
			}
			continue
		}

		flush()

		// An opening-balance carrier is not a transaction; whatever text was
		// buffered for it is discarded too.
		if strings.Contains(strings.ToLower(ln), "opening balance") {
			prebuffer = nil
			continue
		}

		serial, txnDate, valDate, rest := m[1], m[2], m[3], m[4]
		tokens := strings.Fields(rest)

		// Scan backward for up to three trailing amount tokens, stopping at
		// the first token that does not look like an amount.
		var amounts []string
		idx := len(tokens) - 1
		for idx >= 0 && len(amounts) < 3 {
			if !amountTokenPattern.MatchString(tokens[idx]) {
				break
			}
			amounts = append([]string{tokens[idx]}, amounts...)
			idx--
		}
		descTokens := tokens[:idx+1]

		// A standalone numeric at the end of the description is a cheque
		// number, not narrative text.
		cheque := ""
		if n := len(descTokens); n > 0 && isAllDigits(descTokens[n-1]) && len(descTokens[n-1]) <= 12 {
			cheque = descTokens[n-1]
			descTokens = descTokens[:n-1]
		}

		descParts := append([]string{}, prebuffer...)
		if len(descTokens) > 0 {
			descParts = append(descParts, strings.Join(descTokens, " "))
		}
		prebuffer = nil

		current = &models.Record{
			SerialNo:        serial,
			TransactionDate: txnDate,
			ValueDate:       valDate,
			Description:     normalize.Description(joinNonEmpty(descParts)),
			ChequeNumber:    cheque,
		}

		// Assign from the end: the last token is always the balance.
		switch len(amounts) {
		case 3:
			current.Debit, current.Credit, current.Balance = amounts[0], amounts[1], amounts[2]
		case 2:
			current.Credit, current.Balance = amounts[0], amounts[1]
		case 1:
			current.Balance = amounts[0]
		}
		if len(amounts) < 3 {
			sn, _ := strconv.Atoi(serial)
			issues = append(issues, models.RowIssue(sn, models.LevelWarning,
				"Could not reliably detect trailing Debit/Credit/Balance tokens in fallback text parse."))
		}
	}

	flush()
	return records, issues
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
