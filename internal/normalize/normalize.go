// Package normalize holds the pure field-level cleaning rules applied to raw
// statement cells before validation: canonical dates, comma-free amounts,
// dash-free cheque numbers, trimmed descriptions.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// Anchored DD-MM-YYYY or DD/MM/YYYY, optional surrounding whitespace.
	datePattern = regexp.MustCompile(`^\s*(\d{2})[-/](\d{2})[-/](\d{4})\s*$`)
	// Digits with an optional decimal part. No commas, no sign, no exponent.
	numericPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// Date normalizes a date string into canonical DD/MM/YYYY form. It accepts
// DD-MM-YYYY or DD/MM/YYYY and returns "" for any other shape, or when the
// numeric values do not form a real calendar date (e.g. 31-02-2024).
func Date(s string) string {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	dd, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	yyyy, _ := strconv.Atoi(m[3])

	t := time.Date(yyyy, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	if t.Day() != dd || t.Month() != time.Month(mm) || t.Year() != yyyy {
		// time.Date normalizes overflow (31 Feb -> 2/3 Mar), so a mismatch
		// means the components were out of range.
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%04d", dd, mm, yyyy)
}

// ChequeNumber strips dashes from a cheque number. A lone "-" or an
// empty-after-trim value means "no cheque" and maps to "".
func ChequeNumber(s string) string {
	s = strings.TrimSpace(s)
	if s == "-" || s == "" {
		return ""
	}
	return strings.TrimSpace(strings.ReplaceAll(s, "-", ""))
}

// Amount strips thousands separators from an amount string. When dashToEmpty
// is set, a lone "-" maps to "" (debit/credit columns use a dash for "not
// applicable"). Balance cleaning passes false so a dash there surfaces as a
// numeric-format error downstream instead of silently vanishing.
func Amount(s string, dashToEmpty bool) string {
	s = strings.TrimSpace(s)
	if dashToEmpty && s == "-" {
		return ""
	}
	return strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
}

// Description trims leading/trailing whitespace only. Internal spacing comes
// from the source layout and is preserved verbatim.
func Description(s string) string {
	return strings.TrimSpace(s)
}

// ValidNumeric reports whether an amount string is well formed. Empty is
// valid: absence is allowed for debit/credit and reported separately for
// balance.
func ValidNumeric(s string) bool {
	if s == "" {
		return true
	}
	return numericPattern.MatchString(s)
}
