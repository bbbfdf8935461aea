package parser

import (
	"regexp"
	"strings"
)

// noisePredicate recognizes one family of non-transaction boilerplate in
// extracted page text. Predicates take the lowercased, trimmed line.
type noisePredicate struct {
	name  string
	match func(line string) bool
}

// timestampFooter matches the generated-at footer, e.g. "09/11/2025 02:53:00 PM".
var timestampFooter = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}\s+\d{2}:\d{2}:\d{2}\s*(am|pm)$`)

// noisePredicates is the ordered, extensible set of boilerplate filters for
// the statement family this tool targets. New statement formats extend this
// list; parsing logic never changes for noise handling.
var noisePredicates = []noisePredicate{
	{
		name: "statement banner",
		match: func(l string) bool {
			if strings.Contains(l, "account statement from") {
				return true
			}
			return strings.HasPrefix(l, "account statement") ||
				strings.HasPrefix(l, "this is a computer-generated") ||
				strings.HasPrefix(l, "statement is generated")
		},
	},
	{
		name: "page footer",
		match: func(l string) bool {
			return strings.HasPrefix(l, "page") ||
				(strings.Contains(l, "page ") && strings.Contains(l, " of "))
		},
	},
	{
		name: "branding line",
		match: func(l string) bool {
			return strings.Contains(l, "bob world")
		},
	},
	{
		name: "generated timestamp footer",
		match: func(l string) bool {
			return timestampFooter.MatchString(l)
		},
	},
	{
		// Hindi period banner, e.g. "23-08-2025 से 09-11-2025 तक की खाता".
		name: "bilingual period banner",
		match: func(l string) bool {
			return strings.Contains(l, "खाता") &&
				strings.Contains(l, "से") &&
				strings.Contains(l, "तक")
		},
	},
	{
		name: "column header",
		match: func(l string) bool {
			if strings.Contains(l, "sr.no") {
				return true
			}
			return strings.Contains(l, "debit") &&
				strings.Contains(l, "credit") &&
				strings.Contains(l, "balance")
		},
	},
	{
		// Hindi column header tokens: cheque/debit/credit and txn/details.
		name: "bilingual column header",
		match: func(l string) bool {
			if strings.Contains(l, "चेक") && strings.Contains(l, "नामे") && strings.Contains(l, "जमा") {
				return true
			}
			return strings.Contains(l, "लेनदेन") && strings.Contains(l, "ववरण")
		},
	},
}

// isNoise reports whether a line is known non-transaction boilerplate.
func isNoise(line string) bool {
	l := strings.ToLower(strings.TrimSpace(line))
	if l == "" {
		return true
	}
	for _, p := range noisePredicates {
		if p.match(l) {
			return true
		}
	}
	return false
}
