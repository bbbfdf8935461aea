package models

// Level classifies how serious an issue is.
type Level string

const (
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Issue is a single finding from extraction, standardization, or validation.
// Issues are plain data: they accumulate alongside results and are never
// raised as errors. SerialNo is nil for document-level findings.
type Issue struct {
	SerialNo *int              `json:"serialNo,omitempty"`
	Level    Level             `json:"level"`
	Message  string            `json:"message"`
	Context  map[string]string `json:"context,omitempty"`
}

// DocumentIssue builds a document-level issue (no serial number).
func DocumentIssue(level Level, message string) Issue {
	return Issue{Level: level, Message: message}
}

// RowIssue builds an issue attached to a specific serial number.
func RowIssue(serialNo int, level Level, message string) Issue {
	return Issue{SerialNo: &serialNo, Level: level, Message: message}
}

// Summary holds derived counts over an issue sequence.
type Summary struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Summarize counts issues by level.
func Summarize(issues []Issue) Summary {
	s := Summary{Total: len(issues)}
	for _, i := range issues {
		switch i.Level {
		case LevelError:
			s.Errors++
		case LevelWarning:
			s.Warnings++
		}
	}
	return s
}

// ExportAllowed reports whether CSV export is permitted. This is the single
// authoritative export gate: warnings are advisory, errors block.
func (s Summary) ExportAllowed() bool {
	return s.Errors == 0
}
