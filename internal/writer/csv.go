// Package writer serializes the clean record set into the strict export
// format: comma-delimited, header first, UTF-8, \n line endings, and no
// field quoting of any kind. encoding/csv cannot produce this (it quotes on
// demand), so rows are assembled by hand and a comma that survives into a
// field is treated as a contract violation, not escaped.
package writer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/models"
)

// Filename is the canonical download name for the export.
const Filename = "transactions_clean.csv"

// Write serializes records to the strict CSV format.
func Write(out io.Writer, records []models.Record) error {
	if _, err := io.WriteString(out, strings.Join(models.Columns(), ",")+"\n"); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range records {
		row := rec.Row()
		for i, field := range row {
			if strings.ContainsAny(field, ",\n") {
				return fmt.Errorf("record %s: field %q contains a delimiter; validation must strip commas before export",
					rec.SerialNo, models.Columns()[i])
			}
		}
		if _, err := io.WriteString(out, strings.Join(row, ",")+"\n"); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	return nil
}

// Bytes returns the CSV payload and its download filename.
func Bytes(records []models.Record) ([]byte, string, error) {
	var b strings.Builder
	if err := Write(&b, records); err != nil {
		return nil, "", err
	}
	return []byte(b.String()), Filename, nil
}

// WriteToFile writes the export to a file at the given path.
func WriteToFile(path string, records []models.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return Write(f, records)
}
