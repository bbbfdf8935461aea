package extractor

import (
	"strings"
	"testing"
)

// statementWords lays out a synthetic 8-column ruled table: one header row
// and three transaction rows, with column origins repeating down the page.
func statementWords() []word {
	cols := []float64{30, 70, 130, 190, 330, 400, 460, 520}
	rows := [][]string{
		{"Sr.No", "Transaction", "Value", "Description", "Cheque", "Debit", "Credit", "Balance"},
		{"1", "01-01-2024", "01-01-2024", "NEFT PAYMENT", "-", "500.00", "-", "9,500.00"},
		{"2", "02-01-2024", "02-01-2024", "SALARY CREDIT", "-", "-", "2,000.00", "11,500.00"},
		{"3", "03-01-2024", "03-01-2024", "ATM WITHDRAWAL", "123456", "100.00", "-", "11,400.00"},
	}

	var words []word
	y := 700.0
	for _, row := range rows {
		for c, cell := range row {
			words = append(words, word{x: cols[c], y: y, s: cell})
		}
		y -= 20
	}
	return words
}

func TestBuildTables(t *testing.T) {
	tables := buildTables(statementWords(), DefaultTableGeometry())
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}

	table := tables[0]
	if len(table) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(table))
	}
	for i, row := range table {
		if len(row) != 8 {
			t.Errorf("row %d: expected 8 cells, got %d (%v)", i, len(row), row)
		}
	}

	if table[1][0] != "1" || table[1][3] != "NEFT PAYMENT" || table[1][7] != "9,500.00" {
		t.Errorf("unexpected first transaction row: %v", table[1])
	}
	if table[3][4] != "123456" {
		t.Errorf("cheque cell: got %q", table[3][4])
	}
}

func TestBuildTablesRejectsProse(t *testing.T) {
	// Free-running text has no repeating column origins, so no table should
	// be detected.
	var words []word
	y := 700.0
	xs := []float64{30, 95, 170, 260, 20, 110, 205, 40, 150}
	for i, x := range xs {
		words = append(words, word{x: x, y: y, s: "word"})
		if i%3 == 2 {
			y -= 14
		}
	}

	if tables := buildTables(words, DefaultTableGeometry()); tables != nil {
		t.Errorf("expected no tables for prose layout, got %d", len(tables))
	}
}

func TestBuildTablesEmpty(t *testing.T) {
	if tables := buildTables(nil, DefaultTableGeometry()); tables != nil {
		t.Error("expected nil for empty page")
	}
}

func TestExtractTextRowOrder(t *testing.T) {
	p := &pdfPage{words: []word{
		{x: 30, y: 680, s: "second"},
		{x: 30, y: 700, s: "first"},
		{x: 90, y: 700, s: "line"},
	}}

	text := p.ExtractText()
	lines := strings.Split(text, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), text)
	}
	if lines[0] != "first line" {
		t.Errorf("first line: got %q", lines[0])
	}
	if lines[1] != "second" {
		t.Errorf("second line: got %q", lines[1])
	}
}

func TestExtractTextColumnGap(t *testing.T) {
	p := &pdfPage{words: []word{
		{x: 30, y: 700, s: "DESC"},
		{x: 300, y: 700, s: "500.00"},
	}}

	if got := p.ExtractText(); got != "DESC  500.00" {
		t.Errorf("got %q, want double-space column separator", got)
	}
}
