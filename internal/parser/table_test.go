package parser

import (
	"testing"

	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/models"
)

func TestMapTableRowWide(t *testing.T) {
	// 10 cells: description split across extra detected columns.
	cells := []string{"1", "01-01-2024", "01-01-2024", "PAYMENT", "TO", "X", "", "100.00", "", "900.00"}

	rec, ok := mapTableRow(cells)
	if !ok {
		t.Fatal("expected row to map")
	}

	want := models.Record{
		SerialNo:        "1",
		TransactionDate: "01-01-2024",
		ValueDate:       "01-01-2024",
		Description:     "PAYMENT TO X",
		ChequeNumber:    "",
		Debit:           "100.00",
		Credit:          "",
		Balance:         "900.00",
	}
	if rec != want {
		t.Errorf("got %+v, want %+v", rec, want)
	}
}

func TestMapTableRowEight(t *testing.T) {
	cells := []string{"2", "02-01-2024", "02-01-2024", "UPI/DR/4123/GROCERY", "123456", "250.00", "-", "650.00"}

	rec, ok := mapTableRow(cells)
	if !ok {
		t.Fatal("expected row to map")
	}
	if rec.ChequeNumber != "123456" {
		t.Errorf("cheque: got %q", rec.ChequeNumber)
	}
	if rec.Description != "UPI/DR/4123/GROCERY" {
		t.Errorf("description: got %q", rec.Description)
	}
	if rec.Debit != "250.00" || rec.Credit != "-" || rec.Balance != "650.00" {
		t.Errorf("amounts: got %q %q %q", rec.Debit, rec.Credit, rec.Balance)
	}
}

func TestMapTableRowNarrow(t *testing.T) {
	// 7 cells: cheque column lost, description still recovered.
	cells := []string{"3", "03-01-2024", "03-01-2024", "ATM WITHDRAWAL", "500.00", "-", "150.00"}

	rec, ok := mapTableRow(cells)
	if !ok {
		t.Fatal("expected row to map")
	}
	if rec.ChequeNumber != "" {
		t.Errorf("cheque should be unrecoverable, got %q", rec.ChequeNumber)
	}
	if rec.Description != "ATM WITHDRAWAL" {
		t.Errorf("description: got %q", rec.Description)
	}
	if rec.Debit != "500.00" || rec.Credit != "-" || rec.Balance != "150.00" {
		t.Errorf("amounts: got %q %q %q", rec.Debit, rec.Credit, rec.Balance)
	}
}

func TestMapTableRowDiscards(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
	}{
		{"nil row", nil},
		{"header row", []string{"Sr.No", "Transaction Date", "Value Date", "Description", "Cheque", "Debit", "Credit", "Balance"}},
		{"too few cells", []string{"1", "01-01-2024", "01-01-2024", "X", "100.00"}},
		{"opening balance", []string{"0", "01-01-2024", "01-01-2024", "Opening Balance", "-", "-", "-", "1,000.00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := mapTableRow(tt.cells); ok {
				t.Errorf("expected %s to be discarded", tt.name)
			}
		})
	}
}

func TestMapTableRowCollapsesNewlines(t *testing.T) {
	cells := []string{"4", "04-01-2024", "04-01-2024", "NEFT\nHDFC0001234\nRENT", "-", "-", "15,000.00", "15,650.00"}

	rec, ok := mapTableRow(cells)
	if !ok {
		t.Fatal("expected row to map")
	}
	if rec.Description != "NEFT HDFC0001234 RENT" {
		t.Errorf("description: got %q", rec.Description)
	}
}
