package parser

import (
	"strings"
	"testing"

	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/models"
)

func TestParsePageTextOrphanDescription(t *testing.T) {
	// The description line appears BEFORE the row-start line in this
	// statement family's text extraction.
	text := "ATM WITHDRAWAL\n2 02-01-2024 02-01-2024 500.00 - 400.00"

	records, issues := parsePageText(text)
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %+v", issues)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.SerialNo != "2" {
		t.Errorf("serial: got %q", rec.SerialNo)
	}
	if rec.Description != "ATM WITHDRAWAL" {
		t.Errorf("description: got %q", rec.Description)
	}
	if rec.Debit != "500.00" || rec.Credit != "-" || rec.Balance != "400.00" {
		t.Errorf("amounts: got %q %q %q", rec.Debit, rec.Credit, rec.Balance)
	}
	if rec.ValueDate != "02-01-2024" {
		t.Errorf("value date: got %q", rec.ValueDate)
	}
}

func TestParsePageTextBufferHandoff(t *testing.T) {
	// Orphan lines buffered before the first row start belong to that row
	// only; lines after a row start are continuations of the open record.
	// Nothing may be lost or attached twice.
	text := strings.Join([]string{
		"UPI/DR/401234567890/GROCERY STORE",
		"MUMBAI BRANCH",
		"1 01-01-2024 01-01-2024 250.00 - 750.00",
		"REF 889900",
		"2 02-02-2024 02-02-2024 SALARY CREDIT - 50,000.00 50,750.00",
	}, "\n")

	records, issues := parsePageText(text)
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %+v", issues)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	if got := records[0].Description; got != "UPI/DR/401234567890/GROCERY STORE MUMBAI BRANCH REF 889900" {
		t.Errorf("record 1 description: got %q", got)
	}
	if got := records[1].Description; got != "SALARY CREDIT" {
		t.Errorf("record 2 description: got %q", got)
	}
	if records[1].Credit != "50,000.00" || records[1].Balance != "50,750.00" {
		t.Errorf("record 2 amounts: got %q %q %q",
			records[1].Debit, records[1].Credit, records[1].Balance)
	}
}

func TestParsePageTextContinuationAfterRowStart(t *testing.T) {
	// Wait: "REF 889900" arrives while record 1 is still open, so it is a
	// continuation, not a prebuffer line for record 2.
	text := strings.Join([]string{
		"1 01-01-2024 01-01-2024 INLINE DESC 100.00 - 900.00",
		"TRAILING NARRATIVE",
		"2 02-01-2024 02-01-2024 NEXT 50.00 - 850.00",
	}, "\n")

	records, _ := parsePageText(text)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if got := records[0].Description; got != "INLINE DESC TRAILING NARRATIVE" {
		t.Errorf("record 1 description: got %q", got)
	}
	if got := records[1].Description; got != "NEXT" {
		t.Errorf("record 2 description: got %q", got)
	}
}

func TestParsePageTextOpeningBalance(t *testing.T) {
	text := strings.Join([]string{
		"STRAY HEADER TEXT",
		"0 01-01-2024 01-01-2024 Opening Balance - - 1,000.00",
		"CARD PAYMENT",
		"1 01-01-2024 01-01-2024 100.00 - 900.00",
	}, "\n")

	records, issues := parsePageText(text)
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %+v", issues)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].SerialNo != "1" {
		t.Errorf("serial: got %q", records[0].SerialNo)
	}
	// The stray text buffered before the opening-balance line must not leak
	// into the real transaction.
	if records[0].Description != "CARD PAYMENT" {
		t.Errorf("description: got %q", records[0].Description)
	}
}

func TestParsePageTextPartialAmounts(t *testing.T) {
	// Only two trailing amount tokens: populate from the end (credit and
	// balance), warn, keep the record.
	text := "3 03-01-2024 03-01-2024 REFUND 75.00 925.00"

	records, issues := parsePageText(text)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if len(issues) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(issues))
	}
	if issues[0].Level != models.LevelWarning {
		t.Errorf("level: got %q", issues[0].Level)
	}
	if issues[0].SerialNo == nil || *issues[0].SerialNo != 3 {
		t.Errorf("issue serial: got %v", issues[0].SerialNo)
	}

	rec := records[0]
	if rec.Debit != "" || rec.Credit != "75.00" || rec.Balance != "925.00" {
		t.Errorf("amounts: got %q %q %q", rec.Debit, rec.Credit, rec.Balance)
	}
}

func TestParsePageTextChequeNumber(t *testing.T) {
	text := "4 04-01-2024 04-01-2024 CHQ PAID 123456 5,000.00 - 4,000.00"

	records, _ := parsePageText(text)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].ChequeNumber != "123456" {
		t.Errorf("cheque: got %q", records[0].ChequeNumber)
	}
	if records[0].Description != "CHQ PAID" {
		t.Errorf("description: got %q", records[0].Description)
	}
}

func TestParsePageTextNoise(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"statement banner", "Account Statement from 23-08-2025 to 09-11-2025"},
		{"page footer", "Page 2 of 7"},
		{"timestamp footer", "09/11/2025 02:53:00 PM"},
		{"branding", "Download bob World today"},
		{"column header", "Debit Credit Balance"},
		{"computer generated", "This is a computer-generated statement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := tt.line + "\n1 01-01-2024 01-01-2024 PAYMENT 100.00 - 900.00"
			records, _ := parsePageText(text)
			if len(records) != 1 {
				t.Fatalf("expected 1 record, got %d", len(records))
			}
			if records[0].Description != "PAYMENT" {
				t.Errorf("noise leaked into description: %q", records[0].Description)
			}
		})
	}
}

func TestIsNoiseKeepsTransactionLines(t *testing.T) {
	lines := []string{
		"1 01-01-2024 01-01-2024 PAYMENT 100.00 - 900.00",
		"UPI/DR/401234567890/GROCERY",
		"NEFT RTGS TRANSFER REF 12",
	}
	for _, ln := range lines {
		if isNoise(ln) {
			t.Errorf("isNoise(%q) = true, want false", ln)
		}
	}
}
