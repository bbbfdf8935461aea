package models

import "github.com/shopspring/decimal"

// Record is one transaction row in the fixed eight-column statement schema.
// Amount fields are kept as cleaned decimal strings, not floats: the export
// must reproduce them byte for byte.
type Record struct {
	SerialNo        string `json:"serialNo"`
	TransactionDate string `json:"transactionDate"`
	ValueDate       string `json:"valueDate"`
	Description     string `json:"description"`
	ChequeNumber    string `json:"chequeNumber"`
	Debit           string `json:"debit"`
	Credit          string `json:"credit"`
	Balance         string `json:"balance"`
}

// Columns is the fixed, order-significant export header.
func Columns() []string {
	return []string{
		"Serial No", "Transaction Date", "Value Date", "Description",
		"Cheque Number", "Debit", "Credit", "Balance",
	}
}

// Row returns the record's field values in export column order.
func (r Record) Row() []string {
	return []string{
		r.SerialNo, r.TransactionDate, r.ValueDate, r.Description,
		r.ChequeNumber, r.Debit, r.Credit, r.Balance,
	}
}

// Totals holds the debit and credit sums over a record set.
type Totals struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// SumAmounts totals the debit and credit columns. Fields that are empty or
// not parseable as decimals contribute nothing; the validation engine is the
// place that reports them.
func SumAmounts(records []Record) Totals {
	t := Totals{Debit: decimal.Zero, Credit: decimal.Zero}
	for _, rec := range records {
		if d, err := decimal.NewFromString(rec.Debit); rec.Debit != "" && err == nil {
			t.Debit = t.Debit.Add(d)
		}
		if c, err := decimal.NewFromString(rec.Credit); rec.Credit != "" && err == nil {
			t.Credit = t.Credit.Add(c)
		}
	}
	return t
}
