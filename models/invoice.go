package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TreatmentLine represents one billable item on an invoice.
type TreatmentLine struct {
	ID        string          `json:"id"`        // Unique line identifier, assigned when the line is built.
	Name      string          `json:"name"`      // Display name, e.g. "Cleaning".
	UnitPrice decimal.Decimal `json:"unitPrice"` // Price per unit, non-negative.
	Quantity  int             `json:"quantity"`  // Positive integer, defaults to 1.
	LineTotal decimal.Decimal `json:"lineTotal"` // Always UnitPrice * Quantity; never set directly.
}

// Invoice is an immutable-after-creation record of billed treatments for one
// patient visit. ID and InvoiceNumber are assigned by the store at creation
// time; Total is a snapshot computed from the treatment lines at that moment.
type Invoice struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"` // Human-facing label, unique within the session.
	PatientName   string          `json:"patientName"`
	Age           int             `json:"age"`
	PhoneNumber   string          `json:"phoneNumber"`
	OPNumber      string          `json:"opNumber"` // Clinic-internal patient reference.
	Date          string          `json:"date"`     // Calendar date of service, YYYY-MM-DD.
	Treatments    []TreatmentLine `json:"treatments"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ComputeLineTotal derives a line total from its unit price and quantity.
// All line totals must be produced here so the derivation cannot drift
// between call sites.
func ComputeLineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// ComputeInvoiceTotal sums the line totals of the given treatments.
func ComputeInvoiceTotal(lines []TreatmentLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal)
	}
	return total
}

// FormatAmount renders a monetary value for display: rupee symbol followed
// by the amount with two decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return fmt.Sprintf("₹%s", amount.StringFixed(2))
}
