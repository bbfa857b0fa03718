package models

import "github.com/shopspring/decimal"

// TreatmentInput is one treatment line as submitted by the data-entry form.
// The line total is never accepted from the caller; it is derived.
type TreatmentInput struct {
	Name      string          `json:"name" binding:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"` // Defaults to 1 when omitted or zero.
}

// InvoiceInput is the submission payload for creating a new invoice.
// Required-field presence is enforced here, at the data-entry surface;
// an empty treatment list is valid.
type InvoiceInput struct {
	PatientName string           `json:"patientName" binding:"required"`
	Age         int              `json:"age" binding:"gte=0"`
	PhoneNumber string           `json:"phoneNumber"`
	OPNumber    string           `json:"opNumber" binding:"required"`
	Date        string           `json:"date"` // YYYY-MM-DD; defaults to today when empty.
	Treatments  []TreatmentInput `json:"treatments" binding:"dive"`
}
