package invoice

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"dentinvoice/models"
	"dentinvoice/store"
)

// InvoiceService defines business logic for invoice operations.
type InvoiceService interface {
	// CreateInvoice builds an invoice from the submitted data, computes all
	// derived totals, stores it, and returns the stored invoice with its
	// assigned id and invoice number.
	CreateInvoice(input models.InvoiceInput) (*models.Invoice, error)
	// GetInvoice retrieves an invoice by its unique id. Returns
	// store.ErrInvoiceNotFound for an unknown id.
	GetInvoice(id string) (*models.Invoice, error)
	// ListInvoices returns all invoices of the session in creation order.
	ListInvoices() ([]models.Invoice, error)
}

// DefaultInvoiceService is the production implementation.
type DefaultInvoiceService struct {
	Repo store.InvoiceRepository
}

// CreateInvoice validates the line items, derives every line total and the
// grand total through the model derivation functions, and appends the
// invoice to the session store. Caller-supplied totals are ignored: totals
// are always recomputed here so the derivation invariant cannot be violated
// from the outside.
func (s *DefaultInvoiceService) CreateInvoice(input models.InvoiceInput) (*models.Invoice, error) {
	lines := make([]models.TreatmentLine, 0, len(input.Treatments))
	for _, t := range input.Treatments {
		quantity := t.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 0 {
			return nil, fmt.Errorf("treatment %q: quantity must be positive, got %d", t.Name, quantity)
		}
		if t.UnitPrice.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("treatment %q: unit price must not be negative, got %s", t.Name, t.UnitPrice)
		}
		lines = append(lines, models.TreatmentLine{
			ID:        uuid.New().String(),
			Name:      t.Name,
			UnitPrice: t.UnitPrice,
			Quantity:  quantity,
			LineTotal: models.ComputeLineTotal(t.UnitPrice, quantity),
		})
	}

	date := input.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	inv := models.Invoice{
		PatientName: input.PatientName,
		Age:         input.Age,
		PhoneNumber: input.PhoneNumber,
		OPNumber:    input.OPNumber,
		Date:        date,
		Treatments:  lines,
		Total:       models.ComputeInvoiceTotal(lines),
	}

	stored, err := s.Repo.Create(inv)
	if err != nil {
		return nil, fmt.Errorf("failed to store invoice: %w", err)
	}
	return stored, nil
}

// GetInvoice retrieves an invoice by id.
func (s *DefaultInvoiceService) GetInvoice(id string) (*models.Invoice, error) {
	return s.Repo.GetByID(id)
}

// ListInvoices returns the full session collection in creation order.
func (s *DefaultInvoiceService) ListInvoices() ([]models.Invoice, error) {
	return s.Repo.List()
}
