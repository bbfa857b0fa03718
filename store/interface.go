// Package store owns the session-scoped invoice collection. The collection
// is append-only: invoices are created once and never updated or deleted,
// and they live only as long as the process.
package store

import (
	"errors"
	"sync"

	"dentinvoice/models"
)

// ErrInvoiceNotFound is returned by lookups for an unknown invoice id.
// Callers render a not-found state; this is not an exceptional condition.
var ErrInvoiceNotFound = errors.New("invoice not found")

// InvoiceRepository is the read/append contract over the session's invoices.
type InvoiceRepository interface {
	// Create assigns identity (id, invoice number, creation time) to the
	// given invoice, appends it, and returns the stored value.
	Create(inv models.Invoice) (*models.Invoice, error)
	// GetByID returns the invoice with the given id, or ErrInvoiceNotFound.
	GetByID(id string) (*models.Invoice, error)
	// List returns a snapshot of all invoices in creation order.
	List() ([]models.Invoice, error)
	// Count reports how many invoices exist in the session.
	Count() int
}

type memoryInvoiceRepo struct {
	mu       sync.RWMutex
	invoices []models.Invoice
	byID     map[string]int // invoice id -> index into invoices
	seq      uint64         // monotonic counter backing invoice numbers
	prefix   string         // invoice number prefix, e.g. "INV"
}

// NewMemoryInvoiceRepo returns an empty in-memory InvoiceRepository.
// Each instance owns its own collection and number sequence, so its
// lifecycle is tied to whoever constructs it (the application session).
func NewMemoryInvoiceRepo(numberPrefix string) InvoiceRepository {
	return &memoryInvoiceRepo{
		byID:   make(map[string]int),
		prefix: numberPrefix,
	}
}
