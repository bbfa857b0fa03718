package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"dentinvoice/models"
)

// Create assigns identity to the invoice and appends it to the collection.
// The invoice number is derived from the creation timestamp plus a counter
// owned by this repo, so numbers stay unique even when two invoices land on
// the same clock tick.
func (r *memoryInvoiceRepo) Create(inv models.Invoice) (*models.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if _, exists := r.byID[inv.ID]; exists {
		return nil, fmt.Errorf("invoice with id %s already exists", inv.ID)
	}

	now := time.Now()
	r.seq++
	inv.InvoiceNumber = fmt.Sprintf("%s-%d-%d", r.prefix, now.UnixMilli(), r.seq)
	inv.CreatedAt = now

	r.byID[inv.ID] = len(r.invoices)
	r.invoices = append(r.invoices, inv)

	stored := inv
	return &stored, nil
}

// GetByID returns the invoice with the given id.
func (r *memoryInvoiceRepo) GetByID(id string) (*models.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, ErrInvoiceNotFound
	}
	inv := r.invoices[idx]
	return &inv, nil
}

// List returns a copy of the collection in creation order.
func (r *memoryInvoiceRepo) List() ([]models.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Invoice, len(r.invoices))
	copy(out, r.invoices)
	return out, nil
}

// Count reports the number of invoices created in this session.
func (r *memoryInvoiceRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.invoices)
}
