// Package export renders invoices into downloadable documents. The core
// never talks to a rendering engine directly; it goes through the
// DocumentExporter interface so the engine can be swapped or stubbed out.
package export

import (
	"io"

	"dentinvoice/models"
)

// DocumentExporter turns an invoice into a printable document.
type DocumentExporter interface {
	// Render writes the document for the given invoice to w.
	Render(inv models.Invoice, w io.Writer) error
	// Export saves the document as invoice-<invoiceNumber>.pdf inside dir
	// and returns the written file path.
	Export(inv models.Invoice, dir string) (string, error)
	// FileName returns the canonical download name for the invoice.
	FileName(inv models.Invoice) string
}

// ClinicInfo is the letterhead printed on every exported invoice.
type ClinicInfo struct {
	Name         string
	AddressLine1 string
	AddressLine2 string
	Phone        string
	SupportEmail string
}
