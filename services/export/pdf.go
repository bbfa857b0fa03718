package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"dentinvoice/models"
)

type pdfExporter struct {
	clinic ClinicInfo
}

// NewPDFExporter returns a DocumentExporter backed by gofpdf. The exporter
// only reads invoice state; it never mutates it.
func NewPDFExporter(clinic ClinicInfo) DocumentExporter {
	return &pdfExporter{clinic: clinic}
}

// FileName returns the canonical download name, invoice-<number>.pdf.
func (e *pdfExporter) FileName(inv models.Invoice) string {
	return fmt.Sprintf("invoice-%s.pdf", inv.InvoiceNumber)
}

// Render lays out the invoice document and writes the PDF bytes to w.
func (e *pdfExporter) Render(inv models.Invoice, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Clinic letterhead with invoice number and date on the right.
	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(37, 99, 235)
	pdf.CellFormat(120, 9, e.clinic.Name, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(70, 9, inv.InvoiceNumber, "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(120, 5, e.clinic.AddressLine1, "", 0, "L", false, 0, "")
	pdf.CellFormat(70, 5, "Date: "+inv.Date, "", 1, "R", false, 0, "")
	pdf.CellFormat(120, 5, e.clinic.AddressLine2, "", 1, "L", false, 0, "")
	pdf.CellFormat(120, 5, "Phone: "+e.clinic.Phone, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Patient information block.
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(37, 99, 235)
	pdf.CellFormat(0, 7, "Patient Information", "T", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(95, 6, fmt.Sprintf("Name: %s", inv.PatientName), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Phone: %s", inv.PhoneNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Age: %d", inv.Age), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("OP Number: %s", inv.OPNumber), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Treatment table.
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(239, 246, 255)
	pdf.SetTextColor(37, 99, 235)
	pdf.CellFormat(80, 8, "Treatment", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 8, "Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(50, 8, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(40, 40, 40)
	for _, t := range inv.Treatments {
		pdf.CellFormat(80, 7, t.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, pdfAmount(t.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", t.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 7, pdfAmount(t.LineTotal), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(37, 99, 235)
	pdf.CellFormat(140, 8, "Total", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 8, pdfAmount(inv.Total), "1", 1, "R", true, 0, "")
	pdf.Ln(10)

	// Footer.
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 5, fmt.Sprintf("Thank you for choosing %s", e.clinic.Name), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("For any queries, please contact us at %s", e.clinic.SupportEmail), "", 1, "C", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render invoice %s: %w", inv.InvoiceNumber, err)
	}
	return nil
}

// Export renders the invoice into dir and returns the file path.
func (e *pdfExporter) Export(inv models.Invoice, dir string) (string, error) {
	path := filepath.Join(dir, e.FileName(inv))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := e.Render(inv, f); err != nil {
		return "", err
	}
	return path, nil
}

// pdfAmount formats a monetary value for the PDF. The core fonts are
// cp1252 and cannot draw the rupee sign, so the document uses "Rs."
// while JSON responses keep the symbol.
func pdfAmount(amount decimal.Decimal) string {
	return "Rs. " + amount.StringFixed(2)
}
