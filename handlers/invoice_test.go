package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dentinvoice/models"
	"dentinvoice/services/export"
	invoicesvc "dentinvoice/services/invoice"
	"dentinvoice/store"
)

type invoiceResponse struct {
	Invoice      models.Invoice `json:"invoice"`
	TotalDisplay string         `json:"totalDisplay"`
}

type listResponse struct {
	Invoices []models.Invoice `json:"invoices"`
	Count    int              `json:"count"`
}

func newTestRouter(t *testing.T, exporter export.DocumentExporter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &invoicesvc.DefaultInvoiceService{Repo: store.NewMemoryInvoiceRepo("INV")}
	h := NewInvoiceHandler(svc, exporter, zap.NewNop())

	r := gin.New()
	api := r.Group("/api/invoices")
	api.POST("", h.CreateInvoiceHandler)
	api.GET("", h.ListInvoicesHandler)
	api.GET("/:id", h.GetInvoiceHandler)
	api.GET("/:id/pdf", h.DownloadInvoicePDFHandler)
	return r
}

func postInvoice(t *testing.T, r *gin.Engine, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const sampleInvoice = `{
	"patientName": "Anita Menon",
	"age": 34,
	"phoneNumber": "+91 9876543210",
	"opNumber": "OP-1023",
	"date": "2026-09-01",
	"treatments": [
		{"name": "Cleaning", "unitPrice": 500, "quantity": 1},
		{"name": "X-Ray", "unitPrice": 300, "quantity": 2}
	]
}`

func TestCreateInvoiceEndpoint(t *testing.T) {
	clinic := export.ClinicInfo{Name: "Modern Dental Clinic"}
	r := newTestRouter(t, export.NewPDFExporter(clinic))

	w := postInvoice(t, r, sampleInvoice)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp invoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.Invoice.ID)
	assert.NotEmpty(t, resp.Invoice.InvoiceNumber)
	assert.True(t, decimal.NewFromInt(1100).Equal(resp.Invoice.Total), "got %s", resp.Invoice.Total)
	assert.Equal(t, "₹1100.00", resp.TotalDisplay)
	require.Len(t, resp.Invoice.Treatments, 2)
	assert.True(t, decimal.NewFromInt(600).Equal(resp.Invoice.Treatments[1].LineTotal))
}

func TestCreateInvoiceValidation(t *testing.T) {
	clinic := export.ClinicInfo{Name: "Modern Dental Clinic"}
	r := newTestRouter(t, export.NewPDFExporter(clinic))

	t.Run("missing_patient_name", func(t *testing.T) {
		w := postInvoice(t, r, `{"opNumber": "OP-1"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing_op_number", func(t *testing.T) {
		w := postInvoice(t, r, `{"patientName": "Anita"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative_unit_price", func(t *testing.T) {
		w := postInvoice(t, r, `{
			"patientName": "Anita",
			"opNumber": "OP-1",
			"treatments": [{"name": "Cleaning", "unitPrice": -500}]
		}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty_treatments_is_valid", func(t *testing.T) {
		w := postInvoice(t, r, `{"patientName": "Anita", "age": 34, "opNumber": "OP-1"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp invoiceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, decimal.Zero.Equal(resp.Invoice.Total))
		assert.Equal(t, "₹0.00", resp.TotalDisplay)
	})
}

func TestGetInvoiceEndpoint(t *testing.T) {
	clinic := export.ClinicInfo{Name: "Modern Dental Clinic"}
	r := newTestRouter(t, export.NewPDFExporter(clinic))

	w := postInvoice(t, r, sampleInvoice)
	require.Equal(t, http.StatusCreated, w.Code)
	var created invoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/invoices/"+created.Invoice.ID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp invoiceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, created.Invoice.ID, resp.Invoice.ID)
		assert.Equal(t, created.Invoice.InvoiceNumber, resp.Invoice.InvoiceNumber)
	})

	t.Run("not_found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/invoices/unknown-id", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Invoice not found")
	})
}

func TestListInvoicesEndpoint(t *testing.T) {
	clinic := export.ClinicInfo{Name: "Modern Dental Clinic"}
	r := newTestRouter(t, export.NewPDFExporter(clinic))

	for i := 0; i < 3; i++ {
		payload := fmt.Sprintf(`{"patientName": "Patient %d", "opNumber": "OP-%d"}`, i, i)
		w := postInvoice(t, r, payload)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Count)
	require.Len(t, resp.Invoices, 3)
	for i, inv := range resp.Invoices {
		assert.Equal(t, fmt.Sprintf("Patient %d", i), inv.PatientName)
	}
}

func TestDownloadInvoicePDFEndpoint(t *testing.T) {
	clinic := export.ClinicInfo{Name: "Modern Dental Clinic"}
	r := newTestRouter(t, export.NewPDFExporter(clinic))

	w := postInvoice(t, r, sampleInvoice)
	require.Equal(t, http.StatusCreated, w.Code)
	var created invoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/"+created.Invoice.ID+"/pdf", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t,
		"attachment; filename=invoice-"+created.Invoice.InvoiceNumber+".pdf",
		rec.Header().Get("Content-Disposition"),
	)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

// failingExporter simulates an unavailable rendering engine.
type failingExporter struct{}

func (failingExporter) Render(models.Invoice, io.Writer) error {
	return errors.New("rendering engine not ready")
}

func (failingExporter) Export(models.Invoice, string) (string, error) {
	return "", errors.New("rendering engine not ready")
}

func (failingExporter) FileName(inv models.Invoice) string {
	return "invoice-" + inv.InvoiceNumber + ".pdf"
}

func TestDownloadInvoicePDFExportFailure(t *testing.T) {
	r := newTestRouter(t, failingExporter{})

	w := postInvoice(t, r, sampleInvoice)
	require.Equal(t, http.StatusCreated, w.Code)
	var created invoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/"+created.Invoice.ID+"/pdf", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to generate PDF")

	// The failed export must leave the invoice untouched and retrievable.
	req = httptest.NewRequest(http.MethodGet, "/api/invoices/"+created.Invoice.ID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
