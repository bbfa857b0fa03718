package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dentinvoice/models"
	"dentinvoice/services/export"
	invoicesvc "dentinvoice/services/invoice"
	"dentinvoice/store"
	"dentinvoice/utils"
)

// InvoiceHandler wires the invoice endpoints to the service layer.
type InvoiceHandler struct {
	Service  invoicesvc.InvoiceService
	Exporter export.DocumentExporter
	Logger   *zap.Logger
}

// NewInvoiceHandler returns a handler bound to the given service and exporter.
func NewInvoiceHandler(svc invoicesvc.InvoiceService, exporter export.DocumentExporter, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{Service: svc, Exporter: exporter, Logger: logger}
}

// CreateInvoiceHandler accepts the data-entry form submission and creates a
// new invoice. The created invoice (with assigned id and number) is returned
// so the client can navigate straight to its view.
func (h *InvoiceHandler) CreateInvoiceHandler(c *gin.Context) {
	var input models.InvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid invoice input", err.Error())
		return
	}

	inv, err := h.Service.CreateInvoice(input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to create invoice", err.Error())
		return
	}

	h.Logger.Info("invoice created",
		zap.String("id", inv.ID),
		zap.String("invoiceNumber", inv.InvoiceNumber),
		zap.String("total", inv.Total.StringFixed(2)),
	)
	c.JSON(http.StatusCreated, gin.H{
		"invoice":      inv,
		"totalDisplay": models.FormatAmount(inv.Total),
	})
}

// GetInvoiceHandler returns a single invoice by id.
func (h *InvoiceHandler) GetInvoiceHandler(c *gin.Context) {
	id := c.Param("id")
	inv, err := h.Service.GetInvoice(id)
	if err != nil {
		if errors.Is(err, store.ErrInvoiceNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Invoice not found", fmt.Sprintf("no invoice with id %s", id))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch invoice", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invoice":      inv,
		"totalDisplay": models.FormatAmount(inv.Total),
	})
}

// ListInvoicesHandler returns all invoices of the session in creation order.
func (h *InvoiceHandler) ListInvoicesHandler(c *gin.Context) {
	invoices, err := h.Service.ListInvoices()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list invoices", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invoices": invoices,
		"count":    len(invoices),
	})
}

// DownloadInvoicePDFHandler streams the invoice as a PDF attachment. Export
// only reads invoice state; a failed export is logged and reported without
// touching the store, so the client can simply retry.
func (h *InvoiceHandler) DownloadInvoicePDFHandler(c *gin.Context) {
	id := c.Param("id")
	inv, err := h.Service.GetInvoice(id)
	if err != nil {
		if errors.Is(err, store.ErrInvoiceNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Invoice not found", fmt.Sprintf("no invoice with id %s", id))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch invoice", err.Error())
		return
	}

	var buf bytes.Buffer
	if err := h.Exporter.Render(*inv, &buf); err != nil {
		h.Logger.Error("failed to generate invoice PDF",
			zap.String("id", inv.ID),
			zap.String("invoiceNumber", inv.InvoiceNumber),
			zap.Error(err),
		)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate PDF", "The invoice could not be exported. Please try again.")
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+h.Exporter.FileName(*inv))
	c.Header("Content-Length", strconv.Itoa(buf.Len()))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
