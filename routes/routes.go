package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"dentinvoice/handlers"
	"dentinvoice/utils"
)

// RegisterInvoiceRoutes registers the invoicing endpoints.
func RegisterInvoiceRoutes(r *gin.Engine, h *handlers.InvoiceHandler) {
	api := r.Group("/api/invoices")
	{
		api.POST("", h.CreateInvoiceHandler)
		api.GET("", h.ListInvoicesHandler)
		api.GET("/:id", h.GetInvoiceHandler)
		api.GET("/:id/pdf", h.DownloadInvoicePDFHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint reporting session stats.
func RegisterHealthRoute(r *gin.Engine, counter utils.InvoiceCounter) {
	r.GET("/health", func(c *gin.Context) {
		stats := utils.GetSessionStats()
		stats.InvoiceCount = counter.Count()
		c.JSON(http.StatusOK, stats)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.InvoiceHandler, counter utils.InvoiceCounter) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterInvoiceRoutes(r, h)
	RegisterHealthRoute(r, counter)
}
