// File: dentinvoice/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"dentinvoice/config"
	"dentinvoice/handlers"
	"dentinvoice/middleware"
	"dentinvoice/routes"
	"dentinvoice/services/export"
	invoicesvc "dentinvoice/services/invoice"
	"dentinvoice/store"
	"dentinvoice/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// The invoice store lives exactly as long as this process: one session,
	// one explicitly owned collection.
	invoiceRepo := store.NewMemoryInvoiceRepo(config.AppConfig.InvoiceNumberPrefix)

	invoiceService := &invoicesvc.DefaultInvoiceService{
		Repo: invoiceRepo,
	}

	pdfExporter := export.NewPDFExporter(export.ClinicInfo{
		Name:         config.AppConfig.ClinicName,
		AddressLine1: config.AppConfig.ClinicAddressLine1,
		AddressLine2: config.AppConfig.ClinicAddressLine2,
		Phone:        config.AppConfig.ClinicPhone,
		SupportEmail: config.AppConfig.SupportEmail,
	})

	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, pdfExporter, logger)

	utils.StartSessionMonitor(invoiceRepo)
	routes.RegisterRoutes(router, invoiceHandler, invoiceRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
