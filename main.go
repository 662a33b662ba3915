package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/krishna2323777/tax-analyser-final/client"
	"github.com/krishna2323777/tax-analyser-final/config"
	"github.com/krishna2323777/tax-analyser-final/handler"
	"github.com/krishna2323777/tax-analyser-final/middleware"
	"github.com/krishna2323777/tax-analyser-final/service"
)

func main() {
	// Initialize configuration; a missing model API key is fatal here, never
	// a per-request error.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize model client
	openaiClient := client.NewOpenAIClient(&cfg.OpenAI)

	// Initialize Tesseract client for the scanned-PDF fallback
	tesseractClient := client.NewTesseractClient(cfg.OCR.TessdataPrefix)
	defer tesseractClient.Close()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	ingestService := service.NewIngestService(pdfProcessor, tesseractClient)
	extractService := service.NewExtractService(openaiClient)

	// Initialize handler layer
	extractHandler := handler.NewExtractHandler(ingestService, extractService)

	// Setup Gin router
	router := gin.Default()
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Configure max multipart memory
	router.MaxMultipartMemory = cfg.Upload.MaxFileSizeMB << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Corporate Tax Analyser",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		tax := api.Group("/tax")
		{
			tax.POST("/extract", extractHandler.ExtractFinancials)
		}
	}

	// Start server
	log.Printf("Starting Corporate Tax Analyser on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
