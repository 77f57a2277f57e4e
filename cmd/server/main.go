package main

import (
	"fmt"
	"log"
	"os"

	"github.com/linklens/backend/config"
	httpDelivery "github.com/linklens/backend/internal/delivery/http"
	"github.com/linklens/backend/internal/domain"
	"github.com/linklens/backend/internal/infrastructure/dedup"
	"github.com/linklens/backend/internal/infrastructure/fetch"
	"github.com/linklens/backend/internal/infrastructure/ocr"
	"github.com/linklens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting LinkLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	fetchClient := fetch.NewClient(fetch.Config{
		ResolveTimeout: cfg.Fetch.ResolveTimeout,
		PageTimeout:    cfg.Fetch.PageTimeout,
		RequestsPerSec: cfg.Fetch.RequestsPerSec,
	})
	log.Printf("Fetch: resolve_timeout=%s page_timeout=%s", cfg.Fetch.ResolveTimeout, cfg.Fetch.PageTimeout)

	processedSet := dedup.NewMemorySet(cfg.Dedup.Capacity)
	log.Printf("Dedup capacity: %d", cfg.Dedup.Capacity)

	var recognizer domain.TextRecognizer
	if cfg.OCR.BaseURL != "" {
		recognizer = ocr.NewClient(cfg.OCR.BaseURL)
		log.Printf("OCR service configured: %s", cfg.OCR.BaseURL)
	} else {
		log.Printf("OCR service not configured - image-only messages will be skipped")
	}

	// Initialize usecase layer
	processor := usecase.NewProcessor(
		fetchClient,
		fetchClient,
		processedSet,
		recognizer,
		usecase.ProcessorConfig{
			MaxURLsPerMessage: cfg.Processor.MaxURLsPerMessage,
			TimeBudget:        cfg.Processor.TimeBudget,
			ReplyDelay:        cfg.Processor.ReplyDelay,
		},
	)

	log.Printf("Processor: max_urls=%d budget=%s delay=%s",
		cfg.Processor.MaxURLsPerMessage,
		cfg.Processor.TimeBudget,
		cfg.Processor.ReplyDelay)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(processor)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
