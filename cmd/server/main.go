package main

import (
	"context"
	"log"
	"time"

	"commerce_chatbot/internal/catalog"
	"commerce_chatbot/internal/config"
	"commerce_chatbot/internal/database"
	"commerce_chatbot/internal/handlers"
	"commerce_chatbot/internal/redis"
	"commerce_chatbot/internal/repository"
	"commerce_chatbot/internal/services"
	"commerce_chatbot/pkg/dialogflow"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Pick the store backend: postgres when configured, otherwise the
	// built-in catalog fixture.
	var (
		orderRepo    repository.OrderRepository
		productRepo  repository.ProductRepository
		customerRepo repository.CustomerRepository
		contentRepo  repository.ContentRepository
	)
	if cfg.DatabaseURL != "" {
		db, err := database.Initialize(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		orderRepo = repository.NewOrderRepository(db)
		productRepo = repository.NewProductRepository(db)
		customerRepo = repository.NewCustomerRepository(db)
		contentRepo = repository.NewContentRepository(db)
		log.Println("Using postgres catalog store")
	} else {
		store := catalog.Default()
		orderRepo = repository.NewMemoryOrderRepository(store)
		productRepo = repository.NewMemoryProductRepository(store)
		customerRepo = repository.NewMemoryCustomerRepository(store)
		contentRepo = repository.NewMemoryContentRepository(store)
		log.Println("Using in-memory catalog store")
	}

	// Initialize services
	latency := time.Duration(cfg.CatalogLatencyMs) * time.Millisecond
	catalogService := services.NewCatalogService(orderRepo, productRepo, customerRepo, contentRepo, latency)
	fulfillmentService := services.NewFulfillmentService(catalogService)

	// Optional response cache
	var cache *redis.Client
	if cfg.RedisURL != "" {
		var err error
		cache, err = redis.Initialize(cfg.RedisURL)
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		defer cache.Close()
	}

	// Optional NLU client for the chat proxy
	var detector handlers.IntentDetector
	if cfg.DialogflowProjectID != "" {
		client, err := dialogflow.NewClient(context.Background(), cfg.DialogflowProjectID, cfg.DialogflowCredentialsFile, cfg.DialogflowLanguageCode)
		if err != nil {
			log.Fatal("Failed to initialize Dialogflow client:", err)
		}
		defer client.Close()
		detector = client
	}

	// Initialize handlers
	webhookHandler := handlers.NewWebhookHandler(fulfillmentService, cache, time.Duration(cfg.CacheTTL)*time.Second)
	chatHandler := handlers.NewChatHandler(detector)

	// Setup routes
	router := gin.Default()

	router.POST("/webhook", webhookHandler.HandleWebhook)
	router.POST("/chat", chatHandler.HandleChat)
	router.GET("/", func(c *gin.Context) {
		c.String(200, "Server is running")
	})

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
