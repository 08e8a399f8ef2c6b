package main

import (
	"fmt"
	"log"

	"commerce_chatbot/internal/catalog"
	"commerce_chatbot/internal/config"
	"commerce_chatbot/internal/database"
	"commerce_chatbot/internal/models"
)

func main() {
	fmt.Println("Initializing catalog database...")

	// Load configuration
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL must be set to seed the catalog")
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.Order{},
		&models.Customer{},
		&models.Product{},
		&models.ShippingOption{},
		&models.StoreSetting{},
		&models.ReturnPolicy{},
		&models.FAQ{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.Order{},
		&models.Customer{},
		&models.Product{},
		&models.ShippingOption{},
		&models.StoreSetting{},
		&models.ReturnPolicy{},
		&models.FAQ{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed the fixed catalog
	fmt.Println("Seeding catalog data...")
	store := catalog.Default()

	for _, customer := range store.Customers {
		c := customer
		if err := db.Create(&c).Error; err != nil {
			log.Fatal("Failed to seed customer:", err)
		}
	}

	for _, product := range store.Products {
		p := product
		if err := db.Create(&p).Error; err != nil {
			log.Fatal("Failed to seed product:", err)
		}
	}

	for _, order := range store.Orders {
		o := order
		if err := db.Create(&o).Error; err != nil {
			log.Fatal("Failed to seed order:", err)
		}
	}

	for _, option := range store.ShippingOptions {
		o := option
		if err := db.Create(&o).Error; err != nil {
			log.Fatal("Failed to seed shipping option:", err)
		}
	}

	threshold := &models.StoreSetting{
		SettingName: models.SettingFreeShippingThreshold,
		Value:       store.FreeShippingThreshold,
	}
	if err := db.Create(threshold).Error; err != nil {
		log.Fatal("Failed to seed store settings:", err)
	}

	policy := store.ReturnPolicy
	if err := db.Create(&policy).Error; err != nil {
		log.Fatal("Failed to seed return policy:", err)
	}

	for _, faq := range store.FAQs {
		f := faq
		if err := db.Create(&f).Error; err != nil {
			log.Fatal("Failed to seed FAQ:", err)
		}
	}

	fmt.Println("Catalog database initialization completed successfully!")
}
