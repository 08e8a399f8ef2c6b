// Package catalog holds the fixed store dataset. It is loaded once at
// startup and stands in for a real product database; nothing mutates it at
// runtime.
package catalog

import (
	"time"

	"commerce_chatbot/internal/models"
)

type Catalog struct {
	Orders                []models.Order
	Customers             []models.Customer
	Products              []models.Product
	ShippingOptions       []models.ShippingOption
	FreeShippingThreshold float64
	ReturnPolicy          models.ReturnPolicy
	FAQs                  []models.FAQ
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

// Default returns the seed catalog.
func Default() *Catalog {
	return &Catalog{
		Orders: []models.Order{
			{
				OrderNumber:       "123456",
				CustomerID:        "cust001",
				Status:            string(models.OrderShipped),
				OrderDate:         date(2025, time.May, 10),
				EstimatedDelivery: datePtr(2025, time.May, 25),
				Items:             []string{"prod001", "prod003"},
				ShippingAddress:   "123 Main St, Anytown, USA",
				TrackingNumber:    "TRK789012345",
			},
			{
				OrderNumber:       "234567",
				CustomerID:        "cust002",
				Status:            string(models.OrderProcessing),
				OrderDate:         date(2025, time.May, 19),
				EstimatedDelivery: datePtr(2025, time.May, 30),
				Items:             []string{"prod002", "prod005"},
				ShippingAddress:   "456 Oak Ave, Somewhere, USA",
			},
			{
				OrderNumber:       "345678",
				CustomerID:        "cust003",
				Status:            string(models.OrderDelivered),
				OrderDate:         date(2025, time.May, 1),
				EstimatedDelivery: datePtr(2025, time.May, 15),
				Items:             []string{"prod004", "prod006", "prod007"},
				ShippingAddress:   "789 Pine Blvd, Nowhere, USA",
				TrackingNumber:    "TRK123456789",
				DeliveredDate:     datePtr(2025, time.May, 14),
			},
			{
				OrderNumber:        "456789",
				CustomerID:         "cust001",
				Status:             string(models.OrderCancelled),
				OrderDate:          date(2025, time.April, 28),
				Items:              []string{"prod001", "prod008"},
				CancellationReason: "Customer request",
			},
			{
				OrderNumber:  "567890",
				CustomerID:   "cust004",
				Status:       string(models.OrderReturned),
				OrderDate:    date(2025, time.April, 15),
				Items:        []string{"prod003"},
				ReturnReason: "Wrong size",
				ReturnStatus: "refund processed",
			},
		},
		Customers: []models.Customer{
			{
				CustomerID: "cust001",
				Name:       "John Doe",
				Email:      "john.doe@example.com",
				Phone:      "555-123-4567",
				Address:    "123 Main St, Anytown, USA",
			},
			{
				CustomerID: "cust002",
				Name:       "Jane Smith",
				Email:      "jane.smith@example.com",
				Phone:      "555-234-5678",
				Address:    "456 Oak Ave, Somewhere, USA",
			},
			{
				CustomerID: "cust003",
				Name:       "Bob Johnson",
				Email:      "bob.johnson@example.com",
				Phone:      "555-345-6789",
				Address:    "789 Pine Blvd, Nowhere, USA",
			},
			{
				CustomerID: "cust004",
				Name:       "Alice Williams",
				Email:      "alice.williams@example.com",
				Phone:      "555-456-7890",
				Address:    "101 Elm St, Elsewhere, USA",
			},
		},
		Products: []models.Product{
			{
				ProductID:       "prod001",
				Name:            "Premium Wireless Headphones",
				Price:           129.99,
				Category:        "electronics",
				InStock:         true,
				Description:     "High-quality wireless headphones with noise cancellation",
				RelatedProducts: []string{"prod002", "prod008"},
			},
			{
				ProductID:       "prod002",
				Name:            "Bluetooth Speaker",
				Price:           79.99,
				Category:        "electronics",
				InStock:         true,
				Description:     "Portable wireless speaker with 20-hour battery life",
				RelatedProducts: []string{"prod001", "prod003"},
			},
			{
				ProductID:       "prod003",
				Name:            "Smart Watch",
				Price:           199.99,
				Category:        "electronics",
				InStock:         false,
				Description:     "Fitness tracker and smartwatch with heart rate monitoring",
				RelatedProducts: []string{"prod001", "prod007"},
			},
			{
				ProductID:       "prod004",
				Name:            "Cotton T-Shirt",
				Price:           24.99,
				Category:        "clothing",
				InStock:         true,
				Description:     "Comfortable 100% cotton t-shirt",
				AvailableSizes:  []string{"S", "M", "L", "XL"},
				RelatedProducts: []string{"prod005", "prod006"},
			},
			{
				ProductID:       "prod005",
				Name:            "Denim Jeans",
				Price:           59.99,
				Category:        "clothing",
				InStock:         true,
				Description:     "Classic fit denim jeans",
				AvailableSizes:  []string{"28", "30", "32", "34", "36"},
				RelatedProducts: []string{"prod004", "prod006"},
			},
			{
				ProductID:       "prod006",
				Name:            "Hooded Sweatshirt",
				Price:           49.99,
				Category:        "clothing",
				InStock:         true,
				Description:     "Warm hooded sweatshirt for cold weather",
				AvailableSizes:  []string{"S", "M", "L", "XL"},
				RelatedProducts: []string{"prod004", "prod005"},
			},
			{
				ProductID:       "prod007",
				Name:            "Fitness Tracker Band",
				Price:           89.99,
				Category:        "electronics",
				InStock:         true,
				Description:     "Waterproof fitness band with sleep tracking",
				RelatedProducts: []string{"prod003", "prod008"},
			},
			{
				ProductID:       "prod008",
				Name:            "Wireless Earbuds",
				Price:           99.99,
				Category:        "electronics",
				InStock:         true,
				Description:     "Compact wireless earbuds with charging case",
				RelatedProducts: []string{"prod001", "prod007"},
			},
		},
		ShippingOptions: []models.ShippingOption{
			{Key: "standard", Name: "Standard Shipping", Cost: 5.99, EstimatedDays: "5-7 business days"},
			{Key: "express", Name: "Express Shipping", Cost: 12.99, EstimatedDays: "2-3 business days"},
			{Key: "overnight", Name: "Overnight Shipping", Cost: 24.99, EstimatedDays: "1 business day"},
			{Key: "international", Name: "International Shipping", Cost: 29.99, EstimatedDays: "7-14 business days"},
		},
		FreeShippingThreshold: 75.00,
		ReturnPolicy: models.ReturnPolicy{
			General:       "We offer a 30-day return policy for most items in new and unused condition.",
			Electronics:   "Electronics can be returned within 15 days of delivery for a full refund.",
			Clothing:      "Clothing items can be returned within 45 days if unworn with tags attached.",
			ExcludedItems: []string{"Gift cards", "Downloadable software", "Personal hygiene products"},
			Process:       "To initiate a return, log into your account or contact customer support with your order number.",
			ShippingFee:   "Return shipping fees are covered by the customer unless the item arrived damaged or incorrect.",
		},
		FAQs: []models.FAQ{
			{
				Question: "How can I track my order?",
				Answer:   "You can track your order by entering your order number and email on our website's Order Tracking page, or by contacting customer service.",
			},
			{
				Question: "What payment methods do you accept?",
				Answer:   "We accept Visa, Mastercard, American Express, PayPal, and Apple Pay.",
			},
			{
				Question: "How do I change or cancel my order?",
				Answer:   "You can change or cancel your order within 1 hour of placing it by contacting our customer service team. After this window, we may not be able to modify orders that are being processed.",
			},
			{
				Question: "Do you ship internationally?",
				Answer:   "Yes, we ship to most countries worldwide. International shipping rates and delivery times vary by location.",
			},
			{
				Question: "How do I request a refund?",
				Answer:   "To request a refund, contact our customer service with your order number. Refunds are typically processed within 3-5 business days after the returned item is received.",
			},
		},
	}
}
