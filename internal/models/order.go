package models

import (
	"time"
)

type Order struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`
	OrderNumber        string     `json:"order_number" gorm:"unique;not null"`
	CustomerID         string     `json:"customer_id" gorm:"not null;index"`
	Status             string     `json:"status" gorm:"not null"` // processing, shipped, delivered, cancelled, returned
	OrderDate          time.Time  `json:"order_date" gorm:"not null"`
	EstimatedDelivery  *time.Time `json:"estimated_delivery"`
	Items              []string   `json:"items" gorm:"serializer:json"`
	ShippingAddress    string     `json:"shipping_address"`
	TrackingNumber     string     `json:"tracking_number"` // empty until the order ships
	DeliveredDate      *time.Time `json:"delivered_date"`
	CancellationReason string     `json:"cancellation_reason"`
	ReturnReason       string     `json:"return_reason"`
	ReturnStatus       string     `json:"return_status"`
}

type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderReturned   OrderStatus = "returned"
)
