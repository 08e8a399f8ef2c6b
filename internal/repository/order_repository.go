package repository

import (
	"errors"

	"commerce_chatbot/internal/models"

	"gorm.io/gorm"
)

// Not-found is data, not an error: lookups return (nil, nil) or an empty
// slice when nothing matches.
type OrderRepository interface {
	GetByNumber(orderNumber string) (*models.Order, error)
	GetByCustomerID(customerID string) ([]models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) GetByNumber(orderNumber string) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("order_number = ?", orderNumber).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByCustomerID(customerID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("customer_id = ?", customerID).Order("order_number").Find(&orders).Error
	return orders, err
}
