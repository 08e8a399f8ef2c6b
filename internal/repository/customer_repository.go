package repository

import (
	"errors"

	"commerce_chatbot/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	GetByID(customerID string) (*models.Customer, error)
	// GetByEmail matches case-insensitively.
	GetByEmail(email string) (*models.Customer, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) GetByID(customerID string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("customer_id = ?", customerID).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("LOWER(email) = LOWER(?)", email).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
