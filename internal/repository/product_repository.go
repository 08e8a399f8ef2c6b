package repository

import (
	"errors"

	"commerce_chatbot/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	GetByID(productID string) (*models.Product, error)
	// GetByIDs resolves ids in order, skipping unknown ones.
	GetByIDs(productIDs []string) ([]models.Product, error)
	GetAll() ([]models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetByID(productID string) (*models.Product, error) {
	var product models.Product
	err := r.db.Where("product_id = ?", productID).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByIDs(productIDs []string) ([]models.Product, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	var products []models.Product
	if err := r.db.Where("product_id IN ?", productIDs).Find(&products).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}

	ordered := make([]models.Product, 0, len(productIDs))
	for _, id := range productIDs {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

func (r *productRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Order("product_id").Find(&products).Error
	return products, err
}
