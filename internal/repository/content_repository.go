package repository

import (
	"errors"
	"fmt"

	"commerce_chatbot/internal/models"

	"gorm.io/gorm"
)

// ContentRepository serves the store content that is not keyed per customer:
// shipping options, the return policy and the FAQ list.
type ContentRepository interface {
	GetShippingOptions() ([]models.ShippingOption, error)
	GetShippingOption(key string) (*models.ShippingOption, error)
	GetFreeShippingThreshold() (float64, error)
	GetReturnPolicy() (*models.ReturnPolicy, error)
	GetFAQs() ([]models.FAQ, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) GetShippingOptions() ([]models.ShippingOption, error) {
	var options []models.ShippingOption
	err := r.db.Order("id").Find(&options).Error
	return options, err
}

func (r *contentRepository) GetShippingOption(key string) (*models.ShippingOption, error) {
	var option models.ShippingOption
	err := r.db.Where("option_key = ?", key).First(&option).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *contentRepository) GetFreeShippingThreshold() (float64, error) {
	var setting models.StoreSetting
	err := r.db.Where("setting_name = ?", models.SettingFreeShippingThreshold).First(&setting).Error
	if err != nil {
		return 0, fmt.Errorf("failed to get free shipping threshold: %w", err)
	}
	return setting.Value, nil
}

func (r *contentRepository) GetReturnPolicy() (*models.ReturnPolicy, error) {
	var policy models.ReturnPolicy
	if err := r.db.First(&policy).Error; err != nil {
		return nil, fmt.Errorf("failed to get return policy: %w", err)
	}
	return &policy, nil
}

func (r *contentRepository) GetFAQs() ([]models.FAQ, error) {
	var faqs []models.FAQ
	err := r.db.Order("id").Find(&faqs).Error
	return faqs, err
}
