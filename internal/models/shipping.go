package models

type ShippingOption struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	Key           string  `json:"key" gorm:"column:option_key;unique;not null"` // standard, express, overnight, international
	Name          string  `json:"name" gorm:"not null"`
	Cost          float64 `json:"cost" gorm:"not null"`
	EstimatedDays string  `json:"estimated_days"`
}

// StoreSetting holds scalar store-wide values such as the free shipping
// threshold, so the postgres backend has somewhere to keep them.
type StoreSetting struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	SettingName string  `json:"setting_name" gorm:"unique;not null"`
	Value       float64 `json:"value"`
}

const SettingFreeShippingThreshold = "free_shipping_threshold"
