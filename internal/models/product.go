package models

type Product struct {
	ID              uint     `json:"id" gorm:"primaryKey"`
	ProductID       string   `json:"product_id" gorm:"unique;not null"`
	Name            string   `json:"name" gorm:"not null"`
	Price           float64  `json:"price" gorm:"not null"`
	Category        string   `json:"category" gorm:"index"`
	InStock         bool     `json:"in_stock"`
	Description     string   `json:"description"`
	AvailableSizes  []string `json:"available_sizes" gorm:"serializer:json"`
	RelatedProducts []string `json:"related_products" gorm:"serializer:json"`
}
