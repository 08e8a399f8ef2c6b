package models

type Customer struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	CustomerID string `json:"customer_id" gorm:"unique;not null"`
	Name       string `json:"name" gorm:"not null"`
	Email      string `json:"email" gorm:"unique;not null"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}
