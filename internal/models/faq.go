package models

type FAQ struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Question string `json:"question" gorm:"not null"`
	Answer   string `json:"answer" gorm:"not null"`
}
