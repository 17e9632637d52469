package models

import "time"

type Service struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`

	Category string `gorm:"size:50" json:"category"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
