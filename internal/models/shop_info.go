package models

import "time"

// Singleton: sempre a linha de ID 1.
type ShopInfo struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	LogoURL string `gorm:"size:255" json:"logo_url"`

	UpdatedAt time.Time `json:"updated_at"`
}
