package models

import "time"

type Barber struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	AvatarURL string `gorm:"size:255" json:"avatar_url"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
