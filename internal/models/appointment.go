package models

import "time"

// Snapshot do serviço no momento da reserva. Cópia própria, não é join:
// edições no catálogo são propagadas explicitamente (cascade), exclusões não.
type ServiceSnapshot struct {
	Name        string  `gorm:"size:100" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
}

type BarberSnapshot struct {
	Name      string `gorm:"size:100" json:"name"`
	AvatarURL string `gorm:"size:255" json:"avatar_url"`
}

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`

	BarberID  string `gorm:"size:36;index" json:"barber_id"`
	ServiceID string `gorm:"size:36;index" json:"service_id"`

	Service ServiceSnapshot `gorm:"embedded;embeddedPrefix:service_" json:"service"`
	Barber  BarberSnapshot  `gorm:"embedded;embeddedPrefix:barber_" json:"barber"`

	// Date é o dia (meia-noite local); TimeSlot é o rótulo fixo "HH:MM".
	Date     time.Time `gorm:"index" json:"date"`
	TimeSlot string    `gorm:"size:5" json:"time_slot"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	// synced | local_only | conflict_unresolved
	SyncStatus string `gorm:"size:20;default:'synced'" json:"sync_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
