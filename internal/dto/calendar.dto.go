package dto

import "time"

type DayAppointmentDTO struct {
	ID          string  `json:"id"`
	TimeSlot    string  `json:"time_slot"`
	ClientName  string  `json:"client_name"`
	ClientPhone string  `json:"client_phone"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
	BarberName  string  `json:"barber_name"`
	Status      string  `json:"status"`
	SyncStatus  string  `json:"sync_status"`
}

type MonthSummaryDTO struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	// Células vazias antes do dia 1 na grade que começa no domingo.
	LeadingBlanks int `json:"leading_blanks"`
	DaysInMonth   int `json:"days_in_month"`

	// Contagem de agendamentos por dia do mês.
	Buckets map[int]int `json:"buckets"`

	Fallback bool `json:"fallback,omitempty"`
}

type SelectableDayDTO struct {
	Date    string       `json:"date"`
	Weekday time.Weekday `json:"weekday"`
}
