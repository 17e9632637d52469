package schedule

import (
	"sort"
	"time"

	"github.com/barbertime/barbertime-api/internal/models"
)

// AppointmentsOn filtra os agendamentos do dia, ordenados pelo horário.
// Ordenação lexical basta: os rótulos são "HH:MM" com zero à esquerda.
func AppointmentsOn(appointments []models.Appointment, day time.Time) []models.Appointment {
	out := make([]models.Appointment, 0)
	for _, ap := range appointments {
		if SameDay(ap.Date, day) {
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TimeSlot < out[j].TimeSlot
	})
	return out
}

// MonthBuckets conta agendamentos por dia do mês, para o selo do calendário.
func MonthBuckets(appointments []models.Appointment, year int, month time.Month) map[int]int {
	buckets := make(map[int]int)
	for _, ap := range appointments {
		if ap.Date.Year() == year && ap.Date.Month() == month {
			buckets[ap.Date.Day()]++
		}
	}
	return buckets
}

// LeadingBlanks é o número de células vazias antes do dia 1 na grade que
// começa no domingo (0 = o mês abre no primeiro dia da semana).
func LeadingBlanks(year int, month time.Month, loc *time.Location) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return int(first.Weekday())
}

func DaysInMonth(year int, month time.Month, loc *time.Location) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return first.AddDate(0, 1, -1).Day()
}
