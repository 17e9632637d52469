package schedule

import (
	"time"

	domain "github.com/barbertime/barbertime-api/internal/domain/appointment"
	"github.com/barbertime/barbertime-api/internal/models"
)

// Grade fixa de horários: blocos de manhã e tarde com intervalo de almoço.
// É configuração, não cálculo.
var TimeSlots = []string{
	"09:00", "09:45", "10:30", "11:15",
	"13:00", "13:45", "14:30", "15:15",
	"16:00", "16:45", "17:30", "18:15",
}

func IsValidSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// DayOf normaliza para a meia-noite local; comparações de agenda são
// sempre na granularidade do dia.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SlotTaken diz se o horário já está ocupado para o barbeiro no dia.
// Sem barbeiro escolhido todo horário é indisponível (guarda, não resposta).
func SlotTaken(appointments []models.Appointment, barberID string, day time.Time, slot string) bool {
	if barberID == "" {
		return true
	}

	for _, ap := range appointments {
		if ap.BarberID != barberID {
			continue
		}
		if !domain.Occupies(domain.Status(ap.Status)) {
			continue
		}
		if SameDay(ap.Date, day) && ap.TimeSlot == slot {
			return true
		}
	}
	return false
}

type SlotAvailability struct {
	Slot      string `json:"slot"`
	Available bool   `json:"available"`
}

// Availability avalia a grade inteira para o par barbeiro/dia.
func Availability(appointments []models.Appointment, barberID string, day time.Time) []SlotAvailability {
	out := make([]SlotAvailability, 0, len(TimeSlots))
	for _, slot := range TimeSlots {
		out = append(out, SlotAvailability{
			Slot:      slot,
			Available: !SlotTaken(appointments, barberID, day, slot),
		})
	}
	return out
}
