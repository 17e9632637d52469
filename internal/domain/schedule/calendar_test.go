package schedule

import (
	"testing"
	"time"

	"github.com/barbertime/barbertime-api/internal/models"
)

func TestAppointmentsOnSortsBySlot(t *testing.T) {
	d := day(2024, 6, 10)
	appointments := []models.Appointment{
		taken("brb-1", d, "16:45", "scheduled"),
		taken("brb-2", d, "09:00", "scheduled"),
		taken("brb-1", day(2024, 6, 11), "09:45", "scheduled"),
		taken("brb-1", d, "13:00", "cancelled"),
	}

	got := AppointmentsOn(appointments, d)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	// Dia detalhado mostra tudo, cancelados incluídos; só a ordem importa.
	want := []string{"09:00", "13:00", "16:45"}
	for i, slot := range want {
		if got[i].TimeSlot != slot {
			t.Errorf("position %d: slot = %s, want %s", i, got[i].TimeSlot, slot)
		}
	}
}

func TestMonthBuckets(t *testing.T) {
	appointments := []models.Appointment{
		taken("brb-1", day(2024, 6, 10), "09:00", "scheduled"),
		taken("brb-2", day(2024, 6, 10), "09:45", "scheduled"),
		taken("brb-1", day(2024, 6, 21), "13:00", "scheduled"),
		taken("brb-1", day(2024, 7, 1), "09:00", "scheduled"),
	}

	buckets := MonthBuckets(appointments, 2024, time.June)
	if len(buckets) != 2 {
		t.Fatalf("buckets = %v", buckets)
	}
	if buckets[10] != 2 || buckets[21] != 1 {
		t.Fatalf("buckets = %v", buckets)
	}
}

func TestLeadingBlanks(t *testing.T) {
	// Junho/2024 abre num sábado: seis células vazias antes do dia 1.
	if got := LeadingBlanks(2024, time.June, time.UTC); got != 6 {
		t.Fatalf("June 2024 = %d, want 6", got)
	}
	// Setembro/2024 abre num domingo: grade sem deslocamento.
	if got := LeadingBlanks(2024, time.September, time.UTC); got != 0 {
		t.Fatalf("September 2024 = %d, want 0", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2024, time.February, time.UTC); got != 29 {
		t.Fatalf("February 2024 = %d, want 29", got)
	}
	if got := DaysInMonth(2025, time.February, time.UTC); got != 28 {
		t.Fatalf("February 2025 = %d, want 28", got)
	}
	if got := DaysInMonth(2024, time.June, time.UTC); got != 30 {
		t.Fatalf("June 2024 = %d, want 30", got)
	}
}
