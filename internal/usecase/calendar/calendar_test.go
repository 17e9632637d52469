package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/barbertime/barbertime-api/internal/models"
)

type fakeStore struct {
	appointments []models.Appointment
	fromMirror   bool
}

func (f *fakeStore) Appointments(context.Context) ([]models.Appointment, bool) {
	return f.appointments, f.fromMirror
}

func (f *fakeStore) AppointmentsBetween(_ context.Context, start, end time.Time) ([]models.Appointment, bool) {
	out := make([]models.Appointment, 0)
	for _, ap := range f.appointments {
		if !ap.Date.Before(start) && ap.Date.Before(end) {
			out = append(out, ap)
		}
	}
	return out, f.fromMirror
}

var _ Store = (*fakeStore)(nil)

func ap(id string, d time.Time, slot string) models.Appointment {
	return models.Appointment{
		ID:         id,
		ClientName: "João Silva",
		Date:       d,
		TimeSlot:   slot,
		Status:     "scheduled",
		Service:    models.ServiceSnapshot{Name: "Corte", Price: 45},
		Barber:     models.BarberSnapshot{Name: "Carlos"},
	}
}

func TestDayDetailOrdered(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	store := &fakeStore{appointments: []models.Appointment{
		ap("ap-2", day, "16:45"),
		ap("ap-1", day, "09:00"),
		ap("ap-3", day.AddDate(0, 0, 1), "09:45"),
	}}

	cal := New(store, time.UTC)

	detail, fallback := cal.DayDetail(context.Background(), day)
	if fallback {
		t.Fatal("fallback should be false")
	}
	if len(detail) != 2 {
		t.Fatalf("len = %d", len(detail))
	}
	if detail[0].TimeSlot != "09:00" || detail[1].TimeSlot != "16:45" {
		t.Fatalf("order = %s, %s", detail[0].TimeSlot, detail[1].TimeSlot)
	}
	if detail[0].ServiceName != "Corte" || detail[0].BarberName != "Carlos" {
		t.Fatalf("dto = %+v", detail[0])
	}
}

func TestMonthSummary(t *testing.T) {
	store := &fakeStore{appointments: []models.Appointment{
		ap("ap-1", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "09:00"),
		ap("ap-2", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "09:45"),
		ap("ap-3", time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), "13:00"),
		ap("ap-4", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), "09:00"),
	}}

	cal := New(store, time.UTC)

	summary := cal.MonthSummary(context.Background(), 2024, time.June)
	if summary.Year != 2024 || summary.Month != 6 {
		t.Fatalf("summary = %+v", summary)
	}
	if summary.LeadingBlanks != 6 || summary.DaysInMonth != 30 {
		t.Fatalf("grid = %d blanks, %d days", summary.LeadingBlanks, summary.DaysInMonth)
	}
	if summary.Buckets[10] != 2 || summary.Buckets[21] != 1 {
		t.Fatalf("buckets = %v", summary.Buckets)
	}
	if _, ok := summary.Buckets[1]; ok {
		t.Fatal("July appointment leaked into June buckets")
	}
}

func TestMonthSummaryFallbackFlag(t *testing.T) {
	store := &fakeStore{fromMirror: true}
	cal := New(store, time.UTC)

	summary := cal.MonthSummary(context.Background(), 2024, time.June)
	if !summary.Fallback {
		t.Fatal("fallback flag should propagate")
	}
}
