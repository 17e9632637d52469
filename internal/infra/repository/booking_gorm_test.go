package repository

import (
	"context"
	"testing"
	"time"

	"github.com/barbertime/barbertime-api/internal/models"
)

func TestListServicesActiveFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	db.Create(&models.Service{ID: "svc-1", Name: "Corte", Category: "corte", Active: true})
	db.Create(&models.Service{ID: "svc-2", Name: "Barba", Category: "barba", Active: false})

	active, err := repo.ListServices(ctx, true)
	if err != nil {
		t.Fatalf("ListServices: %v", err)
	}
	if len(active) != 1 || active[0].ID != "svc-1" {
		t.Fatalf("active = %+v", active)
	}

	all, err := repo.ListServices(ctx, false)
	if err != nil {
		t.Fatalf("ListServices all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all = %+v", all)
	}
}

// A vitrine só resolve serviços e barbeiros ativos; inativos somem do
// wizard mas continuam no banco.
func TestGetActiveOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	db.Create(&models.Barber{ID: "brb-1", Name: "Carlos", Active: false})

	if _, err := repo.GetBarber(ctx, "brb-1"); err == nil {
		t.Fatal("inactive barber should not resolve")
	}

	var stored models.Barber
	if err := db.First(&stored, "id = ?", "brb-1").Error; err != nil {
		t.Fatalf("barber should still be stored: %v", err)
	}
}

func TestListAppointmentsOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	seedAppointment(t, db, "svc-1", "brb-1")

	ap2 := models.Appointment{
		ID: "ap-2", ClientName: "Ana", ClientPhone: "11912345678",
		ServiceID: "svc-1", BarberID: "brb-1",
		Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), TimeSlot: "13:00", Status: "scheduled",
	}
	if err := repo.CreateAppointment(ctx, &ap2); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	apps, err := repo.ListAppointments(ctx)
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if len(apps) != 2 || apps[0].TimeSlot != "09:00" || apps[1].TimeSlot != "13:00" {
		t.Fatalf("apps = %+v", apps)
	}
}
