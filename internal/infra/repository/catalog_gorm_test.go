package repository

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/barbertime/barbertime-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.ShopInfo{},
		&models.Service{},
		&models.Barber{},
		&models.Appointment{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedAppointment(t *testing.T, db *gorm.DB, serviceID, barberID string) models.Appointment {
	t.Helper()

	ap := models.Appointment{
		ID:          "ap-1",
		ClientName:  "João Silva",
		ClientPhone: "11987654321",
		ServiceID:   serviceID,
		BarberID:    barberID,
		Service: models.ServiceSnapshot{
			Name: "Corte Clássico", Description: "old", Price: 45, DurationMin: 45,
		},
		Barber: models.BarberSnapshot{
			Name: "Carlos Mendes", AvatarURL: "old.webp",
		},
		Date:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot: "09:00",
		Status:   "scheduled",
	}
	if err := db.Create(&ap).Error; err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	return ap
}

// Editar o serviço reescreve o snapshot de todos os agendamentos que o
// referenciam, na mesma transação.
func TestUpdateServiceCascadesIntoSnapshots(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogGormRepository(db)
	ctx := context.Background()

	svc := &models.Service{ID: "svc-1", Name: "Corte Clássico", Description: "old", Price: 45, DurationMin: 45, Active: true}
	if err := repo.CreateService(ctx, svc); err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	seedAppointment(t, db, svc.ID, "brb-1")

	svc.Name = "Corte Premium"
	svc.Price = 60
	if err := repo.UpdateService(ctx, svc); err != nil {
		t.Fatalf("UpdateService: %v", err)
	}

	var ap models.Appointment
	if err := db.First(&ap, "id = ?", "ap-1").Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if ap.Service.Name != "Corte Premium" || ap.Service.Price != 60 {
		t.Fatalf("snapshot not cascaded: %+v", ap.Service)
	}
	if ap.Service.DurationMin != 45 {
		t.Fatalf("untouched snapshot field changed: %+v", ap.Service)
	}
}

func TestUpdateBarberCascadesIntoSnapshots(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogGormRepository(db)
	ctx := context.Background()

	barber := &models.Barber{ID: "brb-1", Name: "Carlos Mendes", AvatarURL: "old.webp", Active: true}
	if err := repo.CreateBarber(ctx, barber); err != nil {
		t.Fatalf("CreateBarber: %v", err)
	}
	seedAppointment(t, db, "svc-1", barber.ID)

	barber.Name = "Carlos M. Silva"
	barber.AvatarURL = "new.webp"
	if err := repo.UpdateBarber(ctx, barber); err != nil {
		t.Fatalf("UpdateBarber: %v", err)
	}

	var ap models.Appointment
	if err := db.First(&ap, "id = ?", "ap-1").Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if ap.Barber.Name != "Carlos M. Silva" || ap.Barber.AvatarURL != "new.webp" {
		t.Fatalf("snapshot not cascaded: %+v", ap.Barber)
	}
}

// Excluir não toca nos snapshots: o histórico continua legível mesmo sem o
// registro de catálogo por trás.
func TestDeleteServiceKeepsSnapshots(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogGormRepository(db)
	ctx := context.Background()

	svc := &models.Service{ID: "svc-1", Name: "Corte Clássico", Price: 45, DurationMin: 45, Active: true}
	if err := repo.CreateService(ctx, svc); err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	seedAppointment(t, db, svc.ID, "brb-1")

	if err := repo.DeleteService(ctx, svc.ID); err != nil {
		t.Fatalf("DeleteService: %v", err)
	}

	if _, err := repo.GetServiceAny(ctx, svc.ID); err == nil {
		t.Fatal("service should be gone")
	}

	var ap models.Appointment
	if err := db.First(&ap, "id = ?", "ap-1").Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if ap.Service.Name != "Corte Clássico" || ap.Service.Price != 45 {
		t.Fatalf("snapshot should survive the delete: %+v", ap.Service)
	}
}

func TestUpdateShopInfoForcesSingleton(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogGormRepository(db)
	ctx := context.Background()

	info := &models.ShopInfo{ID: 7, Name: "BarberTime+"}
	if err := repo.UpdateShopInfo(ctx, info); err != nil {
		t.Fatalf("UpdateShopInfo: %v", err)
	}
	if info.ID != 1 {
		t.Fatalf("id = %d, want 1", info.ID)
	}

	var count int64
	db.Model(&models.ShopInfo{}).Count(&count)
	if count != 1 {
		t.Fatalf("rows = %d, want 1", count)
	}
}
