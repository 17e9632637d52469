package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/barbertime/barbertime-api/internal/infra/store"
	"github.com/barbertime/barbertime-api/internal/models"
)

// Leituras e escrita de agendamento usadas pelo fluxo público de reserva.
type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Catalog (reads)
// --------------------------------------------------

func (r *BookingGormRepository) ListServices(ctx context.Context, onlyActive bool) ([]models.Service, error) {
	q := r.db.WithContext(ctx)
	if onlyActive {
		q = q.Where("active = ?", true)
	}

	var services []models.Service
	if err := q.
		Order("category ASC").
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) ListBarbers(ctx context.Context, onlyActive bool) ([]models.Barber, error) {
	q := r.db.WithContext(ctx)
	if onlyActive {
		q = q.Where("active = ?", true)
	}

	var barbers []models.Barber
	if err := q.
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *BookingGormRepository) GetService(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) GetBarber(ctx context.Context, id string) (*models.Barber, error) {
	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

// --------------------------------------------------
// Shop info
// --------------------------------------------------

func (r *BookingGormRepository) GetShopInfo(ctx context.Context) (*models.ShopInfo, error) {
	var info models.ShopInfo
	if err := r.db.WithContext(ctx).First(&info, 1).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Order("time_slot ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *BookingGormRepository) ListAppointmentsBetween(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end).
		Order("date ASC").
		Order("time_slot ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ store.Remote = (*BookingGormRepository)(nil)
