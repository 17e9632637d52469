package store

import (
	"context"
	"time"

	"github.com/barbertime/barbertime-api/internal/models"
)

// Remote é o lado primário (Postgres) do armazenamento em duas camadas.
type Remote interface {
	ListServices(ctx context.Context, onlyActive bool) ([]models.Service, error)
	ListBarbers(ctx context.Context, onlyActive bool) ([]models.Barber, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	GetBarber(ctx context.Context, id string) (*models.Barber, error)
	GetShopInfo(ctx context.Context) (*models.ShopInfo, error)

	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	ListAppointmentsBetween(ctx context.Context, start, end time.Time) ([]models.Appointment, error)
}
