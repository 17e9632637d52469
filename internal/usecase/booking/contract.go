package booking

import (
	"context"

	"github.com/barbertime/barbertime-api/internal/models"
)

// Store é o armazenamento em duas camadas visto pelo wizard.
type Store interface {
	GetService(ctx context.Context, id string) (*models.Service, error)
	GetBarber(ctx context.Context, id string) (*models.Barber, error)
	Appointments(ctx context.Context) ([]models.Appointment, bool)
	SaveAppointment(ctx context.Context, ap *models.Appointment)
}
