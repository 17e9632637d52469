package catalog

import (
	"context"

	"github.com/barbertime/barbertime-api/internal/models"
)

type Repository interface {
	CreateService(ctx context.Context, svc *models.Service) error
	GetServiceAny(ctx context.Context, id string) (*models.Service, error)
	UpdateService(ctx context.Context, svc *models.Service) error
	DeleteService(ctx context.Context, id string) error

	CreateBarber(ctx context.Context, barber *models.Barber) error
	GetBarberAny(ctx context.Context, id string) (*models.Barber, error)
	UpdateBarber(ctx context.Context, barber *models.Barber) error
	DeleteBarber(ctx context.Context, id string) error

	UpdateShopInfo(ctx context.Context, info *models.ShopInfo) error
}

// Refresher reserializa o espelho local após escritas admin.
type Refresher interface {
	RefreshCatalog(ctx context.Context)
}
