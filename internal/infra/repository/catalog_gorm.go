package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/barbertime/barbertime-api/internal/models"
)

// Escritas de catálogo do painel admin. Edições propagam para os snapshots
// embutidos nos agendamentos; exclusões não tocam neles.
type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *CatalogGormRepository) CreateService(ctx context.Context, svc *models.Service) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *CatalogGormRepository) GetServiceAny(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// UpdateService grava o registro do catálogo e reescreve, na mesma
// transação, o snapshot de todo agendamento que referencia o serviço.
func (r *CatalogGormRepository) UpdateService(ctx context.Context, svc *models.Service) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(svc).Error; err != nil {
			return err
		}
		return tx.Model(&models.Appointment{}).
			Where("service_id = ?", svc.ID).
			Updates(map[string]any{
				"service_name":         svc.Name,
				"service_description":  svc.Description,
				"service_price":        svc.Price,
				"service_duration_min": svc.DurationMin,
			}).Error
	})
}

// DeleteService remove só o registro do catálogo. Agendamentos históricos
// ficam com o snapshot intacto (lacuna documentada, não corrigir).
func (r *CatalogGormRepository) DeleteService(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Service{}, "id = ?", id).Error
}

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (r *CatalogGormRepository) CreateBarber(ctx context.Context, barber *models.Barber) error {
	return r.db.WithContext(ctx).Create(barber).Error
}

func (r *CatalogGormRepository) GetBarberAny(ctx context.Context, id string) (*models.Barber, error) {
	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *CatalogGormRepository) UpdateBarber(ctx context.Context, barber *models.Barber) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(barber).Error; err != nil {
			return err
		}
		return tx.Model(&models.Appointment{}).
			Where("barber_id = ?", barber.ID).
			Updates(map[string]any{
				"barber_name":       barber.Name,
				"barber_avatar_url": barber.AvatarURL,
			}).Error
	})
}

func (r *CatalogGormRepository) DeleteBarber(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Barber{}, "id = ?", id).Error
}

// --------------------------------------------------
// Shop info
// --------------------------------------------------

func (r *CatalogGormRepository) UpdateShopInfo(ctx context.Context, info *models.ShopInfo) error {
	info.ID = 1
	return r.db.WithContext(ctx).Save(info).Error
}
