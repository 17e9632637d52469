package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/barbertime/barbertime-api/internal/audit"
	"github.com/barbertime/barbertime-api/internal/httperr"
	"github.com/barbertime/barbertime-api/internal/models"
)

// ======================================================
// USE CASE — Catalog admin (CRUD + cascade)
// ======================================================

type Admin struct {
	repo    Repository
	refresh Refresher
	audit   *audit.Dispatcher
}

func NewAdmin(repo Repository, refresh Refresher, auditDispatcher *audit.Dispatcher) *Admin {
	return &Admin{
		repo:    repo,
		refresh: refresh,
		audit:   auditDispatcher,
	}
}

// --------------------------------------------------
// Inputs (patch parcial, ponteiro = campo presente)
// --------------------------------------------------

type CreateServiceInput struct {
	Name        string
	Description string
	Price       float64
	DurationMin int
	Category    string
}

type UpdateServiceInput struct {
	Name        *string
	Description *string
	Price       *float64
	DurationMin *int
	Category    *string
	Active      *bool
}

type CreateBarberInput struct {
	Name      string
	AvatarURL string
}

type UpdateBarberInput struct {
	Name      *string
	AvatarURL *string
	Active    *bool
}

type UpdateShopInfoInput struct {
	Name    *string
	LogoURL *string
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (a *Admin) CreateService(ctx context.Context, adminEmail string, in CreateServiceInput) (*models.Service, error) {
	if in.Price < 0 {
		return nil, httperr.ErrBusiness("invalid_price")
	}
	if in.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	svc := &models.Service{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		DurationMin: in.DurationMin,
		Category:    in.Category,
		Active:      true,
	}

	if err := a.repo.CreateService(ctx, svc); err != nil {
		return nil, err
	}

	a.refresh.RefreshCatalog(ctx)
	a.audit.Dispatch(audit.Event{
		AdminEmail: adminEmail,
		Action:     "service_created",
		Entity:     "service",
		EntityID:   svc.ID,
	})
	return svc, nil
}

// UpdateService aplica o patch e o repositório propaga os novos valores
// para os snapshots dos agendamentos que referenciam o serviço.
func (a *Admin) UpdateService(ctx context.Context, adminEmail, id string, in UpdateServiceInput) (*models.Service, error) {
	svc, err := a.repo.GetServiceAny(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if in.Name != nil {
		svc.Name = *in.Name
	}
	if in.Description != nil {
		svc.Description = *in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, httperr.ErrBusiness("invalid_price")
		}
		svc.Price = *in.Price
	}
	if in.DurationMin != nil {
		if *in.DurationMin <= 0 {
			return nil, httperr.ErrBusiness("invalid_duration")
		}
		svc.DurationMin = *in.DurationMin
	}
	if in.Category != nil {
		svc.Category = *in.Category
	}
	if in.Active != nil {
		svc.Active = *in.Active
	}

	if err := a.repo.UpdateService(ctx, svc); err != nil {
		return nil, err
	}

	a.refresh.RefreshCatalog(ctx)
	a.audit.Dispatch(audit.Event{
		AdminEmail: adminEmail,
		Action:     "service_updated",
		Entity:     "service",
		EntityID:   svc.ID,
	})
	return svc, nil
}

// DeleteService remove só o registro do catálogo; agendamentos que o
// referenciam permanecem com o snapshot gravado.
func (a *Admin) DeleteService(ctx context.Context, adminEmail, id string) error {
	if _, err := a.repo.GetServiceAny(ctx, id); err != nil {
		return httperr.ErrBusiness("service_not_found")
	}

	if err := a.repo.DeleteService(ctx, id); err != nil {
		return err
	}

	a.refresh.RefreshCatalog(ctx)
	a.audit.Dispatch(audit.Event{
		AdminEmail: adminEmail,
		Action:     "service_deleted",
		Entity:     "service",
		EntityID:   id,
	})
	return nil
}

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (a *Admin) CreateBarber(ctx context.Context, adminEmail string, in CreateBarberInput) (*models.Barber, error) {
	barber := &models.Barber{
		ID:        uuid.NewString(),
		Name:      in.Name,
		AvatarURL: in.AvatarURL,
		Active:    true,
	}

	if err := a.repo.CreateBarber(ctx, barber); err != nil {
		return nil, err
	}

	a.refresh.RefreshCatalog(ctx)
	a.audit.Dispatch(audit.Event{
		AdminEmail: adminEmail,
		Action:     "barber_created",
		Entity:     "barber",
		EntityID:   barber.ID,
	})
	return barber, nil
}

func (a *Admin) UpdateBarber(ctx context.Context, adminEmail, id string, in UpdateBarberInput) (*models.Barber, error) {
	barber, err := a.repo.GetBarberAny(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	if in.Name != nil {
		barber.Name = *in.Name
	}
	if in.AvatarURL != nil {
		barber.AvatarURL = *in.AvatarURL
	}
	if in.Active != nil {
		barber.Active = *in.Active
	}

	if err := a.repo.UpdateBarber(ctx, barber); err != nil {
		return nil, err
	}

	a.refresh.RefreshCatalog(ctx)
	a.audit.Dispatch(audit.Event{
		AdminEmail: adminEmail,
		Action:     "barber_updated",
		Entity:     "barber",
		EntityID:   barber.ID,
	})
	return barber, nil
}

func (a *Admin) DeleteBarber(ctx context.Context, adminEmail, id string) error {
	if _, err := a.repo.GetBarberAny(ctx, id); err != nil {
		return httperr.ErrBusiness("barber_not_found")
	}

	if err := a.repo.DeleteBarber(ctx, id); err != nil {
		return err
	}

	a.refresh.RefreshCatalog(ctx)
	a.audit.Dispatch(audit.Event{
		AdminEmail: adminEmail,
		Action:     "barber_deleted",
		Entity:     "barber",
		EntityID:   id,
	})
	return nil
}

// --------------------------------------------------
// Shop info
// --------------------------------------------------

func (a *Admin) UpdateShopInfo(ctx context.Context, adminEmail string, current models.ShopInfo, in UpdateShopInfoInput) (*models.ShopInfo, error) {
	if in.Name != nil {
		if *in.Name == "" {
			return nil, httperr.ErrBusiness("invalid_shop_name")
		}
		current.Name = *in.Name
	}
	if in.LogoURL != nil {
		current.LogoURL = *in.LogoURL
	}

	if err := a.repo.UpdateShopInfo(ctx, &current); err != nil {
		return nil, err
	}

	a.refresh.RefreshCatalog(ctx)
	a.audit.Dispatch(audit.Event{
		AdminEmail: adminEmail,
		Action:     "shop_info_updated",
		Entity:     "shop_info",
	})
	return &current, nil
}
