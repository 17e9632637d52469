package store

import (
	"context"
	"log"
	"time"

	domain "github.com/barbertime/barbertime-api/internal/domain/appointment"
	"github.com/barbertime/barbertime-api/internal/mirror"
	"github.com/barbertime/barbertime-api/internal/models"
)

// TwoTier lê primeiro do remoto e cai no espelho local quando ele falha.
// Escritas são melhor-esforço no remoto: a reserva é registrada localmente
// mesmo com o banco fora, com o estado de sincronia explícito no registro.
type TwoTier struct {
	remote Remote
	mirror *mirror.Mirror
}

func NewTwoTier(remote Remote, m *mirror.Mirror) *TwoTier {
	return &TwoTier{remote: remote, mirror: m}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

// Services devolve o catálogo e informa se veio do fallback.
func (s *TwoTier) Services(ctx context.Context) ([]models.Service, bool) {
	services, err := s.remote.ListServices(ctx, true)
	if err != nil || len(services) == 0 {
		if err != nil {
			log.Printf("store: remote services unavailable, using mirror: %v", err)
		}
		return s.mirror.LoadServices(ctx), true
	}

	if mErr := s.mirror.SaveServices(ctx, services); mErr != nil {
		log.Printf("store: mirror refresh (services) failed: %v", mErr)
	}
	return services, false
}

func (s *TwoTier) Barbers(ctx context.Context) ([]models.Barber, bool) {
	barbers, err := s.remote.ListBarbers(ctx, true)
	if err != nil || len(barbers) == 0 {
		if err != nil {
			log.Printf("store: remote barbers unavailable, using mirror: %v", err)
		}
		return s.mirror.LoadBarbers(ctx), true
	}

	if mErr := s.mirror.SaveBarbers(ctx, barbers); mErr != nil {
		log.Printf("store: mirror refresh (barbers) failed: %v", mErr)
	}
	return barbers, false
}

func (s *TwoTier) GetService(ctx context.Context, id string) (*models.Service, error) {
	if svc, err := s.remote.GetService(ctx, id); err == nil {
		return svc, nil
	}
	for _, svc := range s.mirror.LoadServices(ctx) {
		if svc.ID == id {
			return &svc, nil
		}
	}
	return nil, ErrNotFound
}

func (s *TwoTier) GetBarber(ctx context.Context, id string) (*models.Barber, error) {
	if barber, err := s.remote.GetBarber(ctx, id); err == nil {
		return barber, nil
	}
	for _, barber := range s.mirror.LoadBarbers(ctx) {
		if barber.ID == id {
			return &barber, nil
		}
	}
	return nil, ErrNotFound
}

func (s *TwoTier) ShopInfo(ctx context.Context) models.ShopInfo {
	info, err := s.remote.GetShopInfo(ctx)
	if err != nil {
		log.Printf("store: remote shop info unavailable, using mirror: %v", err)
		return s.mirror.LoadShopInfo(ctx)
	}

	if mErr := s.mirror.SaveShopInfo(ctx, *info); mErr != nil {
		log.Printf("store: mirror refresh (shop info) failed: %v", mErr)
	}
	return *info
}

// RefreshCatalog reserializa os slots do espelho depois de uma escrita
// admin, para o fallback não servir catálogo defasado.
func (s *TwoTier) RefreshCatalog(ctx context.Context) {
	if services, err := s.remote.ListServices(ctx, true); err == nil {
		if mErr := s.mirror.SaveServices(ctx, services); mErr != nil {
			log.Printf("store: mirror refresh (services) failed: %v", mErr)
		}
	}
	if barbers, err := s.remote.ListBarbers(ctx, true); err == nil {
		if mErr := s.mirror.SaveBarbers(ctx, barbers); mErr != nil {
			log.Printf("store: mirror refresh (barbers) failed: %v", mErr)
		}
	}
	if info, err := s.remote.GetShopInfo(ctx); err == nil {
		if mErr := s.mirror.SaveShopInfo(ctx, *info); mErr != nil {
			log.Printf("store: mirror refresh (shop info) failed: %v", mErr)
		}
	}
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (s *TwoTier) Appointments(ctx context.Context) ([]models.Appointment, bool) {
	apps, err := s.remote.ListAppointments(ctx)
	if err != nil {
		log.Printf("store: remote appointments unavailable, using mirror: %v", err)
		return s.mirror.LoadAppointments(ctx), true
	}

	// Reservas local_only só existem no espelho; o calendário precisa delas.
	for _, local := range s.mirror.LoadAppointments(ctx) {
		if local.SyncStatus == string(domain.SyncLocal) {
			apps = append(apps, local)
		}
	}

	return apps, false
}

func (s *TwoTier) AppointmentsBetween(ctx context.Context, start, end time.Time) ([]models.Appointment, bool) {
	apps, fromMirror := s.Appointments(ctx)
	out := make([]models.Appointment, 0, len(apps))
	for _, ap := range apps {
		if !ap.Date.Before(start) && ap.Date.Before(end) {
			out = append(out, ap)
		}
	}
	return out, fromMirror
}

// SaveAppointment tenta o remoto; falha é registrada e a reserva segue
// valendo localmente (divergência aceita, nunca reconciliada). O espelho
// recebe o registro nos dois casos.
func (s *TwoTier) SaveAppointment(ctx context.Context, ap *models.Appointment) {
	ap.SyncStatus = string(domain.SyncSynced)

	if err := s.remote.CreateAppointment(ctx, ap); err != nil {
		log.Printf("store: remote appointment write failed, keeping local: %v", err)
		ap.SyncStatus = string(domain.SyncLocal)
	}

	if err := s.mirror.AppendAppointment(ctx, *ap); err != nil {
		log.Printf("store: mirror append failed: %v", err)
	}
}
