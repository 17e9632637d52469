package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/barbertime/barbertime-api/internal/models"
	"github.com/barbertime/barbertime-api/internal/seed"
)

// Espelho local de fallback: quatro slots chave-valor independentes,
// serializados em JSON a cada mudança. Dado ausente ou corrompido cai nos
// padrões de fábrica. As chaves são as mesmas do cliente web.
const (
	KeyShopInfo     = "barberShopInfo"
	KeyServices     = "barberShopServices"
	KeyBarbers      = "barberShopBarbers"
	KeyAppointments = "barberShopAppointments"
)

var ErrMiss = errors.New("mirror: key not found")

// KV é o armazenamento por baixo do espelho (Redis em produção).
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}

type Mirror struct {
	kv KV
}

func New(kv KV) *Mirror {
	return &Mirror{kv: kv}
}

// --------------------------------------------------
// Shop info
// --------------------------------------------------

func (m *Mirror) SaveShopInfo(ctx context.Context, info models.ShopInfo) error {
	return m.save(ctx, KeyShopInfo, info)
}

func (m *Mirror) LoadShopInfo(ctx context.Context) models.ShopInfo {
	var info models.ShopInfo
	if err := m.load(ctx, KeyShopInfo, &info); err != nil {
		m.reseed(ctx, KeyShopInfo, err)
		return seed.ShopInfo()
	}
	return info
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (m *Mirror) SaveServices(ctx context.Context, services []models.Service) error {
	return m.save(ctx, KeyServices, services)
}

func (m *Mirror) LoadServices(ctx context.Context) []models.Service {
	var services []models.Service
	if err := m.load(ctx, KeyServices, &services); err != nil {
		m.reseed(ctx, KeyServices, err)
		return seed.Services()
	}
	return services
}

func (m *Mirror) SaveBarbers(ctx context.Context, barbers []models.Barber) error {
	return m.save(ctx, KeyBarbers, barbers)
}

func (m *Mirror) LoadBarbers(ctx context.Context) []models.Barber {
	var barbers []models.Barber
	if err := m.load(ctx, KeyBarbers, &barbers); err != nil {
		m.reseed(ctx, KeyBarbers, err)
		return seed.Barbers()
	}
	return barbers
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (m *Mirror) SaveAppointments(ctx context.Context, appointments []models.Appointment) error {
	return m.save(ctx, KeyAppointments, appointments)
}

// LoadAppointments devolve a coleção espelhada; datas voltam de RFC3339
// para time.Time no unmarshal. Slot vazio ou corrompido vira coleção vazia.
func (m *Mirror) LoadAppointments(ctx context.Context) []models.Appointment {
	var appointments []models.Appointment
	if err := m.load(ctx, KeyAppointments, &appointments); err != nil {
		if !errors.Is(err, ErrMiss) {
			m.reseed(ctx, KeyAppointments, err)
		}
		return []models.Appointment{}
	}
	return appointments
}

func (m *Mirror) AppendAppointment(ctx context.Context, ap models.Appointment) error {
	appointments := m.LoadAppointments(ctx)
	appointments = append(appointments, ap)
	return m.SaveAppointments(ctx, appointments)
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (m *Mirror) save(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return m.kv.Set(ctx, key, string(b))
}

func (m *Mirror) load(ctx context.Context, key string, v any) error {
	raw, err := m.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), v)
}

// Slot ilegível é descartado e os padrões reassumem; só registramos.
func (m *Mirror) reseed(ctx context.Context, key string, err error) {
	if errors.Is(err, ErrMiss) {
		return
	}
	log.Printf("mirror: discarding corrupt slot %s: %v", key, err)
}
