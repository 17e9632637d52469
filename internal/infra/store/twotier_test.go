package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/barbertime/barbertime-api/internal/mirror"
	"github.com/barbertime/barbertime-api/internal/models"
)

// ======================================================
// FAKES
// ======================================================

type memKV struct {
	data map[string]string
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (m *memKV) Get(_ context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", mirror.ErrMiss
	}
	return v, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

type fakeRemote struct {
	services     []models.Service
	barbers      []models.Barber
	shopInfo     models.ShopInfo
	appointments []models.Appointment

	down bool
}

var errDown = errors.New("connection refused")

func (f *fakeRemote) ListServices(context.Context, bool) ([]models.Service, error) {
	if f.down {
		return nil, errDown
	}
	return f.services, nil
}

func (f *fakeRemote) ListBarbers(context.Context, bool) ([]models.Barber, error) {
	if f.down {
		return nil, errDown
	}
	return f.barbers, nil
}

func (f *fakeRemote) GetService(_ context.Context, id string) (*models.Service, error) {
	if f.down {
		return nil, errDown
	}
	for _, svc := range f.services {
		if svc.ID == id {
			return &svc, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRemote) GetBarber(_ context.Context, id string) (*models.Barber, error) {
	if f.down {
		return nil, errDown
	}
	for _, b := range f.barbers {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRemote) GetShopInfo(context.Context) (*models.ShopInfo, error) {
	if f.down {
		return nil, errDown
	}
	info := f.shopInfo
	return &info, nil
}

func (f *fakeRemote) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.down {
		return errDown
	}
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRemote) ListAppointments(context.Context) ([]models.Appointment, error) {
	if f.down {
		return nil, errDown
	}
	return f.appointments, nil
}

func (f *fakeRemote) ListAppointmentsBetween(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	if f.down {
		return nil, errDown
	}
	out := make([]models.Appointment, 0)
	for _, ap := range f.appointments {
		if !ap.Date.Before(start) && ap.Date.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

var _ Remote = (*fakeRemote)(nil)

// ======================================================
// TESTS
// ======================================================

func newTwoTier(remote *fakeRemote) *TwoTier {
	return NewTwoTier(remote, mirror.New(newMemKV()))
}

func TestServicesRemoteFirst(t *testing.T) {
	remote := &fakeRemote{
		services: []models.Service{{ID: "svc-1", Name: "Corte", Active: true}},
	}
	s := newTwoTier(remote)

	services, fallback := s.Services(context.Background())
	if fallback {
		t.Fatal("remote healthy: fallback should be false")
	}
	if len(services) != 1 || services[0].ID != "svc-1" {
		t.Fatalf("services = %+v", services)
	}
}

// O espelho é atualizado em cada leitura boa; quando o remoto cai, a última
// fotografia responde com a flag de fallback ligada.
func TestServicesFallBackToMirror(t *testing.T) {
	remote := &fakeRemote{
		services: []models.Service{{ID: "svc-1", Name: "Corte", Active: true}},
	}
	s := newTwoTier(remote)
	ctx := context.Background()

	s.Services(ctx) // aquece o espelho
	remote.down = true

	services, fallback := s.Services(ctx)
	if !fallback {
		t.Fatal("remote down: fallback should be true")
	}
	if len(services) != 1 || services[0].ID != "svc-1" {
		t.Fatalf("mirror should hold the last snapshot: %+v", services)
	}
}

func TestGetServiceFallsBackToMirrorScan(t *testing.T) {
	remote := &fakeRemote{
		services: []models.Service{{ID: "svc-1", Name: "Corte", Active: true}},
	}
	s := newTwoTier(remote)
	ctx := context.Background()

	s.Services(ctx)
	remote.down = true

	svc, err := s.GetService(ctx, "svc-1")
	if err != nil {
		t.Fatalf("GetService: %v", err)
	}
	if svc.Name != "Corte" {
		t.Fatalf("svc = %+v", svc)
	}

	if _, err := s.GetService(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveAppointmentSynced(t *testing.T) {
	remote := &fakeRemote{}
	s := newTwoTier(remote)
	ctx := context.Background()

	ap := &models.Appointment{ID: "ap-1", Date: time.Now(), TimeSlot: "09:00", Status: "scheduled"}
	s.SaveAppointment(ctx, ap)

	if ap.SyncStatus != "synced" {
		t.Fatalf("sync status = %q, want synced", ap.SyncStatus)
	}
	if len(remote.appointments) != 1 {
		t.Fatal("appointment should reach the remote")
	}

	apps, fallback := s.Appointments(ctx)
	if fallback || len(apps) != 1 {
		t.Fatalf("apps = %+v, fallback = %v", apps, fallback)
	}
}

// Banco fora não recusa a reserva: ela fica no espelho como local_only e
// reaparece na listagem quando o remoto volta.
func TestSaveAppointmentLocalOnly(t *testing.T) {
	remote := &fakeRemote{down: true}
	s := newTwoTier(remote)
	ctx := context.Background()

	ap := &models.Appointment{ID: "ap-1", Date: time.Now(), TimeSlot: "09:00", Status: "scheduled"}
	s.SaveAppointment(ctx, ap)

	if ap.SyncStatus != "local_only" {
		t.Fatalf("sync status = %q, want local_only", ap.SyncStatus)
	}
	if len(remote.appointments) != 0 {
		t.Fatal("remote write should have failed")
	}

	remote.down = false

	apps, fallback := s.Appointments(ctx)
	if fallback {
		t.Fatal("remote is back: fallback should be false")
	}
	if len(apps) != 1 || apps[0].SyncStatus != "local_only" {
		t.Fatalf("local_only booking should be merged in: %+v", apps)
	}
}

func TestAppointmentsBetween(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
	}

	remote := &fakeRemote{
		appointments: []models.Appointment{
			{ID: "ap-1", Date: day(9), TimeSlot: "09:00"},
			{ID: "ap-2", Date: day(10), TimeSlot: "09:00"},
			{ID: "ap-3", Date: day(11), TimeSlot: "09:00"},
		},
	}
	s := newTwoTier(remote)

	apps, _ := s.AppointmentsBetween(context.Background(), day(10), day(11))
	if len(apps) != 1 || apps[0].ID != "ap-2" {
		t.Fatalf("apps = %+v", apps)
	}
}
