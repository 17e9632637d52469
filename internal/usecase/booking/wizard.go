package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barbertime/barbertime-api/internal/audit"
	apdomain "github.com/barbertime/barbertime-api/internal/domain/appointment"
	domain "github.com/barbertime/barbertime-api/internal/domain/booking"
	"github.com/barbertime/barbertime-api/internal/domain/schedule"
	"github.com/barbertime/barbertime-api/internal/httperr"
	"github.com/barbertime/barbertime-api/internal/models"
)

// ======================================================
// USE CASE — Booking Wizard
// ======================================================

type Wizard struct {
	sessions *SessionStore
	store    Store
	audit    *audit.Dispatcher
	loc      *time.Location
}

func NewWizard(
	sessions *SessionStore,
	store Store,
	auditDispatcher *audit.Dispatcher,
	loc *time.Location,
) *Wizard {
	return &Wizard{
		sessions: sessions,
		store:    store,
		audit:    auditDispatcher,
		loc:      loc,
	}
}

func (w *Wizard) Start() (string, domain.Session) {
	return w.sessions.Create()
}

func (w *Wizard) Get(sessionID string) (domain.Session, error) {
	sess, ok := w.sessions.Get(sessionID)
	if !ok {
		return domain.Session{}, httperr.ErrBusiness("session_not_found")
	}
	return sess, nil
}

// --------------------------------------------------
// Passo 1 — serviço
// --------------------------------------------------

func (w *Wizard) SelectService(ctx context.Context, sessionID, serviceID string) (domain.Session, error) {
	sess, err := w.Get(sessionID)
	if err != nil {
		return domain.Session{}, err
	}

	svc, err := w.store.GetService(ctx, serviceID)
	if err != nil {
		return sess, httperr.ErrBusiness("service_not_found")
	}

	next, err := domain.SelectService(sess, *svc)
	if err != nil {
		return sess, err
	}

	w.sessions.Put(sessionID, next)
	return next, nil
}

// --------------------------------------------------
// Passo 2 — barbeiro
// --------------------------------------------------

func (w *Wizard) SelectBarber(ctx context.Context, sessionID, barberID string) (domain.Session, error) {
	sess, err := w.Get(sessionID)
	if err != nil {
		return domain.Session{}, err
	}

	barber, err := w.store.GetBarber(ctx, barberID)
	if err != nil {
		return sess, httperr.ErrBusiness("barber_not_found")
	}

	next, err := domain.SelectBarber(sess, *barber)
	if err != nil {
		return sess, err
	}

	w.sessions.Put(sessionID, next)
	return next, nil
}

// --------------------------------------------------
// Passo 3 — data e horário
// --------------------------------------------------

func (w *Wizard) SelectDateTime(ctx context.Context, sessionID, dateStr, slot string) (domain.Session, error) {
	sess, err := w.Get(sessionID)
	if err != nil {
		return domain.Session{}, err
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, w.loc)
	if err != nil {
		return sess, httperr.ErrBusiness("invalid_date")
	}

	if !schedule.IsValidSlot(slot) {
		return sess, httperr.ErrBusiness("invalid_slot")
	}
	if date.Weekday() == schedule.RestDay {
		return sess, httperr.ErrBusiness("rest_day")
	}

	if sess.Draft.Barber != nil {
		appointments, _ := w.store.Appointments(ctx)
		if schedule.SlotTaken(appointments, sess.Draft.Barber.ID, date, slot) {
			return sess, httperr.ErrBusiness("slot_taken")
		}
	}

	next, err := domain.SelectDateTime(sess, date, slot)
	if err != nil {
		return sess, err
	}

	w.sessions.Put(sessionID, next)
	return next, nil
}

func (w *Wizard) ConfirmDateTime(sessionID string) (domain.Session, error) {
	sess, err := w.Get(sessionID)
	if err != nil {
		return domain.Session{}, err
	}

	next, err := domain.ConfirmDateTime(sess)
	if err != nil {
		return sess, err
	}

	w.sessions.Put(sessionID, next)
	return next, nil
}

// --------------------------------------------------
// Passo 4 — confirmação
// --------------------------------------------------

// Confirm finaliza o rascunho: valida os campos do cliente, reconfere o
// horário contra a coleção conhecida e grava o agendamento com snapshot
// do serviço e do barbeiro daquele momento.
func (w *Wizard) Confirm(
	ctx context.Context,
	sessionID string,
	clientName string,
	clientPhone string,
) (domain.Session, domain.FieldErrors, *models.Appointment, error) {

	sess, err := w.Get(sessionID)
	if err != nil {
		return domain.Session{}, domain.FieldErrors{}, nil, err
	}

	next, fieldErrs, err := domain.Confirm(sess, clientName, clientPhone)
	if err != nil {
		return sess, domain.FieldErrors{}, nil, err
	}
	if !fieldErrs.Empty() {
		return sess, fieldErrs, nil, nil
	}

	draft := next.Draft

	appointments, _ := w.store.Appointments(ctx)
	if schedule.SlotTaken(appointments, draft.Barber.ID, *draft.Date, draft.TimeSlot) {
		return sess, domain.FieldErrors{}, nil, httperr.ErrBusiness("slot_taken")
	}

	ap := &models.Appointment{
		ID:          uuid.NewString(),
		ClientName:  draft.ClientName,
		ClientPhone: draft.ClientPhone,
		BarberID:    draft.Barber.ID,
		ServiceID:   draft.Service.ID,
		Service: models.ServiceSnapshot{
			Name:        draft.Service.Name,
			Description: draft.Service.Description,
			Price:       draft.Service.Price,
			DurationMin: draft.Service.DurationMin,
		},
		Barber: models.BarberSnapshot{
			Name:      draft.Barber.Name,
			AvatarURL: draft.Barber.AvatarURL,
		},
		Date:     *draft.Date,
		TimeSlot: draft.TimeSlot,
		Status:   string(apdomain.InitialStatus()),
	}

	w.store.SaveAppointment(ctx, ap)

	w.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"barber_id":   ap.BarberID,
			"service_id":  ap.ServiceID,
			"time_slot":   ap.TimeSlot,
			"sync_status": ap.SyncStatus,
		},
	})

	w.sessions.Put(sessionID, next)
	return next, domain.FieldErrors{}, ap, nil
}

// --------------------------------------------------
// Navegação
// --------------------------------------------------

func (w *Wizard) GoBack(sessionID string) (domain.Session, error) {
	sess, err := w.Get(sessionID)
	if err != nil {
		return domain.Session{}, err
	}

	next := domain.GoBack(sess)
	w.sessions.Put(sessionID, next)
	return next, nil
}

func (w *Wizard) Reset(sessionID string) (domain.Session, error) {
	sess, err := w.Get(sessionID)
	if err != nil {
		return domain.Session{}, err
	}

	next := domain.Reset(sess)
	w.sessions.Put(sessionID, next)
	return next, nil
}

// --------------------------------------------------
// Disponibilidade (passo 3)
// --------------------------------------------------

// Availability devolve a grade do dia para o barbeiro do rascunho.
// Sem barbeiro escolhido toda a grade volta indisponível.
func (w *Wizard) Availability(ctx context.Context, sessionID, dateStr string) ([]schedule.SlotAvailability, error) {
	sess, err := w.Get(sessionID)
	if err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, w.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	barberID := ""
	if sess.Draft.Barber != nil {
		barberID = sess.Draft.Barber.ID
	}

	appointments, _ := w.store.Appointments(ctx)
	return schedule.Availability(appointments, barberID, date), nil
}
