package booking

import (
	"time"

	"github.com/barbertime/barbertime-api/internal/httperr"
	"github.com/barbertime/barbertime-api/internal/models"
)

// ===============================
// Wizard Steps
// ===============================

type Step int

const (
	StepSelectService Step = iota + 1
	StepSelectBarber
	StepSelectDateTime
	StepConfirm
	StepComplete
)

func (s Step) String() string {
	switch s {
	case StepSelectService:
		return "select_service"
	case StepSelectBarber:
		return "select_barber"
	case StepSelectDateTime:
		return "select_datetime"
	case StepConfirm:
		return "confirm"
	case StepComplete:
		return "complete"
	}
	return "unknown"
}

// ===============================
// Draft
// ===============================

// Draft é o agendamento parcial acumulado pelo wizard. Os campos são
// preenchidos estritamente na ordem dos passos: serviço antes de barbeiro,
// barbeiro antes de data/hora, data/hora antes dos dados do cliente.
type Draft struct {
	Service  *models.Service `json:"service,omitempty"`
	Barber   *models.Barber  `json:"barber,omitempty"`
	Date     *time.Time      `json:"date,omitempty"`
	TimeSlot string          `json:"time_slot,omitempty"`

	ClientName  string `json:"client_name,omitempty"`
	ClientPhone string `json:"client_phone,omitempty"`
}

// ReadyToConfirm é a guarda do passo 4: sem serviço, barbeiro, data e
// horário completos o confirm não pode ser acionado.
func (d Draft) ReadyToConfirm() bool {
	return d.Service != nil && d.Barber != nil && d.Date != nil && d.TimeSlot != ""
}

// ===============================
// Session
// ===============================

type Session struct {
	Step  Step  `json:"step"`
	Draft Draft `json:"draft"`
}

func NewSession() Session {
	return Session{Step: StepSelectService}
}

// ===============================
// Transitions (reducers puros)
// ===============================

// SelectService reinicia o rascunho por inteiro: escolher um serviço
// recomeça a reserva, nunca herda barbeiro ou horário anteriores.
func SelectService(s Session, svc models.Service) (Session, error) {
	if s.Step != StepSelectService {
		return s, httperr.ErrBusiness("invalid_step")
	}
	return Session{
		Step:  StepSelectBarber,
		Draft: Draft{Service: &svc},
	}, nil
}

func SelectBarber(s Session, barber models.Barber) (Session, error) {
	if s.Step != StepSelectBarber {
		return s, httperr.ErrBusiness("invalid_step")
	}
	s.Draft.Barber = &barber
	s.Step = StepSelectDateTime
	return s, nil
}

// SelectDateTime não avança o passo: o cliente ainda pode trocar o horário
// quantas vezes quiser; o avanço é o ConfirmDateTime.
func SelectDateTime(s Session, date time.Time, slot string) (Session, error) {
	if s.Step != StepSelectDateTime {
		return s, httperr.ErrBusiness("invalid_step")
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	s.Draft.Date = &day
	s.Draft.TimeSlot = slot
	return s, nil
}

func ConfirmDateTime(s Session) (Session, error) {
	if s.Step != StepSelectDateTime {
		return s, httperr.ErrBusiness("invalid_step")
	}
	if s.Draft.Date == nil || s.Draft.TimeSlot == "" {
		return s, httperr.ErrBusiness("datetime_not_selected")
	}
	s.Step = StepConfirm
	return s, nil
}

// Confirm valida os dados do cliente e finaliza o wizard. Erros de campo
// são independentes entre si e não mudam o estado da sessão.
func Confirm(s Session, clientName, clientPhone string) (Session, FieldErrors, error) {
	if s.Step != StepConfirm {
		return s, FieldErrors{}, httperr.ErrBusiness("invalid_step")
	}
	if !s.Draft.ReadyToConfirm() {
		return s, FieldErrors{}, httperr.ErrBusiness("incomplete_draft")
	}

	fieldErrs := ValidateClient(clientName, clientPhone)
	if !fieldErrs.Empty() {
		return s, fieldErrs, nil
	}

	s.Draft.ClientName = clientName
	s.Draft.ClientPhone = clientPhone
	s.Step = StepComplete
	return s, FieldErrors{}, nil
}

// GoBack volta um passo e limpa os campos do passo abandonado.
// Assimetria preservada de propósito: sair do passo 2 descarta o rascunho
// inteiro (inclusive o serviço), sair do 3 só o barbeiro, sair do 4 só
// data e horário. No passo 1 é no-op.
func GoBack(s Session) Session {
	switch s.Step {
	case StepSelectBarber:
		return Session{Step: StepSelectService}
	case StepSelectDateTime:
		s.Draft.Barber = nil
		s.Step = StepSelectBarber
		return s
	case StepConfirm:
		s.Draft.Date = nil
		s.Draft.TimeSlot = ""
		s.Step = StepSelectDateTime
		return s
	}
	return s
}

// Reset vale de qualquer estado, inclusive Complete.
func Reset(Session) Session {
	return NewSession()
}
