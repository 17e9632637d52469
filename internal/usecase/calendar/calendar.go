package calendar

import (
	"context"
	"time"

	"github.com/barbertime/barbertime-api/internal/domain/schedule"
	"github.com/barbertime/barbertime-api/internal/dto"
	"github.com/barbertime/barbertime-api/internal/models"
)

// ======================================================
// USE CASE — Admin calendar
// ======================================================

type Store interface {
	Appointments(ctx context.Context) ([]models.Appointment, bool)
	AppointmentsBetween(ctx context.Context, start, end time.Time) ([]models.Appointment, bool)
}

type Calendar struct {
	store Store
	loc   *time.Location
}

func New(store Store, loc *time.Location) *Calendar {
	return &Calendar{store: store, loc: loc}
}

// DayDetail lista os agendamentos do dia, em ordem de horário.
func (c *Calendar) DayDetail(ctx context.Context, day time.Time) ([]dto.DayAppointmentDTO, bool) {
	start := schedule.DayOf(day.In(c.loc))
	end := start.AddDate(0, 0, 1)

	appointments, fromMirror := c.store.AppointmentsBetween(ctx, start, end)
	ordered := schedule.AppointmentsOn(appointments, start)

	out := make([]dto.DayAppointmentDTO, 0, len(ordered))
	for _, ap := range ordered {
		out = append(out, dto.DayAppointmentDTO{
			ID:          ap.ID,
			TimeSlot:    ap.TimeSlot,
			ClientName:  ap.ClientName,
			ClientPhone: ap.ClientPhone,
			ServiceName: ap.Service.Name,
			Price:       ap.Service.Price,
			BarberName:  ap.Barber.Name,
			Status:      ap.Status,
			SyncStatus:  ap.SyncStatus,
		})
	}
	return out, fromMirror
}

// MonthSummary monta a visão do mês: contagem por dia para o selo do
// calendário e o deslocamento da grade.
func (c *Calendar) MonthSummary(ctx context.Context, year int, month time.Month) dto.MonthSummaryDTO {
	start := time.Date(year, month, 1, 0, 0, 0, 0, c.loc)
	end := start.AddDate(0, 1, 0)

	appointments, fromMirror := c.store.AppointmentsBetween(ctx, start, end)

	return dto.MonthSummaryDTO{
		Year:          year,
		Month:         int(month),
		LeadingBlanks: schedule.LeadingBlanks(year, month, c.loc),
		DaysInMonth:   schedule.DaysInMonth(year, month, c.loc),
		Buckets:       schedule.MonthBuckets(appointments, year, month),
		Fallback:      fromMirror,
	}
}
