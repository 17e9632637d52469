package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barbertime/barbertime-api/internal/httperr"
	"github.com/barbertime/barbertime-api/internal/httpresp"
	"github.com/barbertime/barbertime-api/internal/usecase/calendar"
)

// ======================================================
// HANDLER — Admin calendar
// ======================================================

type CalendarHandler struct {
	calendar *calendar.Calendar
	loc      *time.Location
}

func NewCalendarHandler(cal *calendar.Calendar, loc *time.Location) *CalendarHandler {
	return &CalendarHandler{calendar: cal, loc: loc}
}

// Day lista os agendamentos de uma data, ordenados por horário.
func (h *CalendarHandler) Day(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (YYYY-MM-DD).")
		return
	}

	day, err := time.ParseInLocation("2006-01-02", dateStr, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	appointments, fallback := h.calendar.DayDetail(c.Request.Context(), day)
	httpresp.List(c, appointments, fallback)
}

// Month devolve a grade do mês: contagem por dia e o deslocamento inicial.
func (h *CalendarHandler) Month(c *gin.Context) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Informe year e month válidos.")
		return
	}

	summary := h.calendar.MonthSummary(c.Request.Context(), year, time.Month(month))
	httpresp.OK(c, summary)
}
