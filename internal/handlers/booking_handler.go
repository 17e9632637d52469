package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbertime/barbertime-api/internal/dto"
	"github.com/barbertime/barbertime-api/internal/httperr"
	"github.com/barbertime/barbertime-api/internal/httpresp"
	"github.com/barbertime/barbertime-api/internal/usecase/booking"
)

// ======================================================
// HANDLER — Booking wizard
// ======================================================

type BookingHandler struct {
	wizard *booking.Wizard
}

func NewBookingHandler(wizard *booking.Wizard) *BookingHandler {
	return &BookingHandler{wizard: wizard}
}

// ======================================================
// REQUESTS
// ======================================================

type SelectServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

type SelectBarberRequest struct {
	BarberID string `json:"barber_id" binding:"required"`
}

type SelectDateTimeRequest struct {
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`
}

type ConfirmRequest struct {
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
}

// ======================================================
// SESSION
// ======================================================

func (h *BookingHandler) Start(c *gin.Context) {
	id, sess := h.wizard.Start()
	c.JSON(http.StatusCreated, dto.NewSessionDTO(id, sess))
}

func (h *BookingHandler) Get(c *gin.Context) {
	id := c.Param("id")

	sess, err := h.wizard.Get(id)
	if err != nil {
		writeBusiness(c, err)
		return
	}
	httpresp.OK(c, dto.NewSessionDTO(id, sess))
}

// ======================================================
// STEPS
// ======================================================

func (h *BookingHandler) SelectService(c *gin.Context) {
	id := c.Param("id")

	var req SelectServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	sess, err := h.wizard.SelectService(c.Request.Context(), id, req.ServiceID)
	if err != nil {
		writeBusiness(c, err)
		return
	}
	httpresp.OK(c, dto.NewSessionDTO(id, sess))
}

func (h *BookingHandler) SelectBarber(c *gin.Context) {
	id := c.Param("id")

	var req SelectBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	sess, err := h.wizard.SelectBarber(c.Request.Context(), id, req.BarberID)
	if err != nil {
		writeBusiness(c, err)
		return
	}
	httpresp.OK(c, dto.NewSessionDTO(id, sess))
}

func (h *BookingHandler) SelectDateTime(c *gin.Context) {
	id := c.Param("id")

	var req SelectDateTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	sess, err := h.wizard.SelectDateTime(c.Request.Context(), id, req.Date, req.TimeSlot)
	if err != nil {
		writeBusiness(c, err)
		return
	}
	httpresp.OK(c, dto.NewSessionDTO(id, sess))
}

func (h *BookingHandler) ConfirmDateTime(c *gin.Context) {
	id := c.Param("id")

	sess, err := h.wizard.ConfirmDateTime(id)
	if err != nil {
		writeBusiness(c, err)
		return
	}
	httpresp.OK(c, dto.NewSessionDTO(id, sess))
}

// Confirm devolve 422 com os erros por campo; cada campo é validado de
// forma independente, os dois podem voltar juntos.
func (h *BookingHandler) Confirm(c *gin.Context) {
	id := c.Param("id")

	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	sess, fieldErrs, ap, err := h.wizard.Confirm(c.Request.Context(), id, req.ClientName, req.ClientPhone)
	if err != nil {
		writeBusiness(c, err)
		return
	}
	if !fieldErrs.Empty() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session":     dto.NewSessionDTO(id, sess),
		"appointment": ap,
	})
}

// ======================================================
// NAVIGATION
// ======================================================

func (h *BookingHandler) GoBack(c *gin.Context) {
	id := c.Param("id")

	sess, err := h.wizard.GoBack(id)
	if err != nil {
		writeBusiness(c, err)
		return
	}
	httpresp.OK(c, dto.NewSessionDTO(id, sess))
}

func (h *BookingHandler) Reset(c *gin.Context) {
	id := c.Param("id")

	sess, err := h.wizard.Reset(id)
	if err != nil {
		writeBusiness(c, err)
		return
	}
	httpresp.OK(c, dto.NewSessionDTO(id, sess))
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	id := c.Param("id")

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (YYYY-MM-DD).")
		return
	}

	slots, err := h.wizard.Availability(c.Request.Context(), id, dateStr)
	if err != nil {
		writeBusiness(c, err)
		return
	}
	httpresp.OK(c, gin.H{"date": dateStr, "slots": slots})
}
