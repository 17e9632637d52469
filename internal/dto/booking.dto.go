package dto

import (
	booking "github.com/barbertime/barbertime-api/internal/domain/booking"
)

type SessionDTO struct {
	SessionID  string        `json:"session_id"`
	Step       int           `json:"step"`
	StepLabel  string        `json:"step_label"`
	Draft      booking.Draft `json:"draft"`
	CanConfirm bool          `json:"can_confirm"`
}

func NewSessionDTO(id string, sess booking.Session) SessionDTO {
	return SessionDTO{
		SessionID:  id,
		Step:       int(sess.Step),
		StepLabel:  sess.Step.String(),
		Draft:      sess.Draft,
		CanConfirm: sess.Step == booking.StepConfirm && sess.Draft.ReadyToConfirm(),
	}
}
