package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barbertime/barbertime-api/internal/httperr"
)

// writeBusiness traduz o código de negócio para status HTTP e mensagem.
// Erros sem código viram 500 genérico.
func writeBusiness(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch code {
	case "session_not_found":
		httperr.NotFound(c, code, "Sessão não encontrada ou expirada.")
	case "service_not_found":
		httperr.NotFound(c, code, "Serviço não encontrado.")
	case "barber_not_found":
		httperr.NotFound(c, code, "Barbeiro não encontrado.")

	case "invalid_step":
		httperr.Conflict(c, code, "Ação não permitida neste passo.")
	case "incomplete_draft":
		httperr.Conflict(c, code, "Reserva incompleta.")
	case "slot_taken":
		httperr.Conflict(c, code, "Horário indisponível para este barbeiro.")

	case "invalid_date":
		httperr.BadRequest(c, code, "Data inválida.")
	case "invalid_slot":
		httperr.BadRequest(c, code, "Horário inválido.")
	case "rest_day":
		httperr.BadRequest(c, code, "A barbearia não abre neste dia.")
	case "datetime_not_selected":
		httperr.BadRequest(c, code, "Escolha data e horário antes de continuar.")

	case "invalid_price":
		httperr.BadRequest(c, code, "Preço inválido.")
	case "invalid_duration":
		httperr.BadRequest(c, code, "Duração inválida.")
	case "invalid_shop_name":
		httperr.BadRequest(c, code, "Nome da barbearia não pode ficar vazio.")

	default:
		httperr.Internal(c, code, "Erro interno.")
	}
}
