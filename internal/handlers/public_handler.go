package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barbertime/barbertime-api/internal/domain/schedule"
	"github.com/barbertime/barbertime-api/internal/dto"
	"github.com/barbertime/barbertime-api/internal/httpresp"
	"github.com/barbertime/barbertime-api/internal/infra/store"
)

// ======================================================
// HANDLER — Public catalog
// ======================================================

type PublicHandler struct {
	store *store.TwoTier
	loc   *time.Location
}

func NewPublicHandler(s *store.TwoTier, loc *time.Location) *PublicHandler {
	return &PublicHandler{store: s, loc: loc}
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, fallback := h.store.Services(c.Request.Context())
	httpresp.List(c, services, fallback)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	barbers, fallback := h.store.Barbers(c.Request.Context())
	httpresp.List(c, barbers, fallback)
}

func (h *PublicHandler) ShopInfo(c *gin.Context) {
	info := h.store.ShopInfo(c.Request.Context())
	httpresp.OK(c, info)
}

// SelectableDays expõe a janela de dias do passo 3: os próximos dias de
// atendimento a partir de hoje, sem o dia de descanso.
func (h *PublicHandler) SelectableDays(c *gin.Context) {
	now := time.Now().In(h.loc)
	days := schedule.SelectableDays(now, schedule.DefaultWindowDays)

	out := make([]dto.SelectableDayDTO, 0, len(days))
	for _, d := range days {
		out = append(out, dto.SelectableDayDTO{
			Date:    d.Format("2006-01-02"),
			Weekday: d.Weekday(),
		})
	}
	httpresp.List(c, out, false)
}
