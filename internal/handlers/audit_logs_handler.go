package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbertime/barbertime-api/internal/httperr"
	"github.com/barbertime/barbertime-api/internal/httpresp"
	"github.com/barbertime/barbertime-api/internal/models"
)

// ======================================================
// HANDLER — Audit logs
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	q := h.db.Order("created_at DESC").Limit(limit)
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	var logs []models.AuditLog
	if err := q.Find(&logs).Error; err != nil {
		httperr.Internal(c, "db_error", "Erro ao listar logs.")
		return
	}

	httpresp.List(c, logs, false)
}
