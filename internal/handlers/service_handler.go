package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbertime/barbertime-api/internal/httperr"
	"github.com/barbertime/barbertime-api/internal/httpresp"
	"github.com/barbertime/barbertime-api/internal/middleware"
	"github.com/barbertime/barbertime-api/internal/models"
	"github.com/barbertime/barbertime-api/internal/usecase/catalog"
)

// ======================================================
// HANDLER — Admin services
// ======================================================

type ServiceHandler struct {
	db    *gorm.DB
	admin *catalog.Admin
}

func NewServiceHandler(db *gorm.DB, admin *catalog.Admin) *ServiceHandler {
	return &ServiceHandler{db: db, admin: admin}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	DurationMin int     `json:"duration_min" binding:"required"`
	Category    string  `json:"category"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	DurationMin *int     `json:"duration_min"`
	Category    *string  `json:"category"`
	Active      *bool    `json:"active"`
}

// ======================================================
// CRUD
// ======================================================

// List devolve o catálogo completo, inativos incluídos; a vitrine pública
// filtra, o admin não.
func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "db_error", "Erro ao listar serviços.")
		return
	}
	httpresp.List(c, services, false)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc, err := h.admin.CreateService(c.Request.Context(), adminEmail, catalog.CreateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Category:    req.Category,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc, err := h.admin.UpdateService(c.Request.Context(), adminEmail, c.Param("id"), catalog.UpdateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Category:    req.Category,
		Active:      req.Active,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)

	if err := h.admin.DeleteService(c.Request.Context(), adminEmail, c.Param("id")); err != nil {
		writeBusiness(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
