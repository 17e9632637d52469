package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbertime/barbertime-api/internal/httperr"
	"github.com/barbertime/barbertime-api/internal/httpresp"
	"github.com/barbertime/barbertime-api/internal/media"
	"github.com/barbertime/barbertime-api/internal/middleware"
	"github.com/barbertime/barbertime-api/internal/models"
	"github.com/barbertime/barbertime-api/internal/usecase/catalog"
)

// ======================================================
// HANDLER — Admin barbers
// ======================================================

type BarberHandler struct {
	db       *gorm.DB
	admin    *catalog.Admin
	uploader *media.Uploader
}

func NewBarberHandler(db *gorm.DB, admin *catalog.Admin, uploader *media.Uploader) *BarberHandler {
	return &BarberHandler{db: db, admin: admin, uploader: uploader}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBarberRequest struct {
	Name      string `json:"name" binding:"required"`
	AvatarURL string `json:"avatar_url"`
}

type UpdateBarberRequest struct {
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatar_url"`
	Active    *bool   `json:"active"`
}

// ======================================================
// CRUD
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("name ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "db_error", "Erro ao listar barbeiros.")
		return
	}
	httpresp.List(c, barbers, false)
}

func (h *BarberHandler) Create(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	barber, err := h.admin.CreateBarber(c.Request.Context(), adminEmail, catalog.CreateBarberInput{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	barber, err := h.admin.UpdateBarber(c.Request.Context(), adminEmail, c.Param("id"), catalog.UpdateBarberInput{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
		Active:    req.Active,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.OK(c, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)

	if err := h.admin.DeleteBarber(c.Request.Context(), adminEmail, c.Param("id")); err != nil {
		writeBusiness(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// AVATAR
// ======================================================

// UploadAvatar recebe multipart ("file"), grava o webp no bucket e aplica
// a nova URL via update normal — o cascade para os snapshots vem junto.
func (h *BarberHandler) UploadAvatar(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie o arquivo no campo 'file'.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Arquivo inválido.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Arquivo inválido.")
		return
	}

	url, err := h.uploader.UploadImage(c.Request.Context(), "avatars", data)
	if err != nil {
		httperr.Internal(c, "upload_error", "Erro ao enviar a imagem.")
		return
	}

	barber, err := h.admin.UpdateBarber(c.Request.Context(), adminEmail, c.Param("id"), catalog.UpdateBarberInput{
		AvatarURL: &url,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, barber)
}
