package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbertime/barbertime-api/internal/httperr"
	"github.com/barbertime/barbertime-api/internal/httpresp"
	"github.com/barbertime/barbertime-api/internal/infra/store"
	"github.com/barbertime/barbertime-api/internal/media"
	"github.com/barbertime/barbertime-api/internal/middleware"
	"github.com/barbertime/barbertime-api/internal/usecase/catalog"
)

// ======================================================
// HANDLER — Shop info
// ======================================================

type ShopHandler struct {
	store    *store.TwoTier
	admin    *catalog.Admin
	uploader *media.Uploader
}

func NewShopHandler(s *store.TwoTier, admin *catalog.Admin, uploader *media.Uploader) *ShopHandler {
	return &ShopHandler{store: s, admin: admin, uploader: uploader}
}

type UpdateShopInfoRequest struct {
	Name    *string `json:"name"`
	LogoURL *string `json:"logo_url"`
}

func (h *ShopHandler) Get(c *gin.Context) {
	httpresp.OK(c, h.store.ShopInfo(c.Request.Context()))
}

func (h *ShopHandler) Update(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)

	var req UpdateShopInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	current := h.store.ShopInfo(c.Request.Context())

	info, err := h.admin.UpdateShopInfo(c.Request.Context(), adminEmail, current, catalog.UpdateShopInfoInput{
		Name:    req.Name,
		LogoURL: req.LogoURL,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.OK(c, info)
}

func (h *ShopHandler) UploadLogo(c *gin.Context) {
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

	url, err := h.uploader.UploadImage(c.Request.Context(), "logo", data)
	if err != nil {
		httperr.Internal(c, "upload_error", "Erro ao enviar a imagem.")
		return
	}

	current := h.store.ShopInfo(c.Request.Context())

	info, err := h.admin.UpdateShopInfo(c.Request.Context(), adminEmail, current, catalog.UpdateShopInfoInput{
		LogoURL: &url,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}
