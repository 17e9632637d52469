package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barbertime/barbertime-api/internal/config"
	"github.com/barbertime/barbertime-api/internal/httperr"
	"github.com/barbertime/barbertime-api/internal/middleware"
	"github.com/barbertime/barbertime-api/internal/models"
)

// ======================================================
// HANDLER — Admin auth
// ======================================================

type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login só emite token para credencial válida E e-mail na allow-list.
// A mensagem não distingue os casos para não vazar quais e-mails existem.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.cfg.IsAdminEmail(email) {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	var admin models.AdminUser
	if err := h.db.Where("email = ?", email).First(&admin).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": admin.Email,
		"iat": now.Unix(),
		"exp": now.Add(24 * time.Hour).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		httperr.Internal(c, "token_error", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"email": admin.Email,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	email := c.MustGet(middleware.ContextAdminEmail).(string)
	c.JSON(http.StatusOK, gin.H{"email": email})
}
