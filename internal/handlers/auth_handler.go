package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/VaultSyncBR/backup-console/internal/cache"
	"github.com/VaultSyncBR/backup-console/internal/config"
	"github.com/VaultSyncBR/backup-console/internal/middleware"
	"github.com/VaultSyncBR/backup-console/internal/models"
	"github.com/VaultSyncBR/backup-console/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	tokens cache.TokenStore
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, tokens cache.TokenStore) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, tokens: tokens}
}

// --------- Requests ---------

type RegisterRequest struct {
	Nome  string `json:"nome" binding:"required"`
	CPF   string `json:"cpf"`
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required,min=6"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := h.db.Model(&models.Usuario{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_ja_cadastrado"})
		return
	}

	cpf := validators.OnlyDigits(req.CPF)
	if cpf != "" && len(cpf) != 11 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_cpf",
			"message": "CPF deve ter 11 dígitos.",
		})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	usuario := models.Usuario{
		Nome:      strings.TrimSpace(req.Nome),
		CPF:       cpf,
		Email:     email,
		SenhaHash: string(hashed),
	}

	if err := h.db.Create(&usuario).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	token, err := h.generateToken(&usuario)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"usuario": gin.H{
			"id":    usuario.ID,
			"nome":  usuario.Nome,
			"email": usuario.Email,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var usuario models.Usuario
	if err := h.db.
		Where("email = ?", email).
		First(&usuario).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(req.Senha)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(&usuario)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"usuario": gin.H{
			"id":    usuario.ID,
			"nome":  usuario.Nome,
			"email": usuario.Email,
		},
		"token": token,
	})
}

// Logout revoga o jti do token apresentado até ele expirar
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.MustGet(middleware.ContextTokenJTI).(string)
	exp := c.MustGet(middleware.ContextTokenExp).(int64)

	if h.tokens != nil {
		ttl := time.Until(time.Unix(exp, 0))
		if err := h.tokens.Revoke(c.Request.Context(), jti, ttl); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_revoke_token"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sessão encerrada."})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(usuario *models.Usuario) (string, error) {
	claims := jwt.MapClaims{
		"sub": usuario.ID,
		"jti": uuid.NewString(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
