package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VaultSyncBR/backup-console/internal/middleware"
	"github.com/VaultSyncBR/backup-console/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	usuarioIDVal, exists := c.Get(middleware.ContextUsuarioID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	usuarioID, ok := usuarioIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return
	}

	var usuario models.Usuario
	if err := h.db.First(&usuario, usuarioID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"usuario": gin.H{
			"id":    usuario.ID,
			"nome":  usuario.Nome,
			"cpf":   usuario.CPF,
			"email": usuario.Email,
		},
	})
}
