package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VaultSyncBR/backup-console/internal/audit"
	domainServidor "github.com/VaultSyncBR/backup-console/internal/domain/servidor"
	"github.com/VaultSyncBR/backup-console/internal/models"
)

type ServidorHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServidorHandler(db *gorm.DB, auditD *audit.Dispatcher) *ServidorHandler {
	return &ServidorHandler{db: db, audit: auditD}
}

// --------- Requests ---------

type CreateServidorRequest struct {
	ClienteID          uint       `json:"cliente_id" binding:"required"`
	Nome               string     `json:"nome" binding:"required"`
	EnderecoIP         string     `json:"endereco_ip" binding:"required"`
	SistemaOperacional string     `json:"sistema_operacional"`
	Status             int        `json:"status"`
	UptimeInicio       *time.Time `json:"uptime_inicio"`
	MensagemErro       string     `json:"mensagem_erro"`
}

type UpdateServidorRequest struct {
	ClienteID          *uint      `json:"cliente_id,omitempty"`
	Nome               *string    `json:"nome,omitempty"`
	EnderecoIP         *string    `json:"endereco_ip,omitempty"`
	SistemaOperacional *string    `json:"sistema_operacional,omitempty"`
	Status             *int       `json:"status,omitempty"`
	UptimeInicio       *time.Time `json:"uptime_inicio,omitempty"`
	MensagemErro       *string    `json:"mensagem_erro,omitempty"`
}

// --------- Handlers ---------

func (h *ServidorHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	clienteID := strings.TrimSpace(c.Query("cliente_id"))

	q := h.db.Model(&models.Servidor{})

	if clienteID != "" {
		q = q.Where("cliente_id = ?", clienteID)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(nome) LIKE ? OR endereco_ip LIKE ? OR LOWER(sistema_operacional) LIKE ?",
			like, like, like,
		)
	}

	var servidores []models.Servidor
	if err := q.
		Order("created_at DESC").
		Find(&servidores).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_servidores"})
		return
	}

	c.JSON(http.StatusOK, servidores)
}

func (h *ServidorHandler) Create(c *gin.Context) {
	var req CreateServidorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !domainServidor.IsValid(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_status"})
		return
	}

	var cliente models.Cliente
	if err := h.db.First(&cliente, req.ClienteID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cliente_not_found"})
		return
	}

	servidor := models.Servidor{
		ClienteID:          req.ClienteID,
		Nome:               strings.TrimSpace(req.Nome),
		EnderecoIP:         strings.TrimSpace(req.EnderecoIP),
		SistemaOperacional: strings.TrimSpace(req.SistemaOperacional),
		Status:             req.Status,
		UptimeInicio:       req.UptimeInicio,
		MensagemErro:       strings.TrimSpace(req.MensagemErro),
	}

	if err := h.db.Create(&servidor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_servidor"})
		return
	}

	auditEvent(c, h.audit, "servidor_created", "servidor", &servidor.ID, gin.H{"nome": servidor.Nome})

	c.JSON(http.StatusCreated, servidor)
}

func (h *ServidorHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var servidor models.Servidor
	if err := h.db.First(&servidor, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "servidor_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_servidor"})
		return
	}

	var req UpdateServidorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Status != nil && !domainServidor.IsValid(*req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_status"})
		return
	}

	if req.ClienteID != nil {
		servidor.ClienteID = *req.ClienteID
	}
	if req.Nome != nil {
		servidor.Nome = strings.TrimSpace(*req.Nome)
	}
	if req.EnderecoIP != nil {
		servidor.EnderecoIP = strings.TrimSpace(*req.EnderecoIP)
	}
	if req.SistemaOperacional != nil {
		servidor.SistemaOperacional = strings.TrimSpace(*req.SistemaOperacional)
	}
	if req.Status != nil {
		servidor.Status = *req.Status
	}
	if req.UptimeInicio != nil {
		servidor.UptimeInicio = req.UptimeInicio
	}
	if req.MensagemErro != nil {
		servidor.MensagemErro = strings.TrimSpace(*req.MensagemErro)
	}

	if err := h.db.Save(&servidor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_servidor"})
		return
	}

	auditEvent(c, h.audit, "servidor_updated", "servidor", &servidor.ID, nil)

	c.JSON(http.StatusOK, servidor)
}

func (h *ServidorHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var servidor models.Servidor
	if err := h.db.First(&servidor, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "servidor_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_servidor"})
		return
	}

	if err := h.db.Delete(&servidor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_servidor"})
		return
	}

	auditEvent(c, h.audit, "servidor_deleted", "servidor", &servidor.ID, gin.H{"nome": servidor.Nome})

	c.JSON(http.StatusOK, gin.H{"message": "Servidor removido."})
}
