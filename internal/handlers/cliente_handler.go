package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/VaultSyncBR/backup-console/internal/audit"
	"github.com/VaultSyncBR/backup-console/internal/models"
	"github.com/VaultSyncBR/backup-console/internal/validators"
)

type ClienteHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClienteHandler(db *gorm.DB, auditD *audit.Dispatcher) *ClienteHandler {
	return &ClienteHandler{db: db, audit: auditD}
}

// --------- Requests ---------

type CreateClienteRequest struct {
	ClientID    string `json:"client_id" binding:"required"`
	NomeEmpresa string `json:"nome_empresa" binding:"required"`
	CnpjEmpresa string `json:"cnpj_empresa"`
	Ativo       *bool  `json:"ativo"`
}

type UpdateClienteRequest struct {
	ClientID    *string `json:"client_id,omitempty"`
	NomeEmpresa *string `json:"nome_empresa,omitempty"`
	CnpjEmpresa *string `json:"cnpj_empresa,omitempty"`
	Ativo       *bool   `json:"ativo,omitempty"`
}

// --------- Handlers ---------

func (h *ClienteHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Cliente{})

	if query != "" {
		like := "%" + query + "%"

		// o CNPJ é guardado mascarado; a busca por dígitos compara com a
		// coluna sem máscara e só entra quando o termo tem algum dígito
		if digits := validators.OnlyDigits(query); digits != "" {
			q = q.Where(
				"LOWER(client_id) LIKE ? OR LOWER(nome_empresa) LIKE ? OR "+
					"REPLACE(REPLACE(REPLACE(cnpj_empresa, '.', ''), '/', ''), '-', '') LIKE ?",
				like, like, "%"+digits+"%",
			)
		} else {
			q = q.Where(
				"LOWER(client_id) LIKE ? OR LOWER(nome_empresa) LIKE ?",
				like, like,
			)
		}
	}

	var clientes []models.Cliente
	if err := q.
		Order("nome_empresa ASC").
		Find(&clientes).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_clientes"})
		return
	}

	c.JSON(http.StatusOK, clientes)
}

func (h *ClienteHandler) Create(c *gin.Context) {
	var req CreateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	clientID := strings.TrimSpace(req.ClientID)

	if !validators.IsValidCNPJ(req.CnpjEmpresa) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_cnpj",
			"message": "CNPJ deve estar vazio ou ter 14 dígitos.",
		})
		return
	}

	var count int64
	if err := h.db.Model(&models.Cliente{}).
		Where("client_id = ?", clientID).
		Count(&count).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_cliente"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client_id_ja_existe"})
		return
	}

	cliente := models.Cliente{
		ClientID:    clientID,
		NomeEmpresa: strings.TrimSpace(req.NomeEmpresa),
		CnpjEmpresa: validators.FormatCNPJ(req.CnpjEmpresa),
		Ativo:       true,
	}
	if req.Ativo != nil {
		cliente.Ativo = *req.Ativo
	}

	if err := h.db.Create(&cliente).Error; err != nil {
		// corrida entre o pre-check e o insert: unique de client_id
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "client_id_ja_existe"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_cliente"})
		return
	}

	auditEvent(c, h.audit, "cliente_created", "cliente", &cliente.ID, gin.H{"client_id": cliente.ClientID})

	c.JSON(http.StatusCreated, cliente)
}

func (h *ClienteHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var cliente models.Cliente
	if err := h.db.First(&cliente, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "cliente_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_cliente"})
		return
	}

	var req UpdateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.CnpjEmpresa != nil && !validators.IsValidCNPJ(*req.CnpjEmpresa) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_cnpj",
			"message": "CNPJ deve estar vazio ou ter 14 dígitos.",
		})
		return
	}

	if req.ClientID != nil {
		cliente.ClientID = strings.TrimSpace(*req.ClientID)
	}
	if req.NomeEmpresa != nil {
		cliente.NomeEmpresa = strings.TrimSpace(*req.NomeEmpresa)
	}
	if req.CnpjEmpresa != nil {
		cliente.CnpjEmpresa = validators.FormatCNPJ(*req.CnpjEmpresa)
	}
	if req.Ativo != nil {
		cliente.Ativo = *req.Ativo
	}

	if err := h.db.Save(&cliente).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "client_id_ja_existe"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_cliente"})
		return
	}

	auditEvent(c, h.audit, "cliente_updated", "cliente", &cliente.ID, nil)

	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var cliente models.Cliente
	if err := h.db.First(&cliente, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "cliente_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_cliente"})
		return
	}

	if err := h.db.Delete(&cliente).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_cliente"})
		return
	}

	auditEvent(c, h.audit, "cliente_deleted", "cliente", &cliente.ID, gin.H{"client_id": cliente.ClientID})

	c.JSON(http.StatusOK, gin.H{"message": "Cliente removido."})
}
