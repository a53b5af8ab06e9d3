package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VaultSyncBR/backup-console/internal/audit"
	"github.com/VaultSyncBR/backup-console/internal/models"
)

type AgendamentoHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAgendamentoHandler(db *gorm.DB, auditD *audit.Dispatcher) *AgendamentoHandler {
	return &AgendamentoHandler{db: db, audit: auditD}
}

// --------- Requests ---------

type CreateAgendamentoRequest struct {
	ClientID       string  `json:"client_id" binding:"required"`
	ScheduleName   string  `json:"schedule_name" binding:"required"`
	RcloneCommand  string  `json:"rclone_command" binding:"required"`
	CronExpression string  `json:"cron_expression" binding:"required"`
	IsActive       *bool   `json:"is_active"`
	RemotePath     *string `json:"remote_path"`
}

type UpdateAgendamentoRequest struct {
	ClientID       *string `json:"client_id,omitempty"`
	ScheduleName   *string `json:"schedule_name,omitempty"`
	RcloneCommand  *string `json:"rclone_command,omitempty"`
	CronExpression *string `json:"cron_expression,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
	RemotePath     *string `json:"remote_path,omitempty"`
}

// --------- Handlers ---------

// List carrega tudo e filtra em memória, juntando o nome da empresa do
// cliente no campo de busca
func (h *AgendamentoHandler) List(c *gin.Context) {
	query := c.Query("query")
	clientID := strings.TrimSpace(c.Query("client_id"))

	q := h.db.Model(&models.Agendamento{})
	if clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}

	var agendamentos []models.Agendamento
	if err := q.
		Order("created_at DESC").
		Find(&agendamentos).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_agendamentos"})
		return
	}

	if strings.TrimSpace(query) != "" {
		var clientes []models.Cliente
		if err := h.db.Find(&clientes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_agendamentos"})
			return
		}
		agendamentos = FilterAgendamentos(agendamentos, clientes, query)
	}

	c.JSON(http.StatusOK, agendamentos)
}

func (h *AgendamentoHandler) Create(c *gin.Context) {
	var req CreateAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	clientID := strings.TrimSpace(req.ClientID)

	var count int64
	if err := h.db.Model(&models.Cliente{}).
		Where("client_id = ?", clientID).
		Count(&count).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_agendamento"})
		return
	}
	if count == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cliente_not_found"})
		return
	}

	agendamento := models.Agendamento{
		ClientID: clientID,
		// cron e comando são texto livre; quem valida é o agente
		ScheduleName:   strings.TrimSpace(req.ScheduleName),
		RcloneCommand:  strings.TrimSpace(req.RcloneCommand),
		CronExpression: strings.TrimSpace(req.CronExpression),
		IsActive:       true,
		RemotePath:     trimOrNil(req.RemotePath),
	}
	if req.IsActive != nil {
		agendamento.IsActive = *req.IsActive
	}

	if err := h.db.Create(&agendamento).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_agendamento"})
		return
	}

	auditEvent(c, h.audit, "agendamento_created", "agendamento", &agendamento.ID, gin.H{
		"client_id":     agendamento.ClientID,
		"schedule_name": agendamento.ScheduleName,
	})

	c.JSON(http.StatusCreated, agendamento)
}

func (h *AgendamentoHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var agendamento models.Agendamento
	if err := h.db.First(&agendamento, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "agendamento_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_agendamento"})
		return
	}

	var req UpdateAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.ClientID != nil {
		agendamento.ClientID = strings.TrimSpace(*req.ClientID)
	}
	if req.ScheduleName != nil {
		agendamento.ScheduleName = strings.TrimSpace(*req.ScheduleName)
	}
	if req.RcloneCommand != nil {
		agendamento.RcloneCommand = strings.TrimSpace(*req.RcloneCommand)
	}
	if req.CronExpression != nil {
		agendamento.CronExpression = strings.TrimSpace(*req.CronExpression)
	}
	if req.IsActive != nil {
		agendamento.IsActive = *req.IsActive
	}
	if req.RemotePath != nil {
		agendamento.RemotePath = trimOrNil(req.RemotePath)
	}

	if err := h.db.Save(&agendamento).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_agendamento"})
		return
	}

	auditEvent(c, h.audit, "agendamento_updated", "agendamento", &agendamento.ID, nil)

	c.JSON(http.StatusOK, agendamento)
}

func (h *AgendamentoHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var agendamento models.Agendamento
	if err := h.db.First(&agendamento, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "agendamento_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_agendamento"})
		return
	}

	if err := h.db.Delete(&agendamento).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_agendamento"})
		return
	}

	auditEvent(c, h.audit, "agendamento_deleted", "agendamento", &agendamento.ID, gin.H{
		"schedule_name": agendamento.ScheduleName,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Agendamento excluído."})
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
