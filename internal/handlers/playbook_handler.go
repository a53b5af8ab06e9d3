package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VaultSyncBR/backup-console/internal/audit"
	"github.com/VaultSyncBR/backup-console/internal/httperr"
	"github.com/VaultSyncBR/backup-console/internal/middleware"
	"github.com/VaultSyncBR/backup-console/internal/models"
	ucExecucao "github.com/VaultSyncBR/backup-console/internal/usecase/execucao"
)

type PlaybookHandler struct {
	db        *gorm.DB
	audit     *audit.Dispatcher
	executeUC *ucExecucao.DispatchFromPlaybook
}

func NewPlaybookHandler(
	db *gorm.DB,
	auditD *audit.Dispatcher,
	executeUC *ucExecucao.DispatchFromPlaybook,
) *PlaybookHandler {
	return &PlaybookHandler{db: db, audit: auditD, executeUC: executeUC}
}

// --------- Requests ---------

type CreatePlaybookRequest struct {
	Titulo    string `json:"titulo" binding:"required"`
	Descricao string `json:"descricao"`
	Comando   string `json:"comando" binding:"required"`
}

type UpdatePlaybookRequest struct {
	Titulo    *string `json:"titulo,omitempty"`
	Descricao *string `json:"descricao,omitempty"`
	Comando   *string `json:"comando,omitempty"`
}

type ExecutePlaybookRequest struct {
	ClientID   string `json:"client_id" binding:"required"`
	NomeTarefa string `json:"nome_tarefa"`
}

// --------- Handlers ---------

func (h *PlaybookHandler) List(c *gin.Context) {
	query := c.Query("query")

	var comandos []models.PlaybookCommand
	if err := h.db.
		Order("created_at DESC").
		Find(&comandos).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_playbook"})
		return
	}

	c.JSON(http.StatusOK, FilterPlaybookCommands(comandos, query))
}

func (h *PlaybookHandler) Create(c *gin.Context) {
	var req CreatePlaybookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	comando := models.PlaybookCommand{
		Titulo:    strings.TrimSpace(req.Titulo),
		Descricao: strings.TrimSpace(req.Descricao),
		Comando:   strings.TrimSpace(req.Comando),
	}

	if err := h.db.Create(&comando).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_playbook"})
		return
	}

	auditEvent(c, h.audit, "playbook_created", "playbook_command", &comando.ID, gin.H{"titulo": comando.Titulo})

	c.JSON(http.StatusCreated, comando)
}

func (h *PlaybookHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var comando models.PlaybookCommand
	if err := h.db.First(&comando, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "comando_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_comando"})
		return
	}

	var req UpdatePlaybookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Titulo != nil {
		comando.Titulo = strings.TrimSpace(*req.Titulo)
	}
	if req.Descricao != nil {
		comando.Descricao = strings.TrimSpace(*req.Descricao)
	}
	if req.Comando != nil {
		comando.Comando = strings.TrimSpace(*req.Comando)
	}

	if err := h.db.Save(&comando).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_comando"})
		return
	}

	auditEvent(c, h.audit, "playbook_updated", "playbook_command", &comando.ID, nil)

	c.JSON(http.StatusOK, comando)
}

func (h *PlaybookHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var comando models.PlaybookCommand
	if err := h.db.First(&comando, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "comando_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_comando"})
		return
	}

	if err := h.db.Delete(&comando).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_comando"})
		return
	}

	auditEvent(c, h.audit, "playbook_deleted", "playbook_command", &comando.ID, gin.H{"titulo": comando.Titulo})

	c.JSON(http.StatusOK, gin.H{"message": "Comando removido do playbook."})
}

// Execute dispara o comando do playbook como execução imediata do cliente
func (h *PlaybookHandler) Execute(c *gin.Context) {
	usuarioID := c.MustGet(middleware.ContextUsuarioID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var req ExecutePlaybookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ex, err := h.executeUC.Execute(
		c.Request.Context(),
		usuarioID,
		uint(id),
		req.ClientID,
		strings.TrimSpace(req.NomeTarefa),
	)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Não foi possível enviar o comando.")
			return
		}
		httperr.Internal(c, "playbook_execute_failed", "Não foi possível enviar o comando.")
		return
	}

	c.JSON(http.StatusCreated, ex)
}
