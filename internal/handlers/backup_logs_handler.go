package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VaultSyncBR/backup-console/internal/dto"
	"github.com/VaultSyncBR/backup-console/internal/format"
	"github.com/VaultSyncBR/backup-console/internal/httperr"
	"github.com/VaultSyncBR/backup-console/internal/httpresp"
	"github.com/VaultSyncBR/backup-console/internal/models"
	"github.com/VaultSyncBR/backup-console/internal/storage"
)

// ======================================================
// HANDLER
// ======================================================

var pageSizeOptions = []int{10, 20, 50}

type BackupLogsHandler struct {
	db    *gorm.DB
	files storage.FilePresigner
}

func NewBackupLogsHandler(db *gorm.DB, files storage.FilePresigner) *BackupLogsHandler {
	return &BackupLogsHandler{db: db, files: files}
}

func (h *BackupLogsHandler) List(c *gin.Context) {
	clientID := strings.TrimSpace(c.Query("client_id"))
	search := strings.ToLower(strings.TrimSpace(c.Query("q")))

	// page é zero-based
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	if page < 0 {
		page = 0
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if !isPageSizeOption(pageSize) {
		pageSize = pageSizeOptions[0]
	}

	offset := page * pageSize

	// --------------------------------------------------
	// Query base + filtros
	// --------------------------------------------------

	q := h.db.Model(&models.BackupLog{})

	if clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}

	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"LOWER(file_name) LIKE ? OR LOWER(error_message) LIKE ?",
			like, like,
		)
	}

	// --------------------------------------------------
	// Total exato: não muda entre páginas do mesmo filtro
	// --------------------------------------------------

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "logs_count_failed", "Erro ao contar logs.")
		return
	}

	// --------------------------------------------------
	// Página
	// --------------------------------------------------

	var logs []models.BackupLog
	if err := q.
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "logs_list_failed", "Erro ao listar logs.")
		return
	}

	rows := make([]dto.BackupLogListDTO, 0, len(logs))
	for _, l := range logs {
		row := dto.BackupLogListDTO{
			ID:               l.ID,
			ClientID:         l.ClientID,
			FileName:         l.FileName,
			FileSizeBytes:    l.FileSizeBytes,
			FileCreationDate: l.FileCreationDate,
			ErrorMessage:     l.ErrorMessage,
		}
		row.CreatedAt = l.CreatedAt
		if l.ErrorMessage != nil {
			row.ErrorPreview = format.TruncateError(*l.ErrorMessage)
		}
		rows = append(rows, row)
	}

	httpresp.Page(c, rows, total, page, pageSize)
}

// Download devolve uma URL temporária do arquivo no bucket de backups
func (h *BackupLogsHandler) Download(c *gin.Context) {
	id := c.Param("id")

	var log models.BackupLog
	if err := h.db.First(&log, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "log_not_found", "Log não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_log", "Erro ao buscar o log.")
		return
	}

	if h.files == nil {
		httperr.Internal(c, "storage_not_configured", "Armazenamento de backups não configurado.")
		return
	}

	url, err := h.files.PresignDownload(
		c.Request.Context(),
		storage.ObjectKey(log.ClientID, log.FileName),
		15*time.Minute,
	)
	if err != nil {
		httperr.Internal(c, "presign_failed", "Erro ao gerar link de download.")
		return
	}

	c.JSON(200, gin.H{
		"url":       url,
		"file_name": log.FileName,
	})
}

func isPageSizeOption(size int) bool {
	for _, opt := range pageSizeOptions {
		if size == opt {
			return true
		}
	}
	return false
}
