package models

import "time"

// Registro de transferência de backup, somente leitura para o console.
// Quem insere é o agente que fez a cópia.
type BackupLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID string `gorm:"size:50;index;not null" json:"client_id"`

	FileName         string    `gorm:"size:255;not null" json:"file_name"`
	FileSizeBytes    int64     `json:"file_size_bytes"`
	FileCreationDate time.Time `json:"file_creation_date"`
	ErrorMessage     *string   `gorm:"type:text" json:"error_message"`

	CreatedAt time.Time `json:"created_at"`
}

func (BackupLog) TableName() string { return "backup_logs" }
