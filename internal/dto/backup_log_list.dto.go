package dto

import "time"

type BackupLogListDTO struct {
	ID               uint      `json:"id"`
	ClientID         string    `json:"client_id"`
	FileName         string    `json:"file_name"`
	FileSizeBytes    int64     `json:"file_size_bytes"`
	FileCreationDate time.Time `json:"file_creation_date"`
	ErrorMessage     *string   `json:"error_message"`
	ErrorPreview     string    `json:"error_preview"`
	CreatedAt        time.Time `json:"created_at"`
}
