package models

import "time"

// Job recorrente de cópia remota (cron + comando rclone) de um cliente.
// Quem dispara o cron é o agente externo, não esta API.
type Agendamento struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID string `gorm:"size:50;index;not null" json:"client_id"`

	ScheduleName   string  `gorm:"size:150;not null" json:"schedule_name"`
	RcloneCommand  string  `gorm:"type:text;not null" json:"rclone_command"`
	CronExpression string  `gorm:"size:100;not null" json:"cron_expression"`
	IsActive       bool    `gorm:"default:true" json:"is_active"`
	RemotePath     *string `gorm:"size:255" json:"remote_path"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Agendamento) TableName() string { return "agendamentos" }
