package models

import "time"

// Pedido de execução imediata, insert-only. O agente que consome a fila
// reporta o resultado fora desta API.
type ExecucaoRealtime struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID   string  `gorm:"size:50;index;not null" json:"client_id"`
	ServidorIP *string `gorm:"size:45" json:"servidor_ip"`

	NomeTarefa string `gorm:"size:150;not null" json:"nome_tarefa"`
	Comando    string `gorm:"type:text;not null" json:"comando"`

	CreatedAt time.Time `json:"created_at"`
}

func (ExecucaoRealtime) TableName() string { return "execucoes_realtime" }
