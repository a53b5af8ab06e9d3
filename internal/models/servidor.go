package models

import "time"

type Servidor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClienteID uint    `json:"cliente_id"`
	Cliente   Cliente `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Nome               string `gorm:"size:100;not null" json:"nome"`
	EnderecoIP         string `gorm:"size:45;not null" json:"endereco_ip"`
	SistemaOperacional string `gorm:"size:100" json:"sistema_operacional"`

	// 0 = desconhecido, 1 = online, 2 = offline, 3 = erro
	Status int `gorm:"default:0" json:"status"`

	UptimeInicio *time.Time `json:"uptime_inicio"`
	MensagemErro string     `gorm:"type:text" json:"mensagem_erro"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Servidor) TableName() string { return "servidores" }
