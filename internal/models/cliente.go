package models

import "time"

// Empresa cliente, dona de servidores, agendamentos e logs de backup
type Cliente struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID    string `gorm:"size:50;uniqueIndex;not null" json:"client_id"`
	NomeEmpresa string `gorm:"size:150;not null" json:"nome_empresa"`
	CnpjEmpresa string `gorm:"size:18" json:"cnpj_empresa"`
	Ativo       bool   `gorm:"default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Cliente) TableName() string { return "clientes" }
