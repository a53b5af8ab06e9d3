package models

import "time"

type Usuario struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome      string `gorm:"size:100;not null" json:"nome"`
	CPF       string `gorm:"size:14" json:"cpf"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	SenhaHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Usuario) TableName() string { return "usuarios" }
