package models

import "time"

// Comando reutilizável do playbook, não vinculado a cliente
type PlaybookCommand struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Titulo    string `gorm:"size:150;not null" json:"titulo"`
	Descricao string `gorm:"size:255" json:"descricao"`
	Comando   string `gorm:"type:text;not null" json:"comando"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PlaybookCommand) TableName() string { return "playbook_commands" }
