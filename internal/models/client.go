package models

import "time"

// Cliente que se cadastra pelo site. O CPF é armazenado
// já normalizado (somente dígitos) e é a chave de login.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:200;not null" json:"nome"`
	CPF  string `gorm:"size:11;uniqueIndex;not null" json:"cpf"`

	Email   string `gorm:"size:200" json:"email"`
	Phone   string `gorm:"size:50" json:"telefone"`
	CEP     string `gorm:"size:20" json:"cep"`
	Address string `gorm:"size:300" json:"endereco"`
	Notes   string `gorm:"type:text" json:"observacoes"`

	PasswordHash string `gorm:"size:255;not null" json:"-"`

	LastSMSSent *time.Time `json:"last_sms_sent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
