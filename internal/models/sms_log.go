package models

import "time"

// Registro de envio de SMS. Append-only: nenhum caminho de
// update ou delete existe para esta tabela.
type SMSLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	ToNumber string `gorm:"size:80" json:"to_number"`
	Message  string `gorm:"type:text" json:"message"`

	SentAt    time.Time `json:"sent_at"`
	Simulated bool      `gorm:"default:true" json:"simulated"`
}
