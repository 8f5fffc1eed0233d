package models

import "time"

// Agendamento de horário. ClientName é um snapshot do nome do
// cliente no momento da criação; não há constraint de FK, então
// a referência pode ficar pendurada se o cliente for removido.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID   uint   `json:"cliente_id"`
	ClientName string `gorm:"size:200;not null" json:"nome"`

	Service string `gorm:"size:200" json:"servico"`
	Barber  string `gorm:"size:120" json:"barbeiro"`
	Date    string `gorm:"size:50" json:"data"`
	Time    string `gorm:"size:50" json:"horario"`

	CreatedAt time.Time `json:"criado_em"`
}
