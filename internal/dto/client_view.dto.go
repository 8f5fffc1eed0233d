package dto

// ClientViewDTO é a visão pública do cliente logado. Nunca
// carrega o hash da credencial.
type ClientViewDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"nome"`
	CPF   string `json:"cpf"`
	Email string `json:"email"`
	Phone string `json:"telefone"`
}
