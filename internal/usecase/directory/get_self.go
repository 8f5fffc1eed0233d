package directory

import (
	"context"

	domain "github.com/BruksfildServices01/barblab-api/internal/domain/directory"
	"github.com/BruksfildServices01/barblab-api/internal/dto"
	"github.com/BruksfildServices01/barblab-api/internal/session"
)

type GetSelf struct {
	repo domain.Repository
}

func NewGetSelf(repo domain.Repository) *GetSelf {
	return &GetSelf{repo: repo}
}

// Execute devolve a visão redigida do cliente logado, ou nil
// quando a sessão não tem cliente (ou o cadastro sumiu).
func (uc *GetSelf) Execute(
	ctx context.Context,
	sess *session.Session,
) *dto.ClientViewDTO {

	if !sess.HasClient() {
		return nil
	}

	client, err := uc.repo.GetClientByID(ctx, *sess.ClientID)
	if err != nil {
		return nil
	}

	return &dto.ClientViewDTO{
		ID:    client.ID,
		Name:  client.Name,
		CPF:   client.CPF,
		Email: client.Email,
		Phone: client.Phone,
	}
}
