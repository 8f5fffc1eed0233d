package auth

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barblab-api/internal/credentials"
	domain "github.com/BruksfildServices01/barblab-api/internal/domain/directory"
	"github.com/BruksfildServices01/barblab-api/internal/httperr"
	"github.com/BruksfildServices01/barblab-api/internal/models"
	"github.com/BruksfildServices01/barblab-api/internal/session"
	"github.com/BruksfildServices01/barblab-api/internal/validators"
)

type LoginClient struct {
	repo domain.Repository
}

func NewLoginClient(repo domain.Repository) *LoginClient {
	return &LoginClient{repo: repo}
}

func (uc *LoginClient) Execute(
	ctx context.Context,
	sess *session.Session,
	cpf string,
	password string,
) (*models.Client, error) {

	cpf = validators.OnlyDigits(cpf)
	password = strings.TrimSpace(password)

	if cpf == "" || password == "" {
		return nil, httperr.ErrBusiness(httperr.CodeMissingField)
	}

	// CPF desconhecido e senha errada respondem com o mesmo
	// código, para não permitir enumeração de cadastros.
	client, err := uc.repo.GetClientByCPF(ctx, cpf)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	if !credentials.Verify(client.PasswordHash, password) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	sess.LoginClient(client.ID)
	return client, nil
}
