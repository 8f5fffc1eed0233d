package directory

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barblab-api/internal/audit"
	"github.com/BruksfildServices01/barblab-api/internal/credentials"
	domain "github.com/BruksfildServices01/barblab-api/internal/domain/directory"
	"github.com/BruksfildServices01/barblab-api/internal/httperr"
	"github.com/BruksfildServices01/barblab-api/internal/models"
	"github.com/BruksfildServices01/barblab-api/internal/session"
	"github.com/BruksfildServices01/barblab-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Name     string
	CPF      string
	Password string

	Email   string
	Phone   string
	CEP     string
	Address string
	Notes   string
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewRegister(repo domain.Repository, audit audit.Sink) *Register {
	return &Register{
		repo:  repo,
		audit: audit,
	}
}

// Execute cria o cliente e, como pós-condição do sucesso,
// autentica a sessão: cadastrar já deixa logado.
func (uc *Register) Execute(
	ctx context.Context,
	sess *session.Session,
	in RegisterInput,
) (*models.Client, error) {

	name := strings.TrimSpace(in.Name)
	cpf := validators.OnlyDigits(in.CPF)
	password := strings.TrimSpace(in.Password)

	if name == "" || cpf == "" || password == "" {
		return nil, httperr.ErrBusiness(httperr.CodeMissingField)
	}

	if !validators.IsValidCPF(cpf) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCPF)
	}

	count, err := uc.repo.CountByCPF(ctx, cpf)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, httperr.ErrBusiness(httperr.CodeDuplicateCPF)
	}

	hash, err := credentials.Hash(password)
	if err != nil {
		return nil, err
	}

	client := &models.Client{
		Name:         name,
		CPF:          cpf,
		Email:        in.Email,
		Phone:        in.Phone,
		CEP:          in.CEP,
		Address:      in.Address,
		Notes:        in.Notes,
		PasswordHash: hash,
	}

	// o índice único cobre a janela entre o Count e o Create
	if err := uc.repo.CreateClient(ctx, client); err != nil {
		return nil, err
	}

	sess.LoginClient(client.ID)

	uc.audit.Dispatch(audit.Event{
		ActorType: audit.ActorClient,
		ActorID:   &client.ID,
		Action:    "client_registered",
		Entity:    "client",
		EntityID:  &client.ID,
	})

	return client, nil
}
