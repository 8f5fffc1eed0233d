package auth

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barblab-api/internal/credentials"
	domain "github.com/BruksfildServices01/barblab-api/internal/domain/directory"
	"github.com/BruksfildServices01/barblab-api/internal/httperr"
	"github.com/BruksfildServices01/barblab-api/internal/models"
	"github.com/BruksfildServices01/barblab-api/internal/session"
)

type LoginAdmin struct {
	repo domain.Repository
}

func NewLoginAdmin(repo domain.Repository) *LoginAdmin {
	return &LoginAdmin{repo: repo}
}

func (uc *LoginAdmin) Execute(
	ctx context.Context,
	sess *session.Session,
	username string,
	password string,
) (*models.Admin, error) {

	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return nil, httperr.ErrBusiness(httperr.CodeMissingField)
	}

	admin, err := uc.repo.GetAdminByUsername(ctx, username)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	if !credentials.Verify(admin.PasswordHash, password) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	sess.LoginAdmin(admin.ID)
	return admin, nil
}
