package directory

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barblab-api/internal/models"
)

type Repository interface {
	// -------- Client (write) --------
	CreateClient(
		ctx context.Context,
		client *models.Client,
	) error

	DeleteClient(
		ctx context.Context,
		id uint,
	) error

	SetLastSMSSent(
		ctx context.Context,
		id uint,
		at time.Time,
	) error

	// -------- Client (read) --------
	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetClientByCPF(
		ctx context.Context,
		cpf string,
	) (*models.Client, error)

	CountByCPF(
		ctx context.Context,
		cpf string,
	) (int64, error)

	ListClients(
		ctx context.Context,
	) ([]models.Client, error)

	// -------- Admin --------
	GetAdminByUsername(
		ctx context.Context,
		username string,
	) (*models.Admin, error)
}
