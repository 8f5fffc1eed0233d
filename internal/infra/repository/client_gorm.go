package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barblab-api/internal/domain/directory"
	"github.com/BruksfildServices01/barblab-api/internal/httperr"
	"github.com/BruksfildServices01/barblab-api/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// --------------------------------------------------
// Client (write)
// --------------------------------------------------

func (r *ClientGormRepository) CreateClient(
	ctx context.Context,
	client *models.Client,
) error {

	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		// o índice único do CPF é a única proteção contra
		// registros duplicados submetidos em paralelo
		if isUniqueViolation(err) {
			return httperr.ErrBusiness(httperr.CodeDuplicateCPF)
		}
		return err
	}
	return nil
}

func (r *ClientGormRepository) DeleteClient(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Client{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return nil
}

func (r *ClientGormRepository) SetLastSMSSent(
	ctx context.Context,
	id uint,
	at time.Time,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		Update("last_sms_sent", at).Error
}

// --------------------------------------------------
// Client (read)
// --------------------------------------------------

func (r *ClientGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientGormRepository) GetClientByCPF(
	ctx context.Context,
	cpf string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("cpf = ?", cpf).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientGormRepository) CountByCPF(
	ctx context.Context,
	cpf string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("cpf = ?", cpf).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ClientGormRepository) ListClients(
	ctx context.Context,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// --------------------------------------------------
// Admin
// --------------------------------------------------

func (r *ClientGormRepository) GetAdminByUsername(
	ctx context.Context,
	username string,
) (*models.Admin, error) {

	var admin models.Admin
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
