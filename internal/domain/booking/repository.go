package booking

import (
	"context"

	"github.com/BruksfildServices01/barblab-api/internal/models"
)

type Repository interface {
	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Client (snapshot do nome) --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)
}
