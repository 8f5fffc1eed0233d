package booking

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barblab-api/internal/audit"
	domain "github.com/BruksfildServices01/barblab-api/internal/domain/booking"
	"github.com/BruksfildServices01/barblab-api/internal/httperr"
	"github.com/BruksfildServices01/barblab-api/internal/models"
	"github.com/BruksfildServices01/barblab-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Service string
	Barber  string
	Date    string
	Time    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreateAppointment(repo domain.Repository, audit audit.Sink) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute pressupõe que o chamador já passou pelo guard de
// cliente autenticado. Não há detecção de conflito de horário:
// dois agendamentos idênticos para o mesmo barbeiro convivem.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	clientID uint,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	service := strings.TrimSpace(in.Service)
	barber := strings.TrimSpace(in.Barber)
	date := strings.TrimSpace(in.Date)
	hour := strings.TrimSpace(in.Time)

	if service == "" || barber == "" || date == "" || hour == "" {
		return nil, httperr.ErrBusiness(httperr.CodeMissingField)
	}

	client, err := uc.repo.GetClient(ctx, clientID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	ap := &models.Appointment{
		ClientID:   client.ID,
		ClientName: client.Name, // snapshot, não acompanha o cadastro
		Service:    service,
		Barber:     barber,
		Date:       date,
		Time:       hour,
		CreatedAt:  timezone.Now(),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorType: audit.ActorClient,
		ActorID:   &client.ID,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
