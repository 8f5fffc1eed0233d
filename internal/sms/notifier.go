package sms

import (
	"context"
	"log"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barblab-api/internal/domain/directory"
	"github.com/BruksfildServices01/barblab-api/internal/httperr"
	"github.com/BruksfildServices01/barblab-api/internal/models"
	"github.com/BruksfildServices01/barblab-api/internal/timezone"
)

// Notifier registra envios de SMS. O envio real fica fora de
// escopo: toda mensagem é simulada, mas sempre gera um SMSLog
// e atualiza o last_sms_sent do cliente.
type Notifier struct {
	db   *gorm.DB
	repo domain.Repository
}

func NewNotifier(db *gorm.DB, repo domain.Repository) *Notifier {
	return &Notifier{db: db, repo: repo}
}

func (n *Notifier) Send(
	ctx context.Context,
	clientID uint,
	message string,
) (*models.SMSLog, error) {

	client, err := n.repo.GetClientByID(ctx, clientID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	now := timezone.Now()

	entry := &models.SMSLog{
		ClientID:  client.ID,
		ToNumber:  client.Phone,
		Message:   message,
		SentAt:    now,
		Simulated: true,
	}

	if err := n.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}

	if err := n.repo.SetLastSMSSent(ctx, client.ID, now); err != nil {
		return nil, err
	}

	log.Printf("[SMS simulado] para=%s mensagem=%q", client.Phone, message)
	return entry, nil
}
