package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barblab-api/internal/httperr"
	"github.com/BruksfildServices01/barblab-api/internal/httpresp"
	"github.com/BruksfildServices01/barblab-api/internal/models"
)

type SMSLogsHandler struct {
	db *gorm.DB
}

func NewSMSLogsHandler(db *gorm.DB) *SMSLogsHandler {
	return &SMSLogsHandler{db: db}
}

// List devolve o histórico de envios, opcionalmente filtrado
// por cliente. A tabela é append-only: só existe leitura aqui.
func (h *SMSLogsHandler) List(c *gin.Context) {
	q := h.db.Model(&models.SMSLog{})

	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}

	var logs []models.SMSLog
	if err := q.
		Order("id DESC").
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "sms_list_failed", "Erro ao listar SMS.")
		return
	}

	httpresp.List(c, logs)
}
