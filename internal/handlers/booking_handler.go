package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barblab-api/internal/httperr"
	"github.com/BruksfildServices01/barblab-api/internal/httpresp"
	"github.com/BruksfildServices01/barblab-api/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barblab-api/internal/usecase/booking"
)

type BookingHandler struct {
	create *ucBooking.CreateAppointment
}

func NewBookingHandler(create *ucBooking.CreateAppointment) *BookingHandler {
	return &BookingHandler{create: create}
}

type CreateAppointmentRequest struct {
	Service string `json:"servico"`
	Barber  string `json:"barbeiro"`
	Date    string `json:"data"`
	Time    string `json:"horario"`
}

// Create roda atrás do RequireClient: aqui a sessão já tem
// cliente autenticado.
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	sess, _ := middleware.CurrentSession(c)

	ap, err := h.create.Execute(c.Request.Context(), *sess.ClientID, ucBooking.CreateAppointmentInput{
		Service: req.Service,
		Barber:  req.Barber,
		Date:    req.Date,
		Time:    req.Time,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeMissingField):
			httperr.BadRequest(c, httperr.CodeMissingField, "Serviço, barbeiro, data e horário são obrigatórios.")
		case httperr.IsBusiness(err, httperr.CodeNotFound):
			// sessão aponta para cliente removido pelo admin
			httperr.Unauthorized(c, httperr.CodeUnauthorized, "Autenticação necessária.")
		default:
			httperr.Internal(c, "appointment_failed", "Erro ao criar agendamento.")
		}
		return
	}

	httpresp.OK(c, gin.H{"ok": true, "id": ap.ID})
}
