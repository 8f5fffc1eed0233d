package handlers

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barblab-api/internal/audit"
	domainBooking "github.com/BruksfildServices01/barblab-api/internal/domain/booking"
	domainDirectory "github.com/BruksfildServices01/barblab-api/internal/domain/directory"
	"github.com/BruksfildServices01/barblab-api/internal/httperr"
	"github.com/BruksfildServices01/barblab-api/internal/httpresp"
	"github.com/BruksfildServices01/barblab-api/internal/middleware"
	"github.com/BruksfildServices01/barblab-api/internal/sms"
)

// AdminHandler atende a API JSON do painel. Todas as rotas
// passam pelo RequireAdmin antes de chegar aqui.
type AdminHandler struct {
	clients  domainDirectory.Repository
	bookings domainBooking.Repository
	notifier *sms.Notifier
	audit    audit.Sink
}

func NewAdminHandler(
	clients domainDirectory.Repository,
	bookings domainBooking.Repository,
	notifier *sms.Notifier,
	auditSink audit.Sink,
) *AdminHandler {
	return &AdminHandler{
		clients:  clients,
		bookings: bookings,
		notifier: notifier,
		audit:    auditSink,
	}
}

// ======================================================
// LISTAGENS (mais recentes primeiro)
// ======================================================

func (h *AdminHandler) ListClients(c *gin.Context) {
	clients, err := h.clients.ListClients(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}
	httpresp.OK(c, clients)
}

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	apps, err := h.bookings.ListAppointments(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}
	httpresp.OK(c, apps)
}

// ======================================================
// REMOÇÕES
// ======================================================

func (h *AdminHandler) DeleteClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// agendamentos do cliente não são removidos em cascata:
	// ficam com o nome snapshotado e a referência pendurada
	if err := h.clients.DeleteClient(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_delete_client", "Erro ao remover cliente.")
		return
	}

	h.dispatchAudit(c, "client_deleted", "client", id)
	httpresp.OK(c, gin.H{"ok": true})
}

func (h *AdminHandler) DeleteAppointment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.bookings.DeleteAppointment(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao remover agendamento.")
		return
	}

	h.dispatchAudit(c, "appointment_deleted", "appointment", id)
	httpresp.OK(c, gin.H{"ok": true})
}

// ======================================================
// EXPORT CSV
// ======================================================

var csvHeader = []string{
	"id", "nome", "cpf", "email", "telefone", "cep", "endereco",
	"observacoes", "last_sms_sent",
}

func (h *AdminHandler) ExportClientsCSV(c *gin.Context) {
	clients, err := h.clients.ListClients(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_export", "Erro ao exportar clientes.")
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write(csvHeader)

	for _, cl := range clients {
		lastSMS := ""
		if cl.LastSMSSent != nil {
			lastSMS = cl.LastSMSSent.Format(time.RFC3339)
		}

		_ = w.Write([]string{
			strconv.FormatUint(uint64(cl.ID), 10),
			cl.Name,
			cl.CPF,
			cl.Email,
			cl.Phone,
			cl.CEP,
			cl.Address,
			cl.Notes,
			lastSMS,
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		httperr.Internal(c, "failed_to_export", "Erro ao exportar clientes.")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="clientes.csv"`)
	c.Data(200, "text/csv; charset=utf-8", buf.Bytes())
}

// ======================================================
// SMS (simulado)
// ======================================================

type SendSMSRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *AdminHandler) SendSMS(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req SendSMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeMissingField, "Mensagem é obrigatória.")
		return
	}

	entry, err := h.notifier.Send(c.Request.Context(), id, req.Message)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_send_sms", "Erro ao registrar SMS.")
		return
	}

	h.dispatchAudit(c, "sms_sent", "sms_log", entry.ID)
	httpresp.OK(c, gin.H{"ok": true, "id": entry.ID, "simulated": entry.Simulated})
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func (h *AdminHandler) dispatchAudit(c *gin.Context, action, entity string, entityID uint) {
	sess, _ := middleware.CurrentSession(c)

	var actorID *uint
	if sess.HasAdmin() {
		actorID = &sess.Admin.ID
	}

	h.audit.Dispatch(audit.Event{
		ActorType: audit.ActorAdmin,
		ActorID:   actorID,
		Action:    action,
		Entity:    entity,
		EntityID:  &entityID,
	})
}
