package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barblab-api/internal/httperr"
	"github.com/BruksfildServices01/barblab-api/internal/httpresp"
	"github.com/BruksfildServices01/barblab-api/internal/middleware"
	"github.com/BruksfildServices01/barblab-api/internal/session"
	ucAuth "github.com/BruksfildServices01/barblab-api/internal/usecase/auth"
	ucDirectory "github.com/BruksfildServices01/barblab-api/internal/usecase/directory"
)

type AuthHandler struct {
	store    session.Store
	register *ucDirectory.Register
	login    *ucAuth.LoginClient
	getSelf  *ucDirectory.GetSelf
}

func NewAuthHandler(
	store session.Store,
	register *ucDirectory.Register,
	login *ucAuth.LoginClient,
	getSelf *ucDirectory.GetSelf,
) *AuthHandler {
	return &AuthHandler{
		store:    store,
		register: register,
		login:    login,
		getSelf:  getSelf,
	}
}

// --------- Requests ---------

// A validação de obrigatórios fica no usecase, que devolve os
// códigos de negócio; aqui só desserializa.
type RegisterRequest struct {
	Name     string `json:"nome"`
	CPF      string `json:"cpf"`
	Password string `json:"password"`

	Email   string `json:"email"`
	Phone   string `json:"telefone"`
	CEP     string `json:"cep"`
	Address string `json:"endereco"`
	Notes   string `json:"observacoes"`
}

type LoginRequest struct {
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	sess, sid := middleware.CurrentSession(c)

	client, err := h.register.Execute(c.Request.Context(), sess, ucDirectory.RegisterInput{
		Name:     req.Name,
		CPF:      req.CPF,
		Password: req.Password,
		Email:    req.Email,
		Phone:    req.Phone,
		CEP:      req.CEP,
		Address:  req.Address,
		Notes:    req.Notes,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeMissingField):
			httperr.BadRequest(c, httperr.CodeMissingField, "Nome, CPF e senha são obrigatórios.")
		case httperr.IsBusiness(err, httperr.CodeInvalidCPF):
			httperr.BadRequest(c, httperr.CodeInvalidCPF, "CPF inválido.")
		case httperr.IsBusiness(err, httperr.CodeDuplicateCPF):
			httperr.BadRequest(c, httperr.CodeDuplicateCPF, "CPF já cadastrado.")
		default:
			httperr.Internal(c, "register_failed", "Erro ao cadastrar cliente.")
		}
		return
	}

	if err := h.store.Save(c.Request.Context(), sid, sess); err != nil {
		httperr.Internal(c, "session_store_failed", "Erro ao salvar sessão.")
		return
	}

	httpresp.OK(c, gin.H{"ok": true, "id": client.ID})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	sess, sid := middleware.CurrentSession(c)

	client, err := h.login.Execute(c.Request.Context(), sess, req.CPF, req.Password)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeMissingField):
			httperr.BadRequest(c, httperr.CodeMissingField, "CPF e senha obrigatórios.")
		case httperr.IsBusiness(err, httperr.CodeInvalidCredentials):
			httperr.Unauthorized(c, httperr.CodeInvalidCredentials, "CPF ou senha incorretos.")
		default:
			httperr.Internal(c, "login_failed", "Erro ao autenticar.")
		}
		return
	}

	if err := h.store.Save(c.Request.Context(), sid, sess); err != nil {
		httperr.Internal(c, "session_store_failed", "Erro ao salvar sessão.")
		return
	}

	httpresp.OK(c, gin.H{"ok": true, "id": client.ID})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sess, sid := middleware.CurrentSession(c)

	// idempotente: sair sem estar logado também responde ok
	sess.LogoutClient()

	if err := h.store.Save(c.Request.Context(), sid, sess); err != nil {
		httperr.Internal(c, "session_store_failed", "Erro ao salvar sessão.")
		return
	}

	httpresp.OK(c, gin.H{"ok": true})
}

func (h *AuthHandler) Me(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	view := h.getSelf.Execute(c.Request.Context(), sess)
	if view == nil {
		httpresp.OK(c, nil)
		return
	}

	httpresp.OK(c, view)
}
