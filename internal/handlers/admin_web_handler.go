package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barblab-api/internal/httperr"
	"github.com/BruksfildServices01/barblab-api/internal/middleware"
	"github.com/BruksfildServices01/barblab-api/internal/session"
	ucAuth "github.com/BruksfildServices01/barblab-api/internal/usecase/auth"
)

const flashCookie = "barblab_flash"

type AdminWebHandler struct {
	store session.Store
	login *ucAuth.LoginAdmin
}

func NewAdminWebHandler(store session.Store, login *ucAuth.LoginAdmin) *AdminWebHandler {
	return &AdminWebHandler{
		store: store,
		login: login,
	}
}

func (h *AdminWebHandler) LoginPage(c *gin.Context) {
	flash, _ := c.Cookie(flashCookie)
	if flash != "" {
		c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	}

	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"Flash": flash,
	})
}

// Login recebe o formulário do painel. Erro de credencial
// re-renderiza a mesma tela com mensagem genérica, sem
// diferenciar usuário desconhecido de senha errada.
func (h *AdminWebHandler) Login(c *gin.Context) {
	username := c.PostForm("usuario")
	password := c.PostForm("senha")

	sess, sid := middleware.CurrentSession(c)

	if _, err := h.login.Execute(c.Request.Context(), sess, username, password); err != nil {
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
			"Erro": "Usuário ou senha incorretos.",
		})
		return
	}

	if err := h.store.Save(c.Request.Context(), sid, sess); err != nil {
		httperr.Internal(c, "session_store_failed", "Erro ao salvar sessão.")
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminWebHandler) Panel(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	// tela HTML redireciona em vez de responder 401
	if !sess.HasAdmin() {
		c.Redirect(http.StatusFound, "/admin-login")
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{})
}

func (h *AdminWebHandler) Logout(c *gin.Context) {
	sess, sid := middleware.CurrentSession(c)

	// idempotente; nunca falha para o navegador
	sess.LogoutAdmin()

	if err := h.store.Save(c.Request.Context(), sid, sess); err != nil {
		httperr.Internal(c, "session_store_failed", "Erro ao salvar sessão.")
		return
	}

	c.SetCookie(flashCookie, "Você saiu do painel com sucesso!", 60, "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin-login")
}
