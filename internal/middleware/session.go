package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barblab-api/internal/httperr"
	"github.com/BruksfildServices01/barblab-api/internal/session"
)

const (
	ContextSessionID = "sessionID"
	ContextSession   = "session"

	SessionCookie = "barblab_session"
)

// Sessions resolve o cookie assinado para uma sessão do store.
// Cookie ausente ou inválido vira uma sessão nova e vazia, com
// Set-Cookie imediato — todo request sai daqui com sessão.
func Sessions(store session.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sid string

		if raw, err := c.Cookie(SessionCookie); err == nil {
			if parsed, err := session.ParseToken(raw, secret); err == nil {
				sid = parsed
			}
		}

		if sid == "" {
			sid = session.NewID()
			token, err := session.SignToken(sid, secret)
			if err != nil {
				httperr.Internal(c, "session_token_failed", "Erro ao criar sessão.")
				c.Abort()
				return
			}
			// maxAge 0 → cookie de navegador, como no comportamento original
			c.SetCookie(SessionCookie, token, 0, "/", "", false, true)
		}

		sess, err := store.Get(c.Request.Context(), sid)
		if err != nil {
			httperr.Internal(c, "session_store_failed", "Erro ao carregar sessão.")
			c.Abort()
			return
		}

		c.Set(ContextSessionID, sid)
		c.Set(ContextSession, sess)

		c.Next()
	}
}

// CurrentSession devolve a sessão resolvida pelo middleware.
func CurrentSession(c *gin.Context) (*session.Session, string) {
	sess := c.MustGet(ContextSession).(*session.Session)
	sid := c.MustGet(ContextSessionID).(string)
	return sess, sid
}

// RequireClient rejeita antes de qualquer handler tocar em
// estado de domínio.
func RequireClient() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := CurrentSession(c)
		if !sess.HasClient() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{
				Code:    httperr.CodeUnauthorized,
				Message: "Autenticação necessária.",
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin é independente do escopo de cliente: um cliente
// logado continua sem acesso ao painel.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := CurrentSession(c)
		if !sess.HasAdmin() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{
				Code:    httperr.CodeUnauthorized,
				Message: "unauthorized",
			})
			return
		}
		c.Next()
	}
}
