package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WebHandler serve as telas públicas do site. Todo o conteúdo
// dinâmico vem da API JSON; aqui é só render.
type WebHandler struct{}

func NewWebHandler() *WebHandler {
	return &WebHandler{}
}

func (h *WebHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

func (h *WebHandler) Register(c *gin.Context) {
	c.HTML(http.StatusOK, "cadastro.html", gin.H{})
}

func (h *WebHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *WebHandler) Booking(c *gin.Context) {
	c.HTML(http.StatusOK, "agendamento.html", gin.H{})
}

func (h *WebHandler) Success(c *gin.Context) {
	c.HTML(http.StatusOK, "sucesso.html", gin.H{})
}
