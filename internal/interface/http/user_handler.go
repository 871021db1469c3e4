package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/guhz021/microblog-api/internal/application"
	"github.com/guhz021/microblog-api/internal/domain/entity"
	"github.com/guhz021/microblog-api/pkg/response"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Create handles POST /usuarios. An empty body is treated as an empty
// record so the validation error lists every missing field.
func (h *UserHandler) Create(c *gin.Context) {
	var in entity.CreateUser
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		response.Text(c, http.StatusBadRequest, "JSON inválido no corpo da requisição.")
		return
	}

	u, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		response.FromError(c, h.Logger, err, "Usuário não encontrado.", "Erro ao criar usuário.")
		return
	}
	response.JSON(c, http.StatusCreated, u)
}

// List handles GET /usuarios.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, h.Logger, err, "Usuário não encontrado.", "Erro ao buscar usuários.")
		return
	}
	response.JSON(c, http.StatusOK, users)
}

// Delete handles DELETE /usuarios/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, h.Logger, err, "Usuário não encontrado.", "Erro ao excluir usuário.")
		return
	}
	response.Text(c, http.StatusOK, "Usuário excluído com sucesso.")
}
