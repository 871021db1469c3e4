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

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

// Create handles POST /posts. The author must exist; a well-formed but
// unknown autorId yields 404.
func (h *PostHandler) Create(c *gin.Context) {
	var in entity.CreatePost
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		response.Text(c, http.StatusBadRequest, "JSON inválido no corpo da requisição.")
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		response.FromError(c, h.Logger, err, "Usuário não encontrado.", "Erro ao criar post.")
		return
	}
	response.JSON(c, http.StatusCreated, p)
}

// List handles GET /posts. With any query string present the id parameter
// is required and selects a single post; otherwise the whole feed is
// returned newest first.
func (h *PostHandler) List(c *gin.Context) {
	if c.Request.URL.RawQuery != "" {
		id := c.Query("id")
		if id == "" {
			response.Text(c, http.StatusBadRequest, "Parâmetro id é obrigatório.")
			return
		}
		p, err := h.Svc.GetFeedPost(c.Request.Context(), id)
		if err != nil {
			response.FromError(c, h.Logger, err, "Post não encontrado.", "Erro ao buscar post por id (query).")
			return
		}
		response.JSON(c, http.StatusOK, p)
		return
	}

	posts, err := h.Svc.Feed(c.Request.Context())
	if err != nil {
		response.FromError(c, h.Logger, err, "Post não encontrado.", "Erro ao buscar posts.")
		return
	}
	response.JSON(c, http.StatusOK, posts)
}

// Get handles GET /posts/:id.
func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.Svc.GetFeedPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, h.Logger, err, "Post não encontrado.", "Erro ao buscar post por id (rota).")
		return
	}
	response.JSON(c, http.StatusOK, p)
}

// ListByAutor handles GET /posts/usuario/:id.
func (h *PostHandler) ListByAutor(c *gin.Context) {
	posts, err := h.Svc.FeedByAutor(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, h.Logger, err, "Post não encontrado.", "Erro ao buscar posts por autor.")
		return
	}
	response.JSON(c, http.StatusOK, posts)
}

// ListByHashtag handles GET /posts/hashtag/:tag, case-insensitively.
func (h *PostHandler) ListByHashtag(c *gin.Context) {
	posts, err := h.Svc.FeedByHashtag(c.Request.Context(), c.Param("tag"))
	if err != nil {
		response.FromError(c, h.Logger, err, "Post não encontrado.", "Erro ao buscar posts por hashtag.")
		return
	}
	response.JSON(c, http.StatusOK, posts)
}

// Delete handles DELETE /posts/:id.
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, h.Logger, err, "Post não encontrado.", "Erro ao excluir post.")
		return
	}
	response.Text(c, http.StatusOK, "Post excluído com sucesso.")
}
