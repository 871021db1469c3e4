package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/guhz021/microblog-api/internal/domain/apperr"
)

// JSON writes a stored record (or slice of records) exactly as persisted.
func JSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

// Text writes a plain-text body; every error response uses this shape.
func Text(c *gin.Context, status int, msg string) {
	c.String(status, msg)
}

// FromError translates a domain error into the HTTP contract:
// validation and malformed identifiers are client errors detected before
// any store call, not-found maps to 404 with the route's own message, a
// duplicate email maps to 400, and anything else is logged and hidden
// behind the route's generic 500 message.
func FromError(c *gin.Context, logger *logrus.Logger, err error, notFound, internal string) {
	var verr *apperr.ValidationError
	switch {
	case errors.As(err, &verr):
		Text(c, http.StatusBadRequest, "Campos obrigatórios ausentes: "+strings.Join(verr.Fields, ", ")+".")
	case errors.Is(err, apperr.ErrInvalidID):
		Text(c, http.StatusBadRequest, "ID inválido (esperado ObjectId de 24 hex).")
	case errors.Is(err, apperr.ErrDuplicateEmail):
		Text(c, http.StatusBadRequest, "Email já cadastrado.")
	case errors.Is(err, apperr.ErrNotFound):
		Text(c, http.StatusNotFound, notFound)
	default:
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"error":      err.Error(),
		}).Error("request failed")
		Text(c, http.StatusInternalServerError, internal)
	}
}
