package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/guhz021/microblog-api/internal/interface/http"
)

// UserModule wires the user routes:
// POST /usuarios, GET /usuarios, DELETE /usuarios/:id

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/usuarios", m.Handler.Create)
	rg.GET("/usuarios", m.Handler.List)
	rg.DELETE("/usuarios/:id", m.Handler.Delete)
}
